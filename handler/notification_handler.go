package handler

import (
	"github.com/contempsico/portal-be/service"
	"github.com/gin-gonic/gin"
)

type NotificationHandler interface {
	HandleWebSocket(c *gin.Context)
}

type notificationHandler struct {
	hub *service.NotificationHub
}

func NewNotificationHandler(hub *service.NotificationHub) NotificationHandler {
	return &notificationHandler{
		hub: hub,
	}
}

// HandleWebSocket upgrades the request and streams mutation events to the
// client until it disconnects.
func (h *notificationHandler) HandleWebSocket(c *gin.Context) {
	h.hub.HandleConnection(c.Writer, c.Request)
}
