package handler

import (
	"net/http"

	"github.com/contempsico/portal-be/middleware"
	"github.com/contempsico/portal-be/service"
	"github.com/contempsico/portal-be/types"
	"github.com/gin-gonic/gin"
)

type CalendarHandler interface {
	HandleListEvents(c *gin.Context)
	HandleCreateEvent(c *gin.Context)
	HandleUpdateEvent(c *gin.Context)
	HandleDeleteEvent(c *gin.Context)
}

type calendarHandler struct {
	calendarService service.CalendarService
}

func NewCalendarHandler(calendarService service.CalendarService) CalendarHandler {
	return &calendarHandler{
		calendarService: calendarService,
	}
}

func (h *calendarHandler) HandleListEvents(c *gin.Context) {
	events, err := h.calendarService.ListEvents(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   events,
	})
}

func (h *calendarHandler) HandleCreateEvent(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	if !types.ResolvePermissions(viewer.Profile, types.MODULE_CALENDAR).CanCreate {
		abortWithError(c, types.ErrForbidden)
		return
	}

	var req types.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	event, err := h.calendarService.CreateEvent(c, &req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   event,
	})
}

func (h *calendarHandler) HandleUpdateEvent(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	if !types.ResolvePermissions(viewer.Profile, types.MODULE_CALENDAR).CanEdit {
		abortWithError(c, types.ErrForbidden)
		return
	}

	var event types.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	event.ID = c.Param("id")

	if err := h.calendarService.UpdateEvent(c, &event); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   event,
	})
}

func (h *calendarHandler) HandleDeleteEvent(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	if !types.ResolvePermissions(viewer.Profile, types.MODULE_CALENDAR).CanDelete {
		abortWithError(c, types.ErrForbidden)
		return
	}

	if err := h.calendarService.DeleteEvent(c, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
	})
}
