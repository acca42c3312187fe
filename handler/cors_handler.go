package handler

import (
	"github.com/gin-gonic/gin"
)

type CorsHandler struct {
	allowedOrigins string
}

func NewCorsHandler(allowedOrigins string) *CorsHandler {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return &CorsHandler{allowedOrigins: allowedOrigins}
}

func (h *CorsHandler) CorsMiddleware(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", h.allowedOrigins)
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if c.Request.Method == "OPTIONS" {
		c.AbortWithStatus(200)
		return
	}
	c.Next()
}
