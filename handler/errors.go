package handler

import (
	"errors"
	"net/http"

	"github.com/contempsico/portal-be/types"
	"github.com/gin-gonic/gin"
)

// abortWithError maps service errors onto HTTP statuses and writes the
// standard response envelope.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, types.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, types.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, types.ErrInvalidDate),
		errors.Is(err, types.ErrEndBeforeStart),
		errors.Is(err, types.ErrInvalidStatus),
		errors.Is(err, types.ErrInvalidType),
		errors.Is(err, types.ErrInvalidPriority),
		errors.Is(err, types.ErrSubtaskNotFound):
		status = http.StatusBadRequest
	}
	c.JSON(status, types.DataResponse{
		Status:  false,
		Message: err.Error(),
	})
}
