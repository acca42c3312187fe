package handler

import (
	"net/http"

	"github.com/contempsico/portal-be/middleware"
	"github.com/contempsico/portal-be/service"
	"github.com/contempsico/portal-be/types"
	"github.com/gin-gonic/gin"
)

type ReportHandler interface {
	HandleProductivityReport(c *gin.Context)
}

type reportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) ReportHandler {
	return &reportHandler{
		reportService: reportService,
	}
}

func (h *reportHandler) HandleProductivityReport(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	if !types.ResolvePermissions(viewer.Profile, types.MODULE_REPORT).CanView {
		abortWithError(c, types.ErrForbidden)
		return
	}
	rows, err := h.reportService.ProductivityReport(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   rows,
	})
}
