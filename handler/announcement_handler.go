package handler

import (
	"net/http"

	"github.com/contempsico/portal-be/middleware"
	"github.com/contempsico/portal-be/service"
	"github.com/contempsico/portal-be/types"
	"github.com/gin-gonic/gin"
)

type AnnouncementHandler interface {
	HandleListAnnouncements(c *gin.Context)
	HandleCreateAnnouncement(c *gin.Context)
	HandleUpdateAnnouncement(c *gin.Context)
	HandleDeleteAnnouncement(c *gin.Context)
}

type announcementHandler struct {
	announcementService service.AnnouncementService
}

func NewAnnouncementHandler(announcementService service.AnnouncementService) AnnouncementHandler {
	return &announcementHandler{
		announcementService: announcementService,
	}
}

func (h *announcementHandler) HandleListAnnouncements(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	announcements, err := h.announcementService.ListAnnouncements(c, viewer)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   announcements,
	})
}

func (h *announcementHandler) HandleCreateAnnouncement(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	if !types.ResolvePermissions(viewer.Profile, types.MODULE_ANNOUNCEMENTS).CanCreate {
		abortWithError(c, types.ErrForbidden)
		return
	}

	var req types.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	announcement, err := h.announcementService.CreateAnnouncement(c, viewer, &req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   announcement,
	})
}

func (h *announcementHandler) HandleUpdateAnnouncement(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	if !types.ResolvePermissions(viewer.Profile, types.MODULE_ANNOUNCEMENTS).CanEdit {
		abortWithError(c, types.ErrForbidden)
		return
	}

	var announcement types.Announcement
	if err := c.ShouldBindJSON(&announcement); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	announcement.ID = c.Param("id")

	if err := h.announcementService.UpdateAnnouncement(c, &announcement); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   announcement,
	})
}

func (h *announcementHandler) HandleDeleteAnnouncement(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	if !types.ResolvePermissions(viewer.Profile, types.MODULE_ANNOUNCEMENTS).CanDelete {
		abortWithError(c, types.ErrForbidden)
		return
	}

	if err := h.announcementService.DeleteAnnouncement(c, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
	})
}
