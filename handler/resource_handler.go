package handler

import (
	"net/http"

	"github.com/contempsico/portal-be/middleware"
	"github.com/contempsico/portal-be/service"
	"github.com/contempsico/portal-be/types"
	"github.com/gin-gonic/gin"
)

type ResourceHandler interface {
	HandleListTrainings(c *gin.Context)
	HandleCreateTraining(c *gin.Context)
	HandleUpdateTraining(c *gin.Context)
	HandleDeleteTraining(c *gin.Context)

	HandleListRegulations(c *gin.Context)
	HandleCreateRegulation(c *gin.Context)
	HandleUpdateRegulation(c *gin.Context)
	HandleDeleteRegulation(c *gin.Context)

	HandleListLinks(c *gin.Context)
	HandleCreateLink(c *gin.Context)
	HandleUpdateLink(c *gin.Context)
	HandleDeleteLink(c *gin.Context)

	HandleListServices(c *gin.Context)
	HandleCreateService(c *gin.Context)
	HandleUpdateService(c *gin.Context)
	HandleDeleteService(c *gin.Context)

	HandleListPsychologists(c *gin.Context)
	HandleCreatePsychologist(c *gin.Context)
	HandleUpdatePsychologist(c *gin.Context)
	HandleDeletePsychologist(c *gin.Context)
}

type resourceHandler struct {
	resourceService service.ResourceService
}

func NewResourceHandler(resourceService service.ResourceService) ResourceHandler {
	return &resourceHandler{
		resourceService: resourceService,
	}
}

// allowed checks one capability of the viewer on a resource tab and writes
// the forbidden response itself when the check fails.
func allowed(c *gin.Context, module string, pick func(types.Permissions) bool) bool {
	viewer := middleware.CurrentUser(c)
	if pick(types.ResolvePermissions(viewer.Profile, module)) {
		return true
	}
	abortWithError(c, types.ErrForbidden)
	return false
}

func canView(p types.Permissions) bool   { return p.CanView }
func canCreate(p types.Permissions) bool { return p.CanCreate }
func canEdit(p types.Permissions) bool   { return p.CanEdit }
func canDelete(p types.Permissions) bool { return p.CanDelete }

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   data,
	})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, types.DataResponse{
		Status:  false,
		Message: "Invalid request body",
	})
}

func (h *resourceHandler) HandleListTrainings(c *gin.Context) {
	if !allowed(c, types.MODULE_TRAININGS, canView) {
		return
	}
	trainings, err := h.resourceService.ListTrainings(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, trainings)
}

func (h *resourceHandler) HandleCreateTraining(c *gin.Context) {
	if !allowed(c, types.MODULE_TRAININGS, canCreate) {
		return
	}
	var training types.TrainingMaterial
	if err := c.ShouldBindJSON(&training); err != nil {
		badRequest(c)
		return
	}
	if err := h.resourceService.CreateTraining(c, &training); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, training)
}

func (h *resourceHandler) HandleUpdateTraining(c *gin.Context) {
	if !allowed(c, types.MODULE_TRAININGS, canEdit) {
		return
	}
	var training types.TrainingMaterial
	if err := c.ShouldBindJSON(&training); err != nil {
		badRequest(c)
		return
	}
	training.ID = c.Param("id")
	if err := h.resourceService.UpdateTraining(c, &training); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, training)
}

func (h *resourceHandler) HandleDeleteTraining(c *gin.Context) {
	if !allowed(c, types.MODULE_TRAININGS, canDelete) {
		return
	}
	if err := h.resourceService.DeleteTraining(c, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, nil)
}

func (h *resourceHandler) HandleListRegulations(c *gin.Context) {
	if !allowed(c, types.MODULE_REGULATIONS, canView) {
		return
	}
	sections, err := h.resourceService.ListRegulations(c, middleware.CurrentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, sections)
}

func (h *resourceHandler) HandleCreateRegulation(c *gin.Context) {
	if !allowed(c, types.MODULE_REGULATIONS, canCreate) {
		return
	}
	var section types.RegulationSection
	if err := c.ShouldBindJSON(&section); err != nil {
		badRequest(c)
		return
	}
	if err := h.resourceService.CreateRegulation(c, &section); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, section)
}

func (h *resourceHandler) HandleUpdateRegulation(c *gin.Context) {
	if !allowed(c, types.MODULE_REGULATIONS, canEdit) {
		return
	}
	var section types.RegulationSection
	if err := c.ShouldBindJSON(&section); err != nil {
		badRequest(c)
		return
	}
	section.ID = c.Param("id")
	if err := h.resourceService.UpdateRegulation(c, &section); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, section)
}

func (h *resourceHandler) HandleDeleteRegulation(c *gin.Context) {
	if !allowed(c, types.MODULE_REGULATIONS, canDelete) {
		return
	}
	if err := h.resourceService.DeleteRegulation(c, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, nil)
}

func (h *resourceHandler) HandleListLinks(c *gin.Context) {
	if !allowed(c, types.MODULE_LINKS, canView) {
		return
	}
	links, err := h.resourceService.ListLinks(c, middleware.CurrentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, links)
}

func (h *resourceHandler) HandleCreateLink(c *gin.Context) {
	if !allowed(c, types.MODULE_LINKS, canCreate) {
		return
	}
	var link types.UsefulLink
	if err := c.ShouldBindJSON(&link); err != nil {
		badRequest(c)
		return
	}
	if err := h.resourceService.CreateLink(c, &link); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, link)
}

func (h *resourceHandler) HandleUpdateLink(c *gin.Context) {
	if !allowed(c, types.MODULE_LINKS, canEdit) {
		return
	}
	var link types.UsefulLink
	if err := c.ShouldBindJSON(&link); err != nil {
		badRequest(c)
		return
	}
	link.ID = c.Param("id")
	if err := h.resourceService.UpdateLink(c, &link); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, link)
}

func (h *resourceHandler) HandleDeleteLink(c *gin.Context) {
	if !allowed(c, types.MODULE_LINKS, canDelete) {
		return
	}
	if err := h.resourceService.DeleteLink(c, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, nil)
}

func (h *resourceHandler) HandleListServices(c *gin.Context) {
	if !allowed(c, types.MODULE_PRICES, canView) {
		return
	}
	services, err := h.resourceService.ListServices(c, middleware.CurrentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, services)
}

func (h *resourceHandler) HandleCreateService(c *gin.Context) {
	if !allowed(c, types.MODULE_PRICES, canCreate) {
		return
	}
	var price types.ServicePrice
	if err := c.ShouldBindJSON(&price); err != nil {
		badRequest(c)
		return
	}
	if err := h.resourceService.CreateService(c, &price); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, price)
}

func (h *resourceHandler) HandleUpdateService(c *gin.Context) {
	if !allowed(c, types.MODULE_PRICES, canEdit) {
		return
	}
	var price types.ServicePrice
	if err := c.ShouldBindJSON(&price); err != nil {
		badRequest(c)
		return
	}
	price.ID = c.Param("id")
	if err := h.resourceService.UpdateService(c, &price); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, price)
}

func (h *resourceHandler) HandleDeleteService(c *gin.Context) {
	if !allowed(c, types.MODULE_PRICES, canDelete) {
		return
	}
	if err := h.resourceService.DeleteService(c, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, nil)
}

func (h *resourceHandler) HandleListPsychologists(c *gin.Context) {
	if !allowed(c, types.MODULE_PSYCHOLOGISTS, canView) {
		return
	}
	psychologists, err := h.resourceService.ListPsychologists(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, psychologists)
}

func (h *resourceHandler) HandleCreatePsychologist(c *gin.Context) {
	if !allowed(c, types.MODULE_PSYCHOLOGISTS, canCreate) {
		return
	}
	var psychologist types.Psychologist
	if err := c.ShouldBindJSON(&psychologist); err != nil {
		badRequest(c)
		return
	}
	if err := h.resourceService.CreatePsychologist(c, &psychologist); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, psychologist)
}

func (h *resourceHandler) HandleUpdatePsychologist(c *gin.Context) {
	if !allowed(c, types.MODULE_PSYCHOLOGISTS, canEdit) {
		return
	}
	var psychologist types.Psychologist
	if err := c.ShouldBindJSON(&psychologist); err != nil {
		badRequest(c)
		return
	}
	psychologist.ID = c.Param("id")
	if err := h.resourceService.UpdatePsychologist(c, &psychologist); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, psychologist)
}

func (h *resourceHandler) HandleDeletePsychologist(c *gin.Context) {
	if !allowed(c, types.MODULE_PSYCHOLOGISTS, canDelete) {
		return
	}
	if err := h.resourceService.DeletePsychologist(c, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, nil)
}
