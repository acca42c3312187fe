package handler

import (
	"net/http"
	"time"

	"github.com/contempsico/portal-be/middleware"
	"github.com/contempsico/portal-be/service"
	"github.com/contempsico/portal-be/types"
	"github.com/contempsico/portal-be/utils"
	"github.com/gin-gonic/gin"
)

type LoginHandler interface {
	HandleLogin(c *gin.Context)
	HandleMe(c *gin.Context)
	HandlePermissions(c *gin.Context)
}

type loginHandler struct {
	userService service.UserService
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewLoginHandler(userService service.UserService, jwtSecret string, tokenTTL time.Duration) LoginHandler {
	return &loginHandler{
		userService: userService,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
	}
}

func (h *loginHandler) HandleLogin(c *gin.Context) {

	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	user, err := h.userService.Authenticate(c, req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	token, err := utils.GenerateUserToken(user, h.jwtSecret, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	resp := types.DataResponse{
		Status: true,
		Data: types.LoginResponse{
			AccessToken: token,
			User:        user,
		},
	}
	c.JSON(http.StatusOK, resp)
}

// HandleMe returns the profile of the authenticated user, refreshed from
// storage so a stale token does not serve outdated data.
func (h *loginHandler) HandleMe(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	user, err := h.userService.GetUser(c, viewer.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   user,
	})
}

// HandlePermissions returns the capability table for the viewer's profile,
// keyed by module name.
func (h *loginHandler) HandlePermissions(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   types.ResolveAllPermissions(viewer.Profile),
	})
}
