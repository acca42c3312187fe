package handler

import (
	"net/http"
	"strconv"

	"github.com/contempsico/portal-be/service"
	"github.com/contempsico/portal-be/types"
	"github.com/gin-gonic/gin"
)

type UserManageHandler interface {
	HandleCreateUser(c *gin.Context)
	HandlePaginateUser(c *gin.Context)
	HandleGetUser(c *gin.Context)
	HandleUpdateUser(c *gin.Context)
	HandleDeleteUser(c *gin.Context)
	HandleListAssignableUsers(c *gin.Context)
}

type userManageHandler struct {
	userService service.UserService
}

func NewUserManageHandler(userService service.UserService) UserManageHandler {
	return &userManageHandler{
		userService: userService,
	}
}

func (h *userManageHandler) HandleCreateUser(c *gin.Context) {

	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	user := &types.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Profile:  req.Profile,
	}
	if err := h.userService.CreateUser(c, user); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   user,
	})
}

func (h *userManageHandler) HandlePaginateUser(c *gin.Context) {

	var page, limit int64
	pageStr := c.Query("page")
	if pageStr == "" {
		page = 1
	} else {
		page, _ = strconv.ParseInt(pageStr, 10, 64)
	}
	limitStr := c.Query("limit")
	if limitStr == "" {
		limit = 10
	} else {
		limit, _ = strconv.ParseInt(limitStr, 10, 64)
	}
	// Garbage or out-of-range query values fall back to the first page.
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	users, total, err := h.userService.PaginateUsers(c, page, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	res := types.PaginateResponse{
		Total:    total,
		Elements: users,
		Page:     page,
		Limit:    limit,
	}
	c.JSON(http.StatusOK, res)
}

func (h *userManageHandler) HandleGetUser(c *gin.Context) {

	id := c.Query("id")
	user, err := h.userService.GetUser(c, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   user,
	})
}

func (h *userManageHandler) HandleUpdateUser(c *gin.Context) {
	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	user := &types.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := h.userService.UpdateUser(c, req.ID, user); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
	})
}

func (h *userManageHandler) HandleDeleteUser(c *gin.Context) {

	id := c.Query("id")
	if err := h.userService.DeleteUser(c, id); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
	})
}

// HandleListAssignableUsers backs the assignee picker on the task form. Any
// authenticated user may call it; only id, name and profile matter to the
// picker but the password never leaves the struct anyway.
func (h *userManageHandler) HandleListAssignableUsers(c *gin.Context) {
	users, err := h.userService.ListAssignableUsers(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   users,
	})
}
