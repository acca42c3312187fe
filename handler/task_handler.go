package handler

import (
	"net/http"

	"github.com/contempsico/portal-be/middleware"
	"github.com/contempsico/portal-be/service"
	"github.com/contempsico/portal-be/types"
	"github.com/gin-gonic/gin"
)

type TaskHandler interface {
	HandleListTasks(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleUpdateTaskStatus(c *gin.Context)
	HandleToggleSubtask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandlePendingCount(c *gin.Context)
}

type taskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) TaskHandler {
	return &taskHandler{
		taskService: taskService,
	}
}

func (h *taskHandler) HandleListTasks(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	tasks, err := h.taskService.ListTasks(c, viewer)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   tasks,
	})
}

func (h *taskHandler) HandleGetTask(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	task, err := h.taskService.GetTask(c, viewer, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   task,
	})
}

func (h *taskHandler) HandleCreateTask(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	var req types.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	task, err := h.taskService.CreateTask(c, viewer, &req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   task,
	})
}

func (h *taskHandler) HandleUpdateTask(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	var req types.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	task, err := h.taskService.UpdateTask(c, viewer, c.Param("id"), &req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   task,
	})
}

func (h *taskHandler) HandleUpdateTaskStatus(c *gin.Context) {
	viewer := middleware.CurrentUser(c)

	var req types.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	task, err := h.taskService.ChangeStatus(c, viewer, c.Param("id"), req.Status)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   task,
	})
}

func (h *taskHandler) HandleToggleSubtask(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	task, err := h.taskService.ToggleSubtask(c, viewer, c.Param("id"), c.Param("subtaskId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   task,
	})
}

func (h *taskHandler) HandleDeleteTask(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	if err := h.taskService.DeleteTask(c, viewer, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
	})
}

func (h *taskHandler) HandlePendingCount(c *gin.Context) {
	viewer := middleware.CurrentUser(c)
	pending, err := h.taskService.PendingCount(c, viewer)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   types.PendingTasksResponse{Pending: pending},
	})
}
