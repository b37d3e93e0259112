package v1

import (
	"errors"
	"fmt"
	"net/http"

	"todo_service/internal/domain/tasks"
	"todo_service/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// TaskHandler exposes task CRUD over REST
type TaskHandler struct {
	service tasks.TaskService
	logger  logger.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(service tasks.TaskService, logger logger.Logger) *TaskHandler {
	return &TaskHandler{
		service: service,
		logger:  logger,
	}
}

// Create handles POST /tasks
func (h *TaskHandler) Create(ctx *gin.Context) {
	var req CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	task, err := h.service.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, tasks.ErrUserNotFound) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "User does not exist"})
			return
		}
		h.logger.Error("Failed to create task: %v", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newTaskResponse(task))
}

// List handles GET /tasks
func (h *TaskHandler) List(ctx *gin.Context) {
	records, err := h.service.List(ctx.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list tasks: %v", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	response := make([]TaskResponse, 0, len(records))
	for _, record := range records {
		response = append(response, newTaskResponse(record))
	}
	ctx.JSON(http.StatusOK, response)
}

// ListByUserID handles GET /tasks/user/:user_id
func (h *TaskHandler) ListByUserID(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}

	records, err := h.service.ListByUserID(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, tasks.ErrUserNotFound) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "User does not exist"})
			return
		}
		h.logger.Error("Failed to list tasks for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	response := make([]TaskResponse, 0, len(records))
	for _, record := range records {
		response = append(response, newTaskResponse(record))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID handles GET /tasks/:id
func (h *TaskHandler) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	task, err := h.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: "task not exists"})
			return
		}
		h.logger.Error("Failed to get task %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newTaskResponse(task))
}

// UpdateByID handles PUT /tasks/:id
func (h *TaskHandler) UpdateByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	task, err := h.service.UpdateByID(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: "task not exists"})
			return
		}
		h.logger.Error("Failed to update task %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newTaskResponse(task))
}

// DeleteByID handles DELETE /tasks/:id
func (h *TaskHandler) DeleteByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	task, err := h.service.DeleteByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, tasks.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: "Task ID not found"})
			return
		}
		h.logger.Error("Failed to delete task %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Task ID: %d has been deleted successfully", task.ID),
	})
}
