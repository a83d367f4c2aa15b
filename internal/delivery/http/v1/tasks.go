package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/produtiva-app/backend/internal/models"
	"github.com/produtiva-app/backend/internal/services"
)

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Category:    task.Category,
		Status:      task.Status,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
	}
}

// createTaskRequest deliberately has no status field: a task is always
// born todo, whatever the client tries to pass.
type createTaskRequest struct {
	Title       string  `json:"title" binding:"required,min=5,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=10"`
	Priority    string  `json:"priority" binding:"required,oneof=baixa media alta"`
	Category    string  `json:"category" binding:"required,oneof=trabalho estudos pessoal saude casa financeiro outros"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	params := services.CreateTaskParams{
		UserID:   userID,
		Title:    req.Title,
		Priority: req.Priority,
		Category: req.Category,
	}
	if req.Description != nil {
		params.Description = *req.Description
	}

	task, err := h.tasks.Create(c, params)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListByUser(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}

	c.JSON(http.StatusOK, response)
}

type setTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=todo progress done"`
}

func (h *handlerImpl) HandleSetTaskStatus(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		h.logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError("task id is required"))
		return
	}

	var req setTaskStatusRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.SetStatus(c, services.SetTaskStatusParams{
		ID:     taskID,
		UserID: userID,
		Status: req.Status,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to set task status")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		case errors.Is(err, services.ErrInvalidTaskStatus):
			abort(c, newBadRequestError(services.ErrInvalidTaskStatus.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		h.logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError("task id is required"))
		return
	}

	err := h.tasks.Delete(c, services.DeleteTaskParams{
		ID:     taskID,
		UserID: userID,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleCountDoneTasks(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	count, err := h.tasks.CountDoneLast30Days(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to count done tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *handlerImpl) HandleCountPendingTasks(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	count, err := h.tasks.CountPendingLast30Days(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to count pending tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
