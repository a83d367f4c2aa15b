package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/produtiva-app/backend/internal/models"
	"github.com/produtiva-app/backend/internal/services"
)

type routineResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	WeekDay     int       `json:"weekDay"`
	Time        string    `json:"time"`
	Category    string    `json:"category"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newRoutineResponse(routine *models.Routine) routineResponse {
	return routineResponse{
		ID:          routine.ID,
		Title:       routine.Title,
		Description: routine.Description,
		WeekDay:     routine.WeekDay,
		Time:        routine.Time,
		Category:    routine.Category,
		UserID:      routine.UserID,
		CreatedAt:   routine.CreatedAt,
	}
}

// WeekDay is a pointer so Sunday (0) survives the required check.
type createRoutineRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	WeekDay     *int    `json:"weekDay" binding:"required,min=0,max=6"`
	Time        *string `json:"time,omitempty"`
	Category    *string `json:"category,omitempty"`
}

func (h *handlerImpl) HandleCreateRoutine(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	var req createRoutineRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	params := services.CreateRoutineParams{
		UserID:  userID,
		Title:   req.Title,
		WeekDay: *req.WeekDay,
	}
	if req.Description != nil {
		params.Description = *req.Description
	}
	if req.Time != nil {
		params.Time = *req.Time
	}
	if req.Category != nil {
		params.Category = *req.Category
	}

	routine, err := h.routines.Create(c, params)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create routine")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusCreated, newRoutineResponse(routine))
}

func (h *handlerImpl) HandleGetRoutines(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	routines, err := h.routines.ListByUser(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list routines")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]routineResponse, len(routines))
	for i, routine := range routines {
		response[i] = newRoutineResponse(routine)
	}

	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleDeleteRoutine(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	routineID := c.Param("id")
	if routineID == "" {
		h.logger.Error().Msg("no routine id provided")
		abort(c, newBadRequestError("routine id is required"))
		return
	}

	routine, err := h.routines.Delete(c, services.DeleteRoutineParams{
		ID:     routineID,
		UserID: userID,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete routine")
		switch {
		case errors.Is(err, services.ErrRoutineNotFound):
			abort(c, newNotFoundError(services.ErrRoutineNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, newRoutineResponse(routine))
}
