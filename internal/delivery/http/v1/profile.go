package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/produtiva-app/backend/internal/services"
)

type getProfileRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
}

// HandleGetProfile looks a user up by email for the profile screen. The
// route is unauthenticated and answers 401 on a miss, matching the wire
// contract the client already depends on.
func (h *handlerImpl) HandleGetProfile(c *gin.Context) {
	var req getProfileRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	user, err := h.auth.GetProfileByEmail(c, req.Email)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get profile")
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			abort(c, newUnauthorizedError(services.ErrUserNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

type updateProfileRequest struct {
	Name            string  `json:"name" binding:"required,max=255"`
	Email           string  `json:"email" binding:"required,email,max=255"`
	CurrentPassword *string `json:"currentPassword,omitempty" binding:"omitempty,min=6,max=255"`
	NewPassword     *string `json:"newPassword,omitempty" binding:"omitempty,min=6,max=255"`
}

func (h *handlerImpl) HandleUpdateProfile(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	user, err := h.auth.UpdateProfile(c, services.UpdateProfileParams{
		UserID:          userID,
		Name:            req.Name,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to update profile")
		switch {
		case errors.Is(err, services.ErrUserPasswordMismatch):
			abort(c, newUnauthorizedError(services.ErrUserPasswordMismatch.Error()))
		case errors.Is(err, services.ErrUserAlreadyExists):
			abort(c, newBadRequestError(services.ErrUserAlreadyExists.Error()))
		case errors.Is(err, services.ErrUserNotFound):
			abort(c, newNotFoundError(services.ErrUserNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}
