package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/produtiva-app/backend/internal/models"
	"github.com/produtiva-app/backend/internal/services"
)

func TestGetProfile(t *testing.T) {
	router := newTestRouter(stubServices{
		auth: &stubAuthService{
			getProfileFn: func(_ context.Context, email string) (*models.User, error) {
				if email != "ana@x.com" {
					return nil, services.ErrUserNotFound
				}
				return &models.User{ID: testUserID, Name: "Ana", Email: email}, nil
			},
		},
	})

	w := doRequest(t, router, http.MethodPost, "/api/profile",
		map[string]any{"email": "ana@x.com"}, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User userResponse `json:"user"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Ana", resp.User.Name)

	// The profile lookup answers 401 on a miss, not 404.
	w = doRequest(t, router, http.MethodPost, "/api/profile",
		map[string]any{"email": "ghost@x.com"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	var captured services.UpdateProfileParams
	router := newTestRouter(stubServices{
		auth: &stubAuthService{
			updateProfileFn: func(_ context.Context, params services.UpdateProfileParams) (*models.User, error) {
				captured = params
				return &models.User{ID: params.UserID, Name: params.Name, Email: params.Email}, nil
			},
		},
	})

	w := doRequest(t, router, http.MethodPut, "/api/profile",
		map[string]any{
			"name":            "Ana Clara",
			"email":           "ana@x.com",
			"currentPassword": "password1",
			"newPassword":     "password2",
		}, true)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, testUserID, captured.UserID)
	require.NotNil(t, captured.CurrentPassword)
	require.NotNil(t, captured.NewPassword)
	assert.Equal(t, "password1", *captured.CurrentPassword)
	assert.Equal(t, "password2", *captured.NewPassword)
}

func TestUpdateProfilePasswordMismatch(t *testing.T) {
	router := newTestRouter(stubServices{
		auth: &stubAuthService{
			updateProfileFn: func(_ context.Context, _ services.UpdateProfileParams) (*models.User, error) {
				return nil, services.ErrUserPasswordMismatch
			},
		},
	})

	w := doRequest(t, router, http.MethodPut, "/api/profile",
		map[string]any{
			"name":            "Ana",
			"email":           "ana@x.com",
			"currentPassword": "wrongpass",
			"newPassword":     "password2",
		}, true)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileRequiresAuth(t *testing.T) {
	router := newTestRouter(stubServices{})

	w := doRequest(t, router, http.MethodPut, "/api/profile",
		map[string]any{"name": "Ana", "email": "ana@x.com"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
