package v1

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/produtiva-app/backend/internal/models"
	"github.com/produtiva-app/backend/internal/services"
)

func TestLogin(t *testing.T) {
	router := newTestRouter(stubServices{
		auth: &stubAuthService{
			loginFn: func(_ context.Context, params services.LoginParams) (*services.LoginResult, error) {
				if params.Password != "password1" {
					return nil, services.ErrUserPasswordMismatch
				}
				return &services.LoginResult{
					UserID:    testUserID,
					Email:     params.Email,
					Token:     "issued-token",
					ExpiresAt: time.Now().Add(24 * time.Hour),
				}, nil
			},
		},
	})

	w := doRequest(t, router, http.MethodPost, "/api/login",
		map[string]any{"email": "ana@x.com", "password": "password1"}, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp loginResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "ana@x.com", resp.Email)
	assert.Equal(t, "issued-token", resp.Token)
}

func TestLoginBadCredentials(t *testing.T) {
	router := newTestRouter(stubServices{
		auth: &stubAuthService{
			loginFn: func(_ context.Context, _ services.LoginParams) (*services.LoginResult, error) {
				return nil, services.ErrUserPasswordMismatch
			},
		},
	})

	w := doRequest(t, router, http.MethodPost, "/api/login",
		map[string]any{"email": "ana@x.com", "password": "wrongpass"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	router := newTestRouter(stubServices{
		auth: &stubAuthService{
			loginFn: func(_ context.Context, _ services.LoginParams) (*services.LoginResult, error) {
				return nil, services.ErrUserNotFound
			},
		},
	})

	w := doRequest(t, router, http.MethodPost, "/api/login",
		map[string]any{"email": "ghost@x.com", "password": "password1"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginValidation(t *testing.T) {
	router := newTestRouter(stubServices{})

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "invalid email", body: map[string]any{"email": "not-an-email", "password": "password1"}},
		{name: "short password", body: map[string]any{"email": "ana@x.com", "password": "abc"}},
		{name: "missing body", body: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/login", tt.body, false)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateUser(t *testing.T) {
	router := newTestRouter(stubServices{
		auth: &stubAuthService{
			registerFn: func(_ context.Context, params services.RegisterParams) (*models.User, error) {
				return &models.User{
					ID:        testUserID,
					Name:      params.Name,
					Email:     params.Email,
					CreatedAt: time.Now(),
				}, nil
			},
		},
	})

	w := doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"name": "Ana", "email": "ana@x.com", "password": "password1"}, false)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp userResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, "ana@x.com", resp.Email)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	router := newTestRouter(stubServices{
		auth: &stubAuthService{
			registerFn: func(_ context.Context, _ services.RegisterParams) (*models.User, error) {
				return nil, services.ErrUserAlreadyExists
			},
		},
	})

	w := doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"name": "Ana", "email": "ana@x.com", "password": "password1"}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
