package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/produtiva-app/backend/internal/models"
	"github.com/produtiva-app/backend/internal/services"
)

const (
	testUserID    = "0196d2f0-6b3a-7c41-b1a5-2f9be4a1c001"
	testUserEmail = "ana@x.com"
	testToken     = "valid-test-token"
)

var errStubNotConfigured = errors.New("stub not configured")

type stubAuthService struct {
	registerFn      func(ctx context.Context, params services.RegisterParams) (*models.User, error)
	loginFn         func(ctx context.Context, params services.LoginParams) (*services.LoginResult, error)
	getProfileFn    func(ctx context.Context, email string) (*models.User, error)
	updateProfileFn func(ctx context.Context, params services.UpdateProfileParams) (*models.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, params services.RegisterParams) (*models.User, error) {
	if s.registerFn == nil {
		return nil, errStubNotConfigured
	}
	return s.registerFn(ctx, params)
}

func (s *stubAuthService) Login(ctx context.Context, params services.LoginParams) (*services.LoginResult, error) {
	if s.loginFn == nil {
		return nil, errStubNotConfigured
	}
	return s.loginFn(ctx, params)
}

func (s *stubAuthService) GetProfileByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getProfileFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getProfileFn(ctx, email)
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, params services.UpdateProfileParams) (*models.User, error) {
	if s.updateProfileFn == nil {
		return nil, errStubNotConfigured
	}
	return s.updateProfileFn(ctx, params)
}

func (s *stubAuthService) ParseToken(token string) (*services.TokenClaims, error) {
	if token != testToken {
		return nil, errors.New("invalid token")
	}
	return &services.TokenClaims{
		Email: testUserEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: testUserID,
		},
	}, nil
}

type stubTaskService struct {
	createFn       func(ctx context.Context, params services.CreateTaskParams) (*models.Task, error)
	listFn         func(ctx context.Context, userID string) ([]*models.Task, error)
	setStatusFn    func(ctx context.Context, params services.SetTaskStatusParams) (*models.Task, error)
	deleteFn       func(ctx context.Context, params services.DeleteTaskParams) error
	countDoneFn    func(ctx context.Context, userID string) (int64, error)
	countPendingFn func(ctx context.Context, userID string) (int64, error)
}

func (s *stubTaskService) Create(ctx context.Context, params services.CreateTaskParams) (*models.Task, error) {
	if s.createFn == nil {
		return nil, errStubNotConfigured
	}
	return s.createFn(ctx, params)
}

func (s *stubTaskService) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	if s.listFn == nil {
		return nil, errStubNotConfigured
	}
	return s.listFn(ctx, userID)
}

func (s *stubTaskService) SetStatus(ctx context.Context, params services.SetTaskStatusParams) (*models.Task, error) {
	if s.setStatusFn == nil {
		return nil, errStubNotConfigured
	}
	return s.setStatusFn(ctx, params)
}

func (s *stubTaskService) Delete(ctx context.Context, params services.DeleteTaskParams) error {
	if s.deleteFn == nil {
		return errStubNotConfigured
	}
	return s.deleteFn(ctx, params)
}

func (s *stubTaskService) CountDoneLast30Days(ctx context.Context, userID string) (int64, error) {
	if s.countDoneFn == nil {
		return 0, errStubNotConfigured
	}
	return s.countDoneFn(ctx, userID)
}

func (s *stubTaskService) CountPendingLast30Days(ctx context.Context, userID string) (int64, error) {
	if s.countPendingFn == nil {
		return 0, errStubNotConfigured
	}
	return s.countPendingFn(ctx, userID)
}

type stubRoutineService struct {
	createFn func(ctx context.Context, params services.CreateRoutineParams) (*models.Routine, error)
	listFn   func(ctx context.Context, userID string) ([]*models.Routine, error)
	deleteFn func(ctx context.Context, params services.DeleteRoutineParams) (*models.Routine, error)
}

func (s *stubRoutineService) Create(ctx context.Context, params services.CreateRoutineParams) (*models.Routine, error) {
	if s.createFn == nil {
		return nil, errStubNotConfigured
	}
	return s.createFn(ctx, params)
}

func (s *stubRoutineService) ListByUser(ctx context.Context, userID string) ([]*models.Routine, error) {
	if s.listFn == nil {
		return nil, errStubNotConfigured
	}
	return s.listFn(ctx, userID)
}

func (s *stubRoutineService) Delete(ctx context.Context, params services.DeleteRoutineParams) (*models.Routine, error) {
	if s.deleteFn == nil {
		return nil, errStubNotConfigured
	}
	return s.deleteFn(ctx, params)
}

type stubTransactionService struct {
	createFn func(ctx context.Context, params services.CreateTransactionParams) (*models.Transaction, error)
	deleteFn func(ctx context.Context, params services.DeleteTransactionParams) error
	recentFn func(ctx context.Context, userID, period string) ([]*models.Transaction, error)
}

func (s *stubTransactionService) Create(ctx context.Context, params services.CreateTransactionParams) (*models.Transaction, error) {
	if s.createFn == nil {
		return nil, errStubNotConfigured
	}
	return s.createFn(ctx, params)
}

func (s *stubTransactionService) Delete(ctx context.Context, params services.DeleteTransactionParams) error {
	if s.deleteFn == nil {
		return errStubNotConfigured
	}
	return s.deleteFn(ctx, params)
}

func (s *stubTransactionService) Recent(ctx context.Context, userID, period string) ([]*models.Transaction, error) {
	if s.recentFn == nil {
		return nil, errStubNotConfigured
	}
	return s.recentFn(ctx, userID, period)
}

type stubPomodoroService struct {
	incrementFn    func(ctx context.Context, userID string) (*services.PomodoroStats, error)
	todayCountFn   func(ctx context.Context, userID string) (*services.PomodoroStats, error)
	latestStreakFn func(ctx context.Context, userID string) (*services.PomodoroStats, error)
}

func (s *stubPomodoroService) IncrementToday(ctx context.Context, userID string) (*services.PomodoroStats, error) {
	if s.incrementFn == nil {
		return nil, errStubNotConfigured
	}
	return s.incrementFn(ctx, userID)
}

func (s *stubPomodoroService) TodayCount(ctx context.Context, userID string) (*services.PomodoroStats, error) {
	if s.todayCountFn == nil {
		return nil, errStubNotConfigured
	}
	return s.todayCountFn(ctx, userID)
}

func (s *stubPomodoroService) LatestStreak(ctx context.Context, userID string) (*services.PomodoroStats, error) {
	if s.latestStreakFn == nil {
		return nil, errStubNotConfigured
	}
	return s.latestStreakFn(ctx, userID)
}

type stubServices struct {
	auth         *stubAuthService
	tasks        *stubTaskService
	routines     *stubRoutineService
	transactions *stubTransactionService
	pomodoro     *stubPomodoroService
}

func newTestRouter(stubs stubServices) *gin.Engine {
	gin.SetMode(gin.TestMode)

	if stubs.auth == nil {
		stubs.auth = &stubAuthService{}
	}
	if stubs.tasks == nil {
		stubs.tasks = &stubTaskService{}
	}
	if stubs.routines == nil {
		stubs.routines = &stubRoutineService{}
	}
	if stubs.transactions == nil {
		stubs.transactions = &stubTransactionService{}
	}
	if stubs.pomodoro == nil {
		stubs.pomodoro = &stubPomodoroService{}
	}

	router := gin.New()
	RegisterRoutes(router, New(
		zerolog.Nop(),
		stubs.auth,
		stubs.tasks,
		stubs.routines,
		stubs.transactions,
		stubs.pomodoro,
	))
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
