package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/produtiva-app/backend/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrUserPasswordMismatch = errors.New("user password mismatch")
	ErrTaskNotFound         = errors.New("task not found")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrRoutineNotFound      = errors.New("routine not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidPeriod        = errors.New("invalid period")
)

// TokenClaims is the payload of an issued bearer token: the subject is
// the user ID and the email travels as a custom claim.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// Register creates a user with a hashed password and a fresh ID.
	//
	// It returns ErrUserAlreadyExists if the email is taken.
	Register(ctx context.Context, params RegisterParams) (*models.User, error)

	// Login authenticates the user by email and password and issues
	// a signed bearer token carrying the user ID and email.
	//
	// It returns ErrUserNotFound if the email doesn't resolve or
	// ErrUserPasswordMismatch if the password doesn't match.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)

	// GetProfileByEmail fetches a user for the profile screen.
	GetProfileByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateProfile changes name and email, and rotates the password
	// when both CurrentPassword and NewPassword are present.
	//
	// It returns ErrUserPasswordMismatch if CurrentPassword doesn't
	// match the stored hash and ErrUserAlreadyExists if the new
	// email is taken by another account.
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (*models.User, error)

	// ParseToken verifies a bearer token and returns its claims,
	// or jwt.ErrTokenExpired when the token is expired.
	ParseToken(token string) (*TokenClaims, error)
}

type TaskService interface {
	// Create persists a task with status forced to todo regardless
	// of anything the client attempted to pass.
	Create(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// ListByUser returns the user's tasks, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)

	// SetStatus overwrites the task status unconditionally. All nine
	// transitions between todo, progress and done are legal,
	// self-loops included.
	SetStatus(ctx context.Context, params SetTaskStatusParams) (*models.Task, error)

	Delete(ctx context.Context, params DeleteTaskParams) error

	// CountDoneLast30Days counts the user's done tasks created within
	// the trailing 30 days. The window filters by creation time, not
	// completion time, matching the observed product behavior.
	CountDoneLast30Days(ctx context.Context, userID string) (int64, error)

	// CountPendingLast30Days is the same window for todo tasks only;
	// progress tasks belong to neither count.
	CountPendingLast30Days(ctx context.Context, userID string) (int64, error)
}

type RoutineService interface {
	Create(ctx context.Context, params CreateRoutineParams) (*models.Routine, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Routine, error)

	// Delete removes the routine and returns it, or ErrRoutineNotFound.
	Delete(ctx context.Context, params DeleteRoutineParams) (*models.Routine, error)
}

type TransactionService interface {
	Create(ctx context.Context, params CreateTransactionParams) (*models.Transaction, error)
	Delete(ctx context.Context, params DeleteTransactionParams) error

	// Recent returns at most five transactions dated within the given
	// period (week, month or year), newest date first. The week starts
	// on Monday.
	Recent(ctx context.Context, userID, period string) ([]*models.Transaction, error)
}

type PomodoroService interface {
	// IncrementToday records one completed focus session for today.
	// The first session of a day creates the day row and settles the
	// streak: continued when the most recent prior row is yesterday,
	// reset to 1 otherwise. The write is a single upsert so concurrent
	// first-of-day calls cannot lose updates or hit duplicate keys.
	IncrementToday(ctx context.Context, userID string) (*PomodoroStats, error)

	// TodayCount returns today's count and streak, zeros if no row yet.
	TodayCount(ctx context.Context, userID string) (*PomodoroStats, error)

	// LatestStreak returns the most recent row's streak with a zero
	// count, regardless of which day that row belongs to.
	LatestStreak(ctx context.Context, userID string) (*PomodoroStats, error)
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

type LoginParams struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID    string
	Email     string
	Token     string
	ExpiresAt time.Time
}

type UpdateProfileParams struct {
	UserID          string
	Name            string
	Email           string
	CurrentPassword *string
	NewPassword     *string
}

type CreateTaskParams struct {
	UserID      string
	Title       string
	Description string
	Priority    string
	Category    string
}

type SetTaskStatusParams struct {
	ID     string
	UserID string
	Status string
}

type DeleteTaskParams struct {
	ID     string
	UserID string
}

type CreateRoutineParams struct {
	UserID      string
	Title       string
	Description string
	WeekDay     int
	Time        string
	Category    string
}

type DeleteRoutineParams struct {
	ID     string
	UserID string
}

type CreateTransactionParams struct {
	UserID      string
	Type        string
	Description string
	Amount      float64
	Category    string
	Date        string
}

type DeleteTransactionParams struct {
	ID     string
	UserID string
}

type PomodoroStats struct {
	Count         int
	CurrentStreak int
}
