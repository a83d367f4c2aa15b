package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/produtiva-app/backend/internal/models"
)

// aggregateWindow is the trailing window of the done/pending counts.
const aggregateWindow = 30 * 24 * time.Hour

type taskServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTaskService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *taskServiceImpl) Create(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	task := models.Task{
		UserID:      params.UserID,
		Title:       params.Title,
		Description: params.Description,
		Priority:    params.Priority,
		Category:    params.Category,
		Status:      models.StatusTodo,
		CreatedAt:   time.Now(),
	}

	taskUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate task uuid")
		return nil, err
	}
	task.ID = taskUUID.String()

	const insertTaskQuery = `
INSERT INTO tasks (id,
                   user_id,
                   title,
                   description,
                   priority,
                   category,
                   status,
                   created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err = s.pgPool.Exec(
		ctx,
		insertTaskQuery,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Priority,
		task.Category,
		task.Status,
		task.CreatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}
	s.logger.Debug().
		Str("task_id", task.ID).
		Msg("inserted task")

	s.logger.Info().
		Str("task_id", task.ID).
		Str("user_id", task.UserID).
		Msg("created task")
	return &task, nil
}

func (s *taskServiceImpl) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	const selectTasksByUserIDQuery = `
SELECT id,
       title,
       description,
       priority,
       category,
       status,
       created_at
FROM tasks
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := s.pgPool.Query(
		ctx,
		selectTasksByUserIDQuery,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks by user id")
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{UserID: userID}
		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Priority,
			&task.Category,
			&task.Status,
			&task.CreatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", userID).
		Msg("selected tasks by user id")

	return tasks, nil
}

func (s *taskServiceImpl) SetStatus(ctx context.Context, params SetTaskStatusParams) (*models.Task, error) {
	if params.Status != models.StatusTodo &&
		params.Status != models.StatusProgress &&
		params.Status != models.StatusDone {
		return nil, ErrInvalidTaskStatus
	}

	task := models.Task{
		ID:     params.ID,
		UserID: params.UserID,
		Status: params.Status,
	}

	const updateTaskStatusQuery = `
UPDATE tasks
SET status = $1
WHERE id = $2 AND user_id = $3
RETURNING title, description, priority, category, created_at
`
	err := s.pgPool.QueryRow(
		ctx,
		updateTaskStatusQuery,
		task.Status,
		task.ID,
		task.UserID,
	).Scan(
		&task.Title,
		&task.Description,
		&task.Priority,
		&task.Category,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error().
				Str("task_id", task.ID).
				Str("user_id", task.UserID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to update task status")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("status", task.Status).
		Msg("updated task status")
	return &task, nil
}

func (s *taskServiceImpl) Delete(ctx context.Context, params DeleteTaskParams) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1 AND user_id = $2
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteTaskQuery,
		params.ID,
		params.UserID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", params.ID).
			Msg("failed to delete task")
		return err
	}
	if tag.RowsAffected() == 0 {
		s.logger.Error().
			Str("task_id", params.ID).
			Str("user_id", params.UserID).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.logger.Info().
		Str("task_id", params.ID).
		Str("user_id", params.UserID).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) CountDoneLast30Days(ctx context.Context, userID string) (int64, error) {
	return s.countByStatusInWindow(ctx, userID, models.StatusDone)
}

func (s *taskServiceImpl) CountPendingLast30Days(ctx context.Context, userID string) (int64, error) {
	return s.countByStatusInWindow(ctx, userID, models.StatusTodo)
}

// The window filters by created_at rather than a completion timestamp,
// and progress tasks count toward neither bucket. Both are observed
// product behavior the client's stats screen depends on.
func (s *taskServiceImpl) countByStatusInWindow(ctx context.Context, userID, status string) (int64, error) {
	const countTasksQuery = `
SELECT COUNT(*)
FROM tasks
WHERE user_id = $1 AND
      status = $2 AND
      created_at >= $3
`
	var count int64
	err := s.pgPool.QueryRow(
		ctx,
		countTasksQuery,
		userID,
		status,
		time.Now().Add(-aggregateWindow),
	).Scan(&count)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Str("status", status).
			Msg("failed to count tasks")
		return 0, err
	}
	s.logger.Debug().
		Int64("count", count).
		Str("user_id", userID).
		Str("status", status).
		Msg("counted tasks in window")

	return count, nil
}
