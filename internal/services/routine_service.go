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

type routineServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewRoutineService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) RoutineService {
	return &routineServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *routineServiceImpl) Create(ctx context.Context, params CreateRoutineParams) (*models.Routine, error) {
	routine := models.Routine{
		UserID:      params.UserID,
		Title:       params.Title,
		Description: params.Description,
		WeekDay:     params.WeekDay,
		Time:        params.Time,
		Category:    params.Category,
		CreatedAt:   time.Now(),
	}

	routineUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate routine uuid")
		return nil, err
	}
	routine.ID = routineUUID.String()

	const insertRoutineQuery = `
INSERT INTO routines (id,
                      user_id,
                      title,
                      description,
                      week_day,
                      time,
                      category,
                      created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err = s.pgPool.Exec(
		ctx,
		insertRoutineQuery,
		routine.ID,
		routine.UserID,
		routine.Title,
		routine.Description,
		routine.WeekDay,
		routine.Time,
		routine.Category,
		routine.CreatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert routine")
		return nil, err
	}
	s.logger.Debug().
		Str("routine_id", routine.ID).
		Msg("inserted routine")

	s.logger.Info().
		Str("routine_id", routine.ID).
		Str("user_id", routine.UserID).
		Msg("created routine")
	return &routine, nil
}

func (s *routineServiceImpl) ListByUser(ctx context.Context, userID string) ([]*models.Routine, error) {
	const selectRoutinesByUserIDQuery = `
SELECT id,
       title,
       description,
       week_day,
       time,
       category,
       created_at
FROM routines
WHERE user_id = $1
ORDER BY week_day, time
`
	rows, err := s.pgPool.Query(
		ctx,
		selectRoutinesByUserIDQuery,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select routines by user id")
		return nil, err
	}
	defer rows.Close()

	var routines []*models.Routine
	for rows.Next() {
		routine := &models.Routine{UserID: userID}
		err = rows.Scan(
			&routine.ID,
			&routine.Title,
			&routine.Description,
			&routine.WeekDay,
			&routine.Time,
			&routine.Category,
			&routine.CreatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan routine")
			return nil, err
		}
		routines = append(routines, routine)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(routines)).
		Str("user_id", userID).
		Msg("selected routines by user id")

	return routines, nil
}

func (s *routineServiceImpl) Delete(ctx context.Context, params DeleteRoutineParams) (*models.Routine, error) {
	routine := models.Routine{
		ID:     params.ID,
		UserID: params.UserID,
	}

	const deleteRoutineQuery = `
DELETE FROM routines
WHERE id = $1 AND user_id = $2
RETURNING title, description, week_day, time, category, created_at
`
	err := s.pgPool.QueryRow(
		ctx,
		deleteRoutineQuery,
		routine.ID,
		routine.UserID,
	).Scan(
		&routine.Title,
		&routine.Description,
		&routine.WeekDay,
		&routine.Time,
		&routine.Category,
		&routine.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error().
				Str("routine_id", routine.ID).
				Str("user_id", routine.UserID).
				Msg("routine not found")
			return nil, ErrRoutineNotFound
		}

		s.logger.Error().
			Err(err).
			Str("routine_id", routine.ID).
			Msg("failed to delete routine")
		return nil, err
	}

	s.logger.Info().
		Str("routine_id", routine.ID).
		Str("user_id", routine.UserID).
		Msg("deleted routine")
	return &routine, nil
}
