package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type pomodoroServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewPomodoroService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) PomodoroService {
	return &pomodoroServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *pomodoroServiceImpl) IncrementToday(ctx context.Context, userID string) (*PomodoroStats, error) {
	now := time.Now()
	today := now.Format(dateLayout)

	// The streak only matters when today's row doesn't exist yet. It is
	// settled from the most recent prior row before the upsert; if a
	// concurrent request wins the insert, the conflict path ignores it.
	lastDate, lastStreak, err := s.latestDay(ctx, userID)
	if err != nil {
		return nil, err
	}
	streak := nextStreak(lastDate, today, lastStreak)

	dayUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate pomodoro uuid")
		return nil, err
	}

	const upsertDayQuery = `
INSERT INTO pomodoro_days (id,
                           user_id,
                           date,
                           count,
                           current_streak,
                           last_updated)
VALUES ($1, $2, $3, 1, $4, $5)
ON CONFLICT (user_id, date)
DO UPDATE SET count = pomodoro_days.count + 1,
              last_updated = EXCLUDED.last_updated
RETURNING count, current_streak
`
	var stats PomodoroStats
	err = s.pgPool.QueryRow(
		ctx,
		upsertDayQuery,
		dayUUID.String(),
		userID,
		today,
		streak,
		now,
	).Scan(
		&stats.Count,
		&stats.CurrentStreak,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to upsert pomodoro day")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("date", today).
		Int("count", stats.Count).
		Int("streak", stats.CurrentStreak).
		Msg("incremented pomodoro count")
	return &stats, nil
}

func (s *pomodoroServiceImpl) TodayCount(ctx context.Context, userID string) (*PomodoroStats, error) {
	today := time.Now().Format(dateLayout)

	const selectTodayQuery = `
SELECT count,
       current_streak
FROM pomodoro_days
WHERE user_id = $1 AND date = $2
`
	var stats PomodoroStats
	err := s.pgPool.QueryRow(
		ctx,
		selectTodayQuery,
		userID,
		today,
	).Scan(
		&stats.Count,
		&stats.CurrentStreak,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No session yet today, both values read as zero.
			return &PomodoroStats{}, nil
		}

		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select pomodoro day")
		return nil, err
	}
	s.logger.Debug().
		Str("user_id", userID).
		Str("date", today).
		Int("count", stats.Count).
		Msg("selected pomodoro day")

	return &stats, nil
}

func (s *pomodoroServiceImpl) LatestStreak(ctx context.Context, userID string) (*PomodoroStats, error) {
	_, streak, err := s.latestDay(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &PomodoroStats{CurrentStreak: streak}, nil
}

func (s *pomodoroServiceImpl) latestDay(ctx context.Context, userID string) (string, int, error) {
	const selectLatestDayQuery = `
SELECT date,
       current_streak
FROM pomodoro_days
WHERE user_id = $1
ORDER BY date DESC
LIMIT 1
`
	var (
		date   string
		streak int
	)
	err := s.pgPool.QueryRow(
		ctx,
		selectLatestDayQuery,
		userID,
	).Scan(
		&date,
		&streak,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, nil
		}

		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select latest pomodoro day")
		return "", 0, err
	}
	return date, streak, nil
}

// nextStreak settles the streak for the first session of a new day:
// continued when the most recent prior row is exactly yesterday, reset
// to 1 on any gap. A missing prior row starts a fresh streak.
func nextStreak(lastDate, today string, lastStreak int) int {
	if lastDate == "" {
		return 1
	}

	t, err := time.Parse(dateLayout, today)
	if err != nil {
		return 1
	}
	yesterday := t.AddDate(0, 0, -1).Format(dateLayout)

	if lastDate == yesterday {
		return lastStreak + 1
	}
	return 1
}
