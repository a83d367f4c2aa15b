package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/produtiva-app/backend/internal/models"
)

const dateLayout = "2006-01-02"

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// recentLimit caps the "recent transactions" response the dashboard shows.
const recentLimit = 5

type transactionServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTransactionService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) TransactionService {
	return &transactionServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *transactionServiceImpl) Create(ctx context.Context, params CreateTransactionParams) (*models.Transaction, error) {
	transaction := models.Transaction{
		UserID:      params.UserID,
		Type:        params.Type,
		Description: params.Description,
		Amount:      params.Amount,
		Category:    params.Category,
		Date:        params.Date,
	}

	transactionUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate transaction uuid")
		return nil, err
	}
	transaction.ID = transactionUUID.String()

	const insertTransactionQuery = `
INSERT INTO transactions (id,
                          user_id,
                          type,
                          description,
                          amount,
                          category,
                          date)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err = s.pgPool.Exec(
		ctx,
		insertTransactionQuery,
		transaction.ID,
		transaction.UserID,
		transaction.Type,
		transaction.Description,
		transaction.Amount,
		transaction.Category,
		transaction.Date,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert transaction")
		return nil, err
	}
	s.logger.Debug().
		Str("transaction_id", transaction.ID).
		Msg("inserted transaction")

	s.logger.Info().
		Str("transaction_id", transaction.ID).
		Str("user_id", transaction.UserID).
		Str("type", transaction.Type).
		Msg("created transaction")
	return &transaction, nil
}

func (s *transactionServiceImpl) Delete(ctx context.Context, params DeleteTransactionParams) error {
	const deleteTransactionQuery = `
DELETE FROM transactions
WHERE id = $1 AND user_id = $2
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteTransactionQuery,
		params.ID,
		params.UserID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("transaction_id", params.ID).
			Msg("failed to delete transaction")
		return err
	}
	if tag.RowsAffected() == 0 {
		s.logger.Error().
			Str("transaction_id", params.ID).
			Str("user_id", params.UserID).
			Msg("transaction not found")
		return ErrTransactionNotFound
	}

	s.logger.Info().
		Str("transaction_id", params.ID).
		Str("user_id", params.UserID).
		Msg("deleted transaction")
	return nil
}

func (s *transactionServiceImpl) Recent(ctx context.Context, userID, period string) ([]*models.Transaction, error) {
	start, err := periodStart(period, time.Now())
	if err != nil {
		return nil, err
	}

	const selectRecentTransactionsQuery = `
SELECT id,
       type,
       description,
       amount,
       category,
       date
FROM transactions
WHERE user_id = $1 AND
      date >= $2
ORDER BY date DESC
LIMIT $3
`
	rows, err := s.pgPool.Query(
		ctx,
		selectRecentTransactionsQuery,
		userID,
		start,
		recentLimit,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select recent transactions")
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		transaction := &models.Transaction{UserID: userID}
		err = rows.Scan(
			&transaction.ID,
			&transaction.Type,
			&transaction.Description,
			&transaction.Amount,
			&transaction.Category,
			&transaction.Date,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan transaction")
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(transactions)).
		Str("user_id", userID).
		Str("period", period).
		Msg("selected recent transactions")

	return transactions, nil
}

// periodStart computes the first calendar day of the period containing now:
// the Monday of the current ISO week, the first of the current month, or
// January 1st of the current year.
func periodStart(period string, now time.Time) (string, error) {
	switch period {
	case PeriodWeek:
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		return now.AddDate(0, 0, -daysSinceMonday).Format(dateLayout), nil
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout), nil
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()).Format(dateLayout), nil
	default:
		return "", ErrInvalidPeriod
	}
}
