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

func TestCreateTransaction(t *testing.T) {
	router := newTestRouter(stubServices{
		transactions: &stubTransactionService{
			createFn: func(_ context.Context, params services.CreateTransactionParams) (*models.Transaction, error) {
				return &models.Transaction{
					ID:          "txn-1",
					UserID:      params.UserID,
					Type:        params.Type,
					Description: params.Description,
					Amount:      params.Amount,
					Category:    params.Category,
					Date:        params.Date,
				}, nil
			},
		},
	})

	w := doRequest(t, router, http.MethodPost, "/api/transaction",
		map[string]any{
			"type":        "expense",
			"description": "Mercado",
			"amount":      152.40,
			"category":    "alimentacao",
			"date":        "2025-06-10",
		}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp transactionResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "expense", resp.Type)
	assert.InDelta(t, 152.40, resp.Amount, 0.001)
	assert.Equal(t, "2025-06-10", resp.Date)
}

func TestCreateTransactionValidation(t *testing.T) {
	router := newTestRouter(stubServices{})

	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "negative amount",
			body: map[string]any{"type": "expense", "description": "Mercado", "amount": -5, "category": "alimentacao", "date": "2025-06-10"},
		},
		{
			name: "zero amount",
			body: map[string]any{"type": "expense", "description": "Mercado", "amount": 0, "category": "alimentacao", "date": "2025-06-10"},
		},
		{
			name: "unknown type",
			body: map[string]any{"type": "transfer", "description": "Mercado", "amount": 10, "category": "alimentacao", "date": "2025-06-10"},
		},
		{
			name: "malformed date",
			body: map[string]any{"type": "income", "description": "Salario", "amount": 10, "category": "salario", "date": "10/06/2025"},
		},
		{
			name: "missing description",
			body: map[string]any{"type": "income", "amount": 10, "category": "salario", "date": "2025-06-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/transaction", tt.body, true)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRecentTransactions(t *testing.T) {
	var capturedPeriod string
	router := newTestRouter(stubServices{
		transactions: &stubTransactionService{
			recentFn: func(_ context.Context, userID, period string) ([]*models.Transaction, error) {
				capturedPeriod = period
				return []*models.Transaction{
					{ID: "txn-2", UserID: userID, Type: "income", Date: "2025-06-10", Amount: 100},
					{ID: "txn-1", UserID: userID, Type: "expense", Date: "2025-06-09", Amount: 50},
				}, nil
			},
		},
	})

	w := doRequest(t, router, http.MethodGet, "/api/transaction/recents/week", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "week", capturedPeriod)

	var resp []transactionResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "txn-2", resp[0].ID)
	assert.Equal(t, "txn-1", resp[1].ID)
}

func TestRecentTransactionsInvalidPeriod(t *testing.T) {
	router := newTestRouter(stubServices{
		transactions: &stubTransactionService{
			recentFn: func(_ context.Context, _, _ string) ([]*models.Transaction, error) {
				return nil, services.ErrInvalidPeriod
			},
		},
	})

	w := doRequest(t, router, http.MethodGet, "/api/transaction/recents/day", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteTransaction(t *testing.T) {
	router := newTestRouter(stubServices{
		transactions: &stubTransactionService{
			deleteFn: func(_ context.Context, params services.DeleteTransactionParams) error {
				if params.ID == "missing" {
					return services.ErrTransactionNotFound
				}
				return nil
			},
		},
	})

	w := doRequest(t, router, http.MethodDelete, "/api/transaction/txn-1", nil, true)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/api/transaction/missing", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
