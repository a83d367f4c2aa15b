package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/produtiva-app/backend/internal/models"
	"github.com/produtiva-app/backend/internal/services"
)

type transactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	UserID      string  `json:"userId"`
}

func newTransactionResponse(transaction *models.Transaction) transactionResponse {
	return transactionResponse{
		ID:          transaction.ID,
		Type:        transaction.Type,
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Category:    transaction.Category,
		Date:        transaction.Date,
		UserID:      transaction.UserID,
	}
}

type createTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Description string  `json:"description" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,max=255"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
}

func (h *handlerImpl) HandleCreateTransaction(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	var req createTransactionRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	transaction, err := h.transactions.Create(c, services.CreateTransactionParams{
		UserID:      userID,
		Type:        req.Type,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        req.Date,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create transaction")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusCreated, newTransactionResponse(transaction))
}

func (h *handlerImpl) HandleDeleteTransaction(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	transactionID := c.Param("id")
	if transactionID == "" {
		h.logger.Error().Msg("no transaction id provided")
		abort(c, newBadRequestError("transaction id is required"))
		return
	}

	err := h.transactions.Delete(c, services.DeleteTransactionParams{
		ID:     transactionID,
		UserID: userID,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete transaction")
		switch {
		case errors.Is(err, services.ErrTransactionNotFound):
			abort(c, newNotFoundError(services.ErrTransactionNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleRecentTransactions(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	period := c.Param("period")

	transactions, err := h.transactions.Recent(c, userID, period)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("period", period).
			Msg("failed to list recent transactions")
		switch {
		case errors.Is(err, services.ErrInvalidPeriod):
			abort(c, newBadRequestError(services.ErrInvalidPeriod.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	response := make([]transactionResponse, len(transactions))
	for i, transaction := range transactions {
		response[i] = newTransactionResponse(transaction)
	}

	c.JSON(http.StatusOK, response)
}
