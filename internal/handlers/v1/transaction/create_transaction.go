package transaction

import (
	"context"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID   int64          `json:"account_id" doc:"Account id, must belong to the caller"`
	CategoryID  int64          `json:"category_id" doc:"Category id, must belong to the caller"`
	Amount      apiutil.Amount `json:"amount" doc:"Positive amount"`
	Type        string         `json:"type" enum:"income,expense"`
	Description string         `json:"description,omitempty"`
	Date        string         `json:"date" doc:"ISO-8601 date (YYYY-MM-DD)"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

func (h *Handler) create(ctx context.Context, input *CreateTransactionInput) (*apiutil.Output[Transaction], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	stopTimer := logging.Timed(logData, "createTransactionMs")
	tx, err := h.TransactionService.CreateTransaction(ctx, userID, service.TransactionCreate{
		AccountID:   input.Body.AccountID,
		CategoryID:  input.Body.CategoryID,
		Amount:      input.Body.Amount.Decimal,
		Type:        ledger.TransactionType(input.Body.Type),
		Description: input.Body.Description,
		Date:        input.Body.Date,
	})
	stopTimer()
	if err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}

	if logData != nil {
		logData.AddData("transactionID", tx.ID)
	}
	return apiutil.Created(fromService(tx)), nil
}
