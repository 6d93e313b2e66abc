package transaction

import (
	"context"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// UpdateTransactionBody is the request body for updating a transaction.
// Omitted fields keep their value.
type UpdateTransactionBody struct {
	AccountID   *int64          `json:"account_id,omitempty"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	Amount      *apiutil.Amount `json:"amount,omitempty"`
	Type        *string         `json:"type,omitempty" enum:"income,expense"`
	Description *string         `json:"description,omitempty"`
	Date        *string         `json:"date,omitempty"`
}

type UpdateTransactionInput struct {
	apiutil.IDParam
	Body UpdateTransactionBody
}

func (h *Handler) update(ctx context.Context, input *UpdateTransactionInput) (*apiutil.Output[Transaction], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.Parse()
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(logging.GetLogData(ctx), "updateTransactionMs")
	tx, err := h.TransactionService.UpdateTransaction(ctx, userID, id, service.TransactionUpdate{
		AccountID:   input.Body.AccountID,
		CategoryID:  input.Body.CategoryID,
		Amount:      apiutil.DecimalPtr(input.Body.Amount),
		Type:        typePtr(input.Body.Type),
		Description: input.Body.Description,
		Date:        input.Body.Date,
	})
	stopTimer()
	if err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}
	return apiutil.OK(fromService(tx)), nil
}

func (h *Handler) delete(ctx context.Context, input *apiutil.IDParam) (*apiutil.MessageOutput, error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.Parse()
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.DeleteTransaction(ctx, userID, id); err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}
	return apiutil.Message("Transaction deleted successfully"), nil
}
