package transaction

import (
	"context"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	StartDate  string `query:"start_date" doc:"Earliest date, inclusive (YYYY-MM-DD)"`
	EndDate    string `query:"end_date" doc:"Latest date, inclusive (YYYY-MM-DD)"`
	AccountID  int64  `query:"account_id" doc:"Only this account"`
	CategoryID int64  `query:"category_id" doc:"Only this category"`
	Type       string `query:"type" enum:"income,expense" doc:"Only this type"`
}

func (h *Handler) list(ctx context.Context, input *ListTransactionsInput) (*apiutil.Output[[]Transaction], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	stopTimer := logging.Timed(logData, "listTransactionsMs")
	transactions, err := h.TransactionService.ListTransactions(ctx, userID, service.TransactionFilter{
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		AccountID:  input.AccountID,
		CategoryID: input.CategoryID,
		Type:       ledger.TransactionType(input.Type),
	})
	stopTimer()
	if err != nil {
		return nil, apiutil.Internal(ctx, err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := make([]Transaction, len(transactions))
	for i := range transactions {
		resp[i] = fromService(&transactions[i])
	}
	return apiutil.OK(resp), nil
}

func (h *Handler) get(ctx context.Context, input *apiutil.IDParam) (*apiutil.Output[Transaction], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.Parse()
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}
	return apiutil.OK(fromService(tx)), nil
}
