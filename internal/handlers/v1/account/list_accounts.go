package account

import (
	"context"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
)

func (h *Handler) list(ctx context.Context, _ *struct{}) (*apiutil.Output[[]Account], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	stopTimer := logging.Timed(logData, "listAccountsMs")
	accounts, err := h.AccountService.ListAccounts(ctx, userID)
	stopTimer()
	if err != nil {
		return nil, apiutil.Internal(ctx, err)
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := make([]Account, len(accounts))
	for i := range accounts {
		resp[i] = fromService(&accounts[i])
	}
	return apiutil.OK(resp), nil
}
