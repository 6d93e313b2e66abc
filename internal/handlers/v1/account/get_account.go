package account

import (
	"context"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
)

func (h *Handler) get(ctx context.Context, input *apiutil.IDParam) (*apiutil.Output[Account], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.Parse()
	if err != nil {
		return nil, err
	}

	account, err := h.AccountService.GetAccount(ctx, userID, id)
	if err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}
	return apiutil.OK(fromService(account)), nil
}
