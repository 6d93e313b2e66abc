package account

import (
	"context"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
)

func (h *Handler) delete(ctx context.Context, input *apiutil.IDParam) (*apiutil.MessageOutput, error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.Parse()
	if err != nil {
		return nil, err
	}

	if err := h.AccountService.DeleteAccount(ctx, userID, id); err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}
	return apiutil.Message("Account deleted successfully"), nil
}
