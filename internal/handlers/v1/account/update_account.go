package account

import (
	"context"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/service"
)

// UpdateAccountBody is the request body for updating an account. Setting
// balance is a manual adjustment.
type UpdateAccountBody struct {
	Name     *string         `json:"name,omitempty" minLength:"1"`
	Type     *string         `json:"type,omitempty" minLength:"1"`
	Balance  *apiutil.Amount `json:"balance,omitempty"`
	Currency *string         `json:"currency,omitempty"`
	IsActive *bool           `json:"is_active,omitempty"`
}

type UpdateAccountInput struct {
	apiutil.IDParam
	Body UpdateAccountBody
}

func (h *Handler) update(ctx context.Context, input *UpdateAccountInput) (*apiutil.Output[Account], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.Parse()
	if err != nil {
		return nil, err
	}

	account, err := h.AccountService.UpdateAccount(ctx, userID, id, service.AccountUpdate{
		Name:     input.Body.Name,
		Type:     input.Body.Type,
		Balance:  apiutil.DecimalPtr(input.Body.Balance),
		Currency: input.Body.Currency,
		IsActive: input.Body.IsActive,
	})
	if err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}
	return apiutil.OK(fromService(account)), nil
}
