package account

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name     string          `json:"name" minLength:"1" doc:"Account name"`
	Type     string          `json:"type" minLength:"1" doc:"Account type"`
	Balance  *apiutil.Amount `json:"balance,omitempty" doc:"Opening balance, defaults to 0"`
	Currency string          `json:"currency,omitempty" doc:"Currency code, defaults to USD"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

func (h *Handler) create(ctx context.Context, input *CreateAccountInput) (*apiutil.Output[Account], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	balance := decimal.Zero
	if input.Body.Balance != nil {
		balance = input.Body.Balance.Decimal
	}

	logData := logging.GetLogData(ctx)
	stopTimer := logging.Timed(logData, "createAccountMs")
	account, err := h.AccountService.CreateAccount(ctx, userID, service.AccountCreate{
		Name:     input.Body.Name,
		Type:     input.Body.Type,
		Balance:  balance,
		Currency: input.Body.Currency,
	})
	stopTimer()
	if err != nil {
		return nil, apiutil.Internal(ctx, err)
	}

	if logData != nil {
		logData.AddData("accountID", account.ID)
	}
	return apiutil.Created(fromService(account)), nil
}
