package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/service"
)

const msgNotFound = "Account not found"

// Account is the API response model for an account.
type Account struct {
	ID             int64          `json:"id" doc:"Account id"`
	UserID         int64          `json:"user_id" doc:"Owning user id"`
	Name           string         `json:"name" doc:"Account name"`
	Type           string         `json:"type" doc:"Account type, e.g. checking or savings"`
	Balance        apiutil.Amount `json:"balance" doc:"Current balance"`
	BalanceDisplay string         `json:"balance_display" doc:"Balance formatted in the account currency"`
	Currency       string         `json:"currency" doc:"ISO 4217 currency code"`
	IsActive       bool           `json:"is_active" doc:"Whether the account is active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func fromService(a *service.Account) Account {
	return Account{
		ID:             a.ID,
		UserID:         a.UserID,
		Name:           a.Name,
		Type:           a.Type,
		Balance:        apiutil.NewAmount(a.Balance),
		BalanceDisplay: apiutil.FormatMoney(a.Balance, a.Currency),
		Currency:       a.Currency,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// accountService is the subset of service.AccountService the handlers use.
type accountService interface {
	ListAccounts(ctx context.Context, userID int64) ([]service.Account, error)
	GetAccount(ctx context.Context, userID, id int64) (*service.Account, error)
	CreateAccount(ctx context.Context, userID int64, create service.AccountCreate) (*service.Account, error)
	UpdateAccount(ctx context.Context, userID, id int64, update service.AccountUpdate) (*service.Account, error)
	DeleteAccount(ctx context.Context, userID, id int64) error
}

// Handler serves /api/accounts.
type Handler struct {
	AccountService accountService
}

func NewHandler(svc accountService) *Handler {
	return &Handler{AccountService: svc}
}

// Register registers the account endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/api/accounts",
		Summary:     "List accounts",
		Tags:        []string{"Accounts"},
		Security:    apiutil.BearerSecurity,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/api/accounts/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
		Security:    apiutil.BearerSecurity,
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/api/accounts",
		Summary:       "Create an account",
		Description:   "Creates an account. Currency defaults to USD and balance to 0.",
		Tags:          []string{"Accounts"},
		Security:      apiutil.BearerSecurity,
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/api/accounts/{id}",
		Summary:     "Update an account",
		Description: "Updates the given fields. Omitted fields keep their value.",
		Tags:        []string{"Accounts"},
		Security:    apiutil.BearerSecurity,
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/api/accounts/{id}",
		Summary:     "Delete an account",
		Tags:        []string{"Accounts"},
		Security:    apiutil.BearerSecurity,
	}, h.delete)
}
