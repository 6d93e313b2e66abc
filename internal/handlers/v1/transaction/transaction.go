package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/service"
)

const msgNotFound = "Transaction not found"

// Transaction is the API response model for a transaction, including the
// display details of its account and category.
type Transaction struct {
	ID            int64          `json:"id"`
	UserID        int64          `json:"user_id"`
	AccountID     int64          `json:"account_id"`
	CategoryID    int64          `json:"category_id"`
	Amount        apiutil.Amount `json:"amount"`
	Type          string         `json:"type" enum:"income,expense"`
	Description   string         `json:"description"`
	Date          string         `json:"date" doc:"ISO-8601 date"`
	AccountName   string         `json:"account_name"`
	CategoryName  string         `json:"category_name"`
	CategoryColor string         `json:"category_color"`
	CategoryIcon  string         `json:"category_icon,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func fromService(t *service.Transaction) Transaction {
	return Transaction{
		ID:            t.ID,
		UserID:        t.UserID,
		AccountID:     t.AccountID,
		CategoryID:    t.CategoryID,
		Amount:        apiutil.NewAmount(t.Amount),
		Type:          string(t.Type),
		Description:   t.Description,
		Date:          t.Date,
		AccountName:   t.AccountName,
		CategoryName:  t.CategoryName,
		CategoryColor: t.CategoryColor,
		CategoryIcon:  t.CategoryIcon,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func typePtr(s *string) *ledger.TransactionType {
	if s == nil {
		return nil
	}
	t := ledger.TransactionType(*s)
	return &t
}

type transactionService interface {
	ListTransactions(ctx context.Context, userID int64, filter service.TransactionFilter) ([]service.Transaction, error)
	GetTransaction(ctx context.Context, userID, id int64) (*service.Transaction, error)
	CreateTransaction(ctx context.Context, userID int64, create service.TransactionCreate) (*service.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id int64, update service.TransactionUpdate) (*service.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id int64) error
}

// Handler serves /api/transactions. Creates, updates and deletes move the
// balance of the affected accounts.
type Handler struct {
	TransactionService transactionService
}

func NewHandler(svc transactionService) *Handler {
	return &Handler{TransactionService: svc}
}

// Register registers the transaction endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transactions",
		Summary:     "List transactions",
		Description: "Returns the caller's transactions. Filters are combined with AND.",
		Tags:        []string{"Transactions"},
		Security:    apiutil.BearerSecurity,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/api/transactions/{id}",
		Summary:     "Get a transaction",
		Tags:        []string{"Transactions"},
		Security:    apiutil.BearerSecurity,
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/api/transactions",
		Summary:       "Create a transaction",
		Description:   "Records a transaction and applies it to the account balance.",
		Tags:          []string{"Transactions"},
		Security:      apiutil.BearerSecurity,
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/api/transactions/{id}",
		Summary:     "Update a transaction",
		Description: "Reverses the old effect on the old account and applies the new effect to the new account.",
		Tags:        []string{"Transactions"},
		Security:    apiutil.BearerSecurity,
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/api/transactions/{id}",
		Summary:     "Delete a transaction",
		Description: "Removes a transaction and reverses its effect on the account balance.",
		Tags:        []string{"Transactions"},
		Security:    apiutil.BearerSecurity,
	}, h.delete)
}
