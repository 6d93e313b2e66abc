package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/storage"
)

const (
	unknownAccountName  = "Unknown Account"
	unknownCategoryName = "Unknown Category"
	fallbackColor       = "#6B7280"
)

// Transaction represents a transaction in the service layer, enriched with
// the names of its account and category.
type Transaction struct {
	ID            int64
	UserID        int64
	AccountID     int64
	CategoryID    int64
	Amount        decimal.Decimal
	Type          ledger.TransactionType
	Description   string
	Date          string
	AccountName   string
	CategoryName  string
	CategoryColor string
	CategoryIcon  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TransactionCreate holds the fields for creating a transaction.
type TransactionCreate struct {
	AccountID   int64
	CategoryID  int64
	Amount      decimal.Decimal
	Type        ledger.TransactionType
	Description string
	Date        string
}

// TransactionUpdate holds the fields to change. Nil fields are kept.
type TransactionUpdate struct {
	AccountID   *int64
	CategoryID  *int64
	Amount      *decimal.Decimal
	Type        *ledger.TransactionType
	Description *string
	Date        *string
}

// TransactionFilter narrows ListTransactions. Zero values are ignored.
type TransactionFilter struct {
	StartDate  string
	EndDate    string
	AccountID  int64
	CategoryID int64
	Type       ledger.TransactionType
}

// enrichTransaction fills in the account and category details, falling back
// to placeholders when either has been deleted.
func enrichTransaction(reader *storage.Reader, row *storage.Transaction) Transaction {
	tx := Transaction{
		ID:            row.ID,
		UserID:        row.UserID,
		AccountID:     row.AccountID,
		CategoryID:    row.CategoryID,
		Amount:        row.Amount,
		Type:          row.Type,
		Description:   row.Description,
		Date:          row.Date,
		AccountName:   unknownAccountName,
		CategoryName:  unknownCategoryName,
		CategoryColor: fallbackColor,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	if account := reader.Accounts.FindByID(row.AccountID); account != nil {
		tx.AccountName = account.Name
	}
	if category := reader.Categories.FindByID(row.CategoryID); category != nil {
		tx.CategoryName = category.Name
		if category.Color != "" {
			tx.CategoryColor = category.Color
		}
		tx.CategoryIcon = category.Icon
	}
	return tx
}
