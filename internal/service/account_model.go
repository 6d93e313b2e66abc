package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
)

// Account represents an account in the service layer.
type Account struct {
	ID        int64
	UserID    int64
	Name      string
	Type      string
	Balance   decimal.Decimal
	Currency  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountCreate holds the fields for creating an account. An empty
// Currency defaults to USD.
type AccountCreate struct {
	Name     string
	Type     string
	Balance  decimal.Decimal
	Currency string
}

// AccountUpdate holds the fields to change. Nil fields are kept.
type AccountUpdate struct {
	Name     *string
	Type     *string
	Balance  *decimal.Decimal
	Currency *string
	IsActive *bool
}

func accountFromStorage(row *storage.Account) Account {
	return Account{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Type:      row.Type,
		Balance:   row.Balance,
		Currency:  row.Currency,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
