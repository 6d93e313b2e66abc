package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
)

const defaultCurrency = "USD"

type CreateAccount struct {
	UserID   int64
	Name     string
	Type     string
	Balance  decimal.Decimal
	Currency string

	Result *storage.Account
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	currency := c.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	ts := now()
	account := writer.Accounts.Insert(storage.Account{
		UserID:    c.UserID,
		Name:      c.Name,
		Type:      c.Type,
		Balance:   c.Balance,
		Currency:  currency,
		IsActive:  true,
		CreatedAt: ts,
		UpdatedAt: ts,
	})

	c.Result = &account
	return nil
}

// UpdateAccount edits account metadata. Setting Balance is a manual
// adjustment; it does not touch the account's transactions.
type UpdateAccount struct {
	UserID   int64
	ID       int64
	Name     *string
	Type     *string
	Balance  *decimal.Decimal
	Currency *string
	IsActive *bool

	Result *storage.Account
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	account := writer.Accounts.FindOwned(u.ID, u.UserID)
	if account == nil {
		return storage.ErrNotFound
	}

	if u.Name != nil {
		account.Name = *u.Name
	}
	if u.Type != nil {
		account.Type = *u.Type
	}
	if u.Balance != nil {
		account.Balance = *u.Balance
	}
	if u.Currency != nil {
		account.Currency = *u.Currency
	}
	if u.IsActive != nil {
		account.IsActive = *u.IsActive
	}
	account.UpdatedAt = now()

	if err := writer.Accounts.Update(account.ID, *account); err != nil {
		return err
	}
	u.Result = account
	return nil
}

// DeleteAccount removes an account. Its transactions are kept and later
// edits to them skip the missing account.
type DeleteAccount struct {
	UserID int64
	ID     int64
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if writer.Accounts.FindOwned(d.ID, d.UserID) == nil {
		return storage.ErrNotFound
	}
	return writer.Accounts.Delete(d.ID)
}
