package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/storage"
)

// CreateTransaction records a transaction and applies its effect to the
// account balance in the same write.
type CreateTransaction struct {
	UserID      int64
	AccountID   int64
	CategoryID  int64
	Amount      decimal.Decimal
	Type        ledger.TransactionType
	Description string
	Date        string

	Result *storage.Transaction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	account := writer.Accounts.FindOwned(c.AccountID, c.UserID)
	if account == nil {
		return ErrInvalidAccount
	}
	if writer.Categories.FindOwned(c.CategoryID, c.UserID) == nil {
		return ErrInvalidCategory
	}

	ts := now()
	tx := writer.Transactions.Insert(storage.Transaction{
		UserID:      c.UserID,
		AccountID:   c.AccountID,
		CategoryID:  c.CategoryID,
		Amount:      c.Amount,
		Type:        c.Type,
		Description: c.Description,
		Date:        c.Date,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	})

	account.Balance = ledger.Apply(account.Balance, tx.Type, tx.Amount)
	account.UpdatedAt = ts
	if err := writer.Accounts.Update(account.ID, *account); err != nil {
		return err
	}

	c.Result = &tx
	return nil
}

// UpdateTransaction changes a transaction. The old effect is reversed on
// the old account before the new effect is applied to the new account, so
// moving a transaction between accounts or changing its type keeps both
// balances correct. Nil fields are left unchanged.
type UpdateTransaction struct {
	UserID      int64
	ID          int64
	AccountID   *int64
	CategoryID  *int64
	Amount      *decimal.Decimal
	Type        *ledger.TransactionType
	Description *string
	Date        *string

	Result *storage.Transaction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	old := writer.Transactions.FindOwned(u.ID, u.UserID)
	if old == nil {
		return storage.ErrNotFound
	}

	updated := *old
	if u.AccountID != nil {
		if writer.Accounts.FindOwned(*u.AccountID, u.UserID) == nil {
			return ErrInvalidAccount
		}
		updated.AccountID = *u.AccountID
	}
	if u.CategoryID != nil {
		if writer.Categories.FindOwned(*u.CategoryID, u.UserID) == nil {
			return ErrInvalidCategory
		}
		updated.CategoryID = *u.CategoryID
	}
	if u.Amount != nil {
		updated.Amount = *u.Amount
	}
	if u.Type != nil {
		updated.Type = *u.Type
	}
	if u.Description != nil {
		updated.Description = *u.Description
	}
	if u.Date != nil {
		updated.Date = *u.Date
	}

	ts := now()
	updated.UpdatedAt = ts

	if err := adjustBalance(ctx, writer, old, ledger.Reverse, "update_transaction", ts); err != nil {
		return err
	}
	if err := writer.Transactions.Update(updated.ID, updated); err != nil {
		return err
	}
	if err := adjustBalance(ctx, writer, &updated, ledger.Apply, "update_transaction", ts); err != nil {
		return err
	}

	u.Result = &updated
	return nil
}

// DeleteTransaction removes a transaction and reverses its effect.
type DeleteTransaction struct {
	UserID int64
	ID     int64
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	tx := writer.Transactions.FindOwned(d.ID, d.UserID)
	if tx == nil {
		return storage.ErrNotFound
	}

	if err := adjustBalance(ctx, writer, tx, ledger.Reverse, "delete_transaction", now()); err != nil {
		return err
	}
	return writer.Transactions.Delete(tx.ID)
}

// adjustBalance runs rule against the balance of tx's account. A missing
// account is reported and skipped rather than failing the write.
func adjustBalance(
	ctx context.Context,
	writer *storage.Writer,
	tx *storage.Transaction,
	rule func(decimal.Decimal, ledger.TransactionType, decimal.Decimal) decimal.Decimal,
	operation string,
	ts time.Time,
) error {
	account := writer.Accounts.FindByID(tx.AccountID)
	if account == nil {
		reportDanglingReversal(ctx, operation, tx)
		return nil
	}
	account.Balance = rule(account.Balance, tx.Type, tx.Amount)
	account.UpdatedAt = ts
	return writer.Accounts.Update(account.ID, *account)
}
