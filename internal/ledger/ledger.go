// Package ledger holds the arithmetic that keeps account balances and
// savings goal progress in step with transactions and contributions.
//
// Balances are maintained incrementally: a create applies a transaction's
// effect, a delete reverses it, and an update reverses the old version
// before applying the new one.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Effect is the signed amount a transaction contributes to its account.
// Anything that is not income is treated as an expense.
func Effect(t TransactionType, amount decimal.Decimal) decimal.Decimal {
	if t == Income {
		return amount
	}
	return amount.Neg()
}

// Apply returns balance after adding the transaction's effect.
func Apply(balance decimal.Decimal, t TransactionType, amount decimal.Decimal) decimal.Decimal {
	return balance.Add(Effect(t, amount))
}

// Reverse returns balance with the transaction's effect removed. It is the
// exact inverse of Apply.
func Reverse(balance decimal.Decimal, t TransactionType, amount decimal.Decimal) decimal.Decimal {
	return balance.Sub(Effect(t, amount))
}

// Achieved reports whether current has reached target.
func Achieved(current, target decimal.Decimal) bool {
	return current.GreaterThanOrEqual(target)
}

// Progress is the derived state of a savings goal.
type Progress struct {
	Current   decimal.Decimal
	Target    decimal.Decimal
	Achieved  bool
	UpdatedAt time.Time
}

// Contribute folds amount into the goal and recomputes Achieved.
func (p Progress) Contribute(amount decimal.Decimal, at time.Time) Progress {
	p.Current = p.Current.Add(amount)
	p.Achieved = Achieved(p.Current, p.Target)
	p.UpdatedAt = at
	return p
}

// Retarget moves the goal's target without touching the accumulated amount.
func (p Progress) Retarget(target decimal.Decimal, at time.Time) Progress {
	p.Target = target
	p.Achieved = Achieved(p.Current, p.Target)
	p.UpdatedAt = at
	return p
}
