package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/ledger"
)

// User represents a registered user.
type User struct {
	ID                int64
	Email             string
	FirstName         string
	LastName          string
	PasswordChangedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (u User) withID(id int64) User { u.ID = id; return u }

// OwnerID of a user is the user itself.
func (u User) OwnerID() int64 { return u.ID }

// Account represents an account record. Balance is derived from the
// account's transactions and only moves through the ledger rules.
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

func (a Account) withID(id int64) Account { a.ID = id; return a }

func (a Account) OwnerID() int64 { return a.UserID }

// Category represents a transaction category.
type Category struct {
	ID        int64
	UserID    int64
	Name      string
	Type      string
	Color     string
	Icon      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Category) withID(id int64) Category { c.ID = id; return c }

func (c Category) OwnerID() int64 { return c.UserID }

// Transaction represents a transaction record. Date is an ISO-8601 date
// string (YYYY-MM-DD).
type Transaction struct {
	ID          int64
	UserID      int64
	AccountID   int64
	CategoryID  int64
	Amount      decimal.Decimal
	Type        ledger.TransactionType
	Description string
	Date        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Transaction) withID(id int64) Transaction { t.ID = id; return t }

func (t Transaction) OwnerID() int64 { return t.UserID }

// SavingsGoal represents a savings goal and its accumulated progress.
type SavingsGoal struct {
	ID            int64
	UserID        int64
	Name          string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    string
	Color         string
	IsAchieved    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (g SavingsGoal) withID(id int64) SavingsGoal { g.ID = id; return g }

func (g SavingsGoal) OwnerID() int64 { return g.UserID }

// Progress returns the goal's derived ledger state.
func (g SavingsGoal) Progress() ledger.Progress {
	return ledger.Progress{
		Current:   g.CurrentAmount,
		Target:    g.TargetAmount,
		Achieved:  g.IsAchieved,
		UpdatedAt: g.UpdatedAt,
	}
}

// WithProgress copies p back onto the goal.
func (g SavingsGoal) WithProgress(p ledger.Progress) SavingsGoal {
	g.CurrentAmount = p.Current
	g.TargetAmount = p.Target
	g.IsAchieved = p.Achieved
	g.UpdatedAt = p.UpdatedAt
	return g
}

// GoalContribution is an append-only record of money put toward a goal.
// UserID is copied from the parent goal so ownership checks work the same
// way as for every other table.
type GoalContribution struct {
	ID               int64
	GoalID           int64
	UserID           int64
	TransactionID    *int64
	Amount           decimal.Decimal
	ContributionDate string
	Description      string
	CreatedAt        time.Time
}

func (c GoalContribution) withID(id int64) GoalContribution { c.ID = id; return c }

func (c GoalContribution) OwnerID() int64 { return c.UserID }

// TransactionFilter specifies filters for listing transactions. Zero values
// are ignored; set filters are combined with AND.
type TransactionFilter struct {
	UserID     int64
	StartDate  string
	EndDate    string
	AccountID  int64
	CategoryID int64
	Type       ledger.TransactionType
}

// Match reports whether tx passes every set filter. Dates compare
// lexicographically, which is correct for fixed-width ISO-8601 dates.
func (f TransactionFilter) Match(tx *Transaction) bool {
	if tx.UserID != f.UserID {
		return false
	}
	if f.StartDate != "" && tx.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && tx.Date > f.EndDate {
		return false
	}
	if f.AccountID != 0 && tx.AccountID != f.AccountID {
		return false
	}
	if f.CategoryID != 0 && tx.CategoryID != f.CategoryID {
		return false
	}
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	return true
}
