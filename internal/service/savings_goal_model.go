package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
)

// SavingsGoal represents a savings goal in the service layer.
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

type SavingsGoalCreate struct {
	Name         string
	Description  string
	TargetAmount decimal.Decimal
	TargetDate   string
	Color        string
}

// SavingsGoalUpdate holds the fields to change. Nil fields are kept.
type SavingsGoalUpdate struct {
	Name         *string
	Description  *string
	TargetAmount *decimal.Decimal
	TargetDate   *string
	Color        *string
}

// Contribution is money put toward a goal. TransactionID is always nil for
// contributions made through the API.
type Contribution struct {
	ID               int64
	GoalID           int64
	TransactionID    *int64
	Amount           decimal.Decimal
	ContributionDate string
	Description      string
	CreatedAt        time.Time
}

type ContributionCreate struct {
	GoalID           int64
	Amount           decimal.Decimal
	ContributionDate string
	Description      string
}

func savingsGoalFromStorage(row *storage.SavingsGoal) SavingsGoal {
	return SavingsGoal{
		ID:            row.ID,
		UserID:        row.UserID,
		Name:          row.Name,
		Description:   row.Description,
		TargetAmount:  row.TargetAmount,
		CurrentAmount: row.CurrentAmount,
		TargetDate:    row.TargetDate,
		Color:         row.Color,
		IsAchieved:    row.IsAchieved,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func contributionFromStorage(row *storage.GoalContribution) Contribution {
	return Contribution{
		ID:               row.ID,
		GoalID:           row.GoalID,
		TransactionID:    row.TransactionID,
		Amount:           row.Amount,
		ContributionDate: row.ContributionDate,
		Description:      row.Description,
		CreatedAt:        row.CreatedAt,
	}
}
