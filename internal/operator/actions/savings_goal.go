package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/storage"
)

const defaultGoalColor = "#10B981"

type CreateSavingsGoal struct {
	UserID       int64
	Name         string
	Description  string
	TargetAmount decimal.Decimal
	TargetDate   string
	Color        string

	Result *storage.SavingsGoal
}

func (c *CreateSavingsGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	color := c.Color
	if color == "" {
		color = defaultGoalColor
	}

	ts := now()
	goal := writer.Goals.Insert(storage.SavingsGoal{
		UserID:        c.UserID,
		Name:          c.Name,
		Description:   c.Description,
		TargetAmount:  c.TargetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    c.TargetDate,
		Color:         color,
		IsAchieved:    ledger.Achieved(decimal.Zero, c.TargetAmount),
		CreatedAt:     ts,
		UpdatedAt:     ts,
	})

	c.Result = &goal
	return nil
}

// UpdateSavingsGoal edits a goal. IsAchieved is recomputed against the
// current target on every update.
type UpdateSavingsGoal struct {
	UserID       int64
	ID           int64
	Name         *string
	Description  *string
	TargetAmount *decimal.Decimal
	TargetDate   *string
	Color        *string

	Result *storage.SavingsGoal
}

func (u *UpdateSavingsGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	goal := writer.Goals.FindOwned(u.ID, u.UserID)
	if goal == nil {
		return storage.ErrNotFound
	}

	if u.Name != nil {
		goal.Name = *u.Name
	}
	if u.Description != nil {
		goal.Description = *u.Description
	}
	if u.TargetDate != nil {
		goal.TargetDate = *u.TargetDate
	}
	if u.Color != nil {
		goal.Color = *u.Color
	}
	target := goal.TargetAmount
	if u.TargetAmount != nil {
		target = *u.TargetAmount
	}
	updated := goal.WithProgress(goal.Progress().Retarget(target, now()))

	if err := writer.Goals.Update(updated.ID, updated); err != nil {
		return err
	}
	u.Result = &updated
	return nil
}

type DeleteSavingsGoal struct {
	UserID int64
	ID     int64
}

func (d *DeleteSavingsGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	if writer.Goals.FindOwned(d.ID, d.UserID) == nil {
		return storage.ErrNotFound
	}
	return writer.Goals.Delete(d.ID)
}

// ContributeToGoal appends a contribution and adds it to the goal's
// progress in the same write.
type ContributeToGoal struct {
	UserID           int64
	GoalID           int64
	Amount           decimal.Decimal
	ContributionDate string
	Description      string

	Result *storage.GoalContribution
	Goal   *storage.SavingsGoal
}

func (c *ContributeToGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	goal := writer.Goals.FindOwned(c.GoalID, c.UserID)
	if goal == nil {
		return ErrInvalidGoal
	}

	ts := now()
	contribution := writer.Contributions.Insert(storage.GoalContribution{
		GoalID:           goal.ID,
		UserID:           goal.UserID,
		Amount:           c.Amount,
		ContributionDate: c.ContributionDate,
		Description:      c.Description,
		CreatedAt:        ts,
	})

	updated := goal.WithProgress(goal.Progress().Contribute(c.Amount, ts))
	if err := writer.Goals.Update(updated.ID, updated); err != nil {
		return err
	}

	c.Result = &contribution
	c.Goal = &updated
	return nil
}
