package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// SavingsGoalService handles savings goals and their contributions.
type SavingsGoalService struct {
	storage   *storage.Storage
	processor actionProcessor
}

func NewSavingsGoalService(store *storage.Storage, processor actionProcessor) *SavingsGoalService {
	return &SavingsGoalService{storage: store, processor: processor}
}

func (s *SavingsGoalService) ListGoals(ctx context.Context, userID int64) ([]SavingsGoal, error) {
	rows := s.storage.Read().Goals.ListByUser(userID)
	goals := make([]SavingsGoal, len(rows))
	for i, row := range rows {
		goals[i] = savingsGoalFromStorage(row)
	}
	return goals, nil
}

func (s *SavingsGoalService) GetGoal(ctx context.Context, userID, id int64) (*SavingsGoal, error) {
	row := s.storage.Read().Goals.FindOwned(id, userID)
	if row == nil {
		return nil, ErrNotFound
	}
	goal := savingsGoalFromStorage(row)
	return &goal, nil
}

func (s *SavingsGoalService) CreateGoal(ctx context.Context, userID int64, create SavingsGoalCreate) (*SavingsGoal, error) {
	action := &actions.CreateSavingsGoal{
		UserID:       userID,
		Name:         create.Name,
		Description:  create.Description,
		TargetAmount: create.TargetAmount,
		TargetDate:   create.TargetDate,
		Color:        create.Color,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	goal := savingsGoalFromStorage(action.Result)
	return &goal, nil
}

// UpdateGoal applies update and recomputes whether the goal is achieved.
func (s *SavingsGoalService) UpdateGoal(ctx context.Context, userID, id int64, update SavingsGoalUpdate) (*SavingsGoal, error) {
	action := &actions.UpdateSavingsGoal{
		UserID:       userID,
		ID:           id,
		Name:         update.Name,
		Description:  update.Description,
		TargetAmount: update.TargetAmount,
		TargetDate:   update.TargetDate,
		Color:        update.Color,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	goal := savingsGoalFromStorage(action.Result)
	return &goal, nil
}

func (s *SavingsGoalService) DeleteGoal(ctx context.Context, userID, id int64) error {
	return s.processor.Process(ctx, &actions.DeleteSavingsGoal{UserID: userID, ID: id})
}

// Contribute adds money to a goal owned by the user.
func (s *SavingsGoalService) Contribute(ctx context.Context, userID int64, create ContributionCreate) (*Contribution, error) {
	action := &actions.ContributeToGoal{
		UserID:           userID,
		GoalID:           create.GoalID,
		Amount:           create.Amount,
		ContributionDate: create.ContributionDate,
		Description:      create.Description,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	contribution := contributionFromStorage(action.Result)
	return &contribution, nil
}

// ListContributions returns the contributions to a goal owned by the user.
func (s *SavingsGoalService) ListContributions(ctx context.Context, userID, goalID int64) ([]Contribution, error) {
	reader := s.storage.Read()
	if reader.Goals.FindOwned(goalID, userID) == nil {
		return nil, ErrNotFound
	}

	rows := reader.ListContributions(goalID)
	contributions := make([]Contribution, len(rows))
	for i, row := range rows {
		contributions[i] = contributionFromStorage(row)
	}
	return contributions, nil
}
