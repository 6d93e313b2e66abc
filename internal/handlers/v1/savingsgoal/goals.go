package savingsgoal

import (
	"context"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/service"
)

func (h *Handler) list(ctx context.Context, _ *struct{}) (*apiutil.Output[[]SavingsGoal], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	goals, err := h.GoalService.ListGoals(ctx, userID)
	if err != nil {
		return nil, apiutil.Internal(ctx, err)
	}

	resp := make([]SavingsGoal, len(goals))
	for i := range goals {
		resp[i] = fromService(&goals[i])
	}
	return apiutil.OK(resp), nil
}

func (h *Handler) get(ctx context.Context, input *apiutil.IDParam) (*apiutil.Output[SavingsGoal], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.Parse()
	if err != nil {
		return nil, err
	}

	goal, err := h.GoalService.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}
	return apiutil.OK(fromService(goal)), nil
}

type CreateGoalInput struct {
	Body struct {
		Name         string         `json:"name" minLength:"1"`
		Description  string         `json:"description,omitempty"`
		TargetAmount apiutil.Amount `json:"target_amount"`
		TargetDate   string         `json:"target_date,omitempty" doc:"ISO-8601 date"`
		Color        string         `json:"color,omitempty" doc:"Hex color, defaults to #10B981"`
	}
}

func (h *Handler) create(ctx context.Context, input *CreateGoalInput) (*apiutil.Output[SavingsGoal], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	goal, err := h.GoalService.CreateGoal(ctx, userID, service.SavingsGoalCreate{
		Name:         input.Body.Name,
		Description:  input.Body.Description,
		TargetAmount: input.Body.TargetAmount.Decimal,
		TargetDate:   input.Body.TargetDate,
		Color:        input.Body.Color,
	})
	if err != nil {
		return nil, apiutil.Internal(ctx, err)
	}
	return apiutil.Created(fromService(goal)), nil
}

type UpdateGoalInput struct {
	apiutil.IDParam
	Body struct {
		Name         *string         `json:"name,omitempty" minLength:"1"`
		Description  *string         `json:"description,omitempty"`
		TargetAmount *apiutil.Amount `json:"target_amount,omitempty"`
		TargetDate   *string         `json:"target_date,omitempty"`
		Color        *string         `json:"color,omitempty"`
	}
}

func (h *Handler) update(ctx context.Context, input *UpdateGoalInput) (*apiutil.Output[SavingsGoal], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.Parse()
	if err != nil {
		return nil, err
	}

	goal, err := h.GoalService.UpdateGoal(ctx, userID, id, service.SavingsGoalUpdate{
		Name:         input.Body.Name,
		Description:  input.Body.Description,
		TargetAmount: apiutil.DecimalPtr(input.Body.TargetAmount),
		TargetDate:   input.Body.TargetDate,
		Color:        input.Body.Color,
	})
	if err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}
	return apiutil.OK(fromService(goal)), nil
}

func (h *Handler) delete(ctx context.Context, input *apiutil.IDParam) (*apiutil.MessageOutput, error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.Parse()
	if err != nil {
		return nil, err
	}

	if err := h.GoalService.DeleteGoal(ctx, userID, id); err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}
	return apiutil.Message("Savings goal deleted successfully"), nil
}
