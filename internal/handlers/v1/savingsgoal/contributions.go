package savingsgoal

import (
	"context"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

type ContributeInput struct {
	Body struct {
		GoalID           int64          `json:"goal_id"`
		Amount           apiutil.Amount `json:"amount"`
		ContributionDate string         `json:"contribution_date,omitempty" doc:"ISO-8601 date"`
		Description      string         `json:"description,omitempty"`
	}
}

func (h *Handler) contribute(ctx context.Context, input *ContributeInput) (*apiutil.Output[Contribution], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	stopTimer := logging.Timed(logData, "contributeMs")
	contribution, err := h.GoalService.Contribute(ctx, userID, service.ContributionCreate{
		GoalID:           input.Body.GoalID,
		Amount:           input.Body.Amount.Decimal,
		ContributionDate: input.Body.ContributionDate,
		Description:      input.Body.Description,
	})
	stopTimer()
	if err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}

	if logData != nil {
		logData.AddData("goalID", contribution.GoalID)
	}
	return apiutil.Created(contributionFromService(contribution)), nil
}

func (h *Handler) contributions(ctx context.Context, input *apiutil.IDParam) (*apiutil.Output[[]Contribution], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.Parse()
	if err != nil {
		return nil, err
	}

	contributions, err := h.GoalService.ListContributions(ctx, userID, id)
	if err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}

	resp := make([]Contribution, len(contributions))
	for i := range contributions {
		resp[i] = contributionFromService(&contributions[i])
	}
	return apiutil.OK(resp), nil
}
