package savingsgoal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/service"
)

const (
	msgNotFound     = "Savings goal not found"
	displayCurrency = "USD"
)

// SavingsGoal is the API response model for a savings goal.
type SavingsGoal struct {
	ID             int64          `json:"id"`
	UserID         int64          `json:"user_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	TargetAmount   apiutil.Amount `json:"target_amount"`
	CurrentAmount  apiutil.Amount `json:"current_amount"`
	TargetDisplay  string         `json:"target_display"`
	CurrentDisplay string         `json:"current_display"`
	TargetDate     string         `json:"target_date,omitempty"`
	Color          string         `json:"color"`
	IsAchieved     bool           `json:"is_achieved" doc:"current_amount >= target_amount"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func fromService(g *service.SavingsGoal) SavingsGoal {
	return SavingsGoal{
		ID:             g.ID,
		UserID:         g.UserID,
		Name:           g.Name,
		Description:    g.Description,
		TargetAmount:   apiutil.NewAmount(g.TargetAmount),
		CurrentAmount:  apiutil.NewAmount(g.CurrentAmount),
		TargetDisplay:  apiutil.FormatMoney(g.TargetAmount, displayCurrency),
		CurrentDisplay: apiutil.FormatMoney(g.CurrentAmount, displayCurrency),
		TargetDate:     g.TargetDate,
		Color:          g.Color,
		IsAchieved:     g.IsAchieved,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

// Contribution is the API response model for a goal contribution.
type Contribution struct {
	ID               int64          `json:"id"`
	GoalID           int64          `json:"goal_id"`
	TransactionID    *int64         `json:"transaction_id" doc:"Always null for API contributions"`
	Amount           apiutil.Amount `json:"amount"`
	ContributionDate string         `json:"contribution_date"`
	Description      string         `json:"description,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

func contributionFromService(c *service.Contribution) Contribution {
	return Contribution{
		ID:               c.ID,
		GoalID:           c.GoalID,
		TransactionID:    c.TransactionID,
		Amount:           apiutil.NewAmount(c.Amount),
		ContributionDate: c.ContributionDate,
		Description:      c.Description,
		CreatedAt:        c.CreatedAt,
	}
}

type savingsGoalService interface {
	ListGoals(ctx context.Context, userID int64) ([]service.SavingsGoal, error)
	GetGoal(ctx context.Context, userID, id int64) (*service.SavingsGoal, error)
	CreateGoal(ctx context.Context, userID int64, create service.SavingsGoalCreate) (*service.SavingsGoal, error)
	UpdateGoal(ctx context.Context, userID, id int64, update service.SavingsGoalUpdate) (*service.SavingsGoal, error)
	DeleteGoal(ctx context.Context, userID, id int64) error
	Contribute(ctx context.Context, userID int64, create service.ContributionCreate) (*service.Contribution, error)
	ListContributions(ctx context.Context, userID, goalID int64) ([]service.Contribution, error)
}

// Handler serves /api/savings-goals.
type Handler struct {
	GoalService savingsGoalService
}

func NewHandler(svc savingsGoalService) *Handler {
	return &Handler{GoalService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-savings-goals",
		Method:      http.MethodGet,
		Path:        "/api/savings-goals",
		Summary:     "List savings goals",
		Tags:        []string{"Savings Goals"},
		Security:    apiutil.BearerSecurity,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "get-savings-goal",
		Method:      http.MethodGet,
		Path:        "/api/savings-goals/{id}",
		Summary:     "Get a savings goal",
		Tags:        []string{"Savings Goals"},
		Security:    apiutil.BearerSecurity,
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID:   "create-savings-goal",
		Method:        http.MethodPost,
		Path:          "/api/savings-goals",
		Summary:       "Create a savings goal",
		Tags:          []string{"Savings Goals"},
		Security:      apiutil.BearerSecurity,
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "update-savings-goal",
		Method:      http.MethodPut,
		Path:        "/api/savings-goals/{id}",
		Summary:     "Update a savings goal",
		Description: "Updates the given fields and recomputes is_achieved against the target.",
		Tags:        []string{"Savings Goals"},
		Security:    apiutil.BearerSecurity,
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "delete-savings-goal",
		Method:      http.MethodDelete,
		Path:        "/api/savings-goals/{id}",
		Summary:     "Delete a savings goal",
		Tags:        []string{"Savings Goals"},
		Security:    apiutil.BearerSecurity,
	}, h.delete)
	huma.Register(api, huma.Operation{
		OperationID:   "contribute-to-savings-goal",
		Method:        http.MethodPost,
		Path:          "/api/savings-goals/contribute",
		Summary:       "Contribute to a savings goal",
		Description:   "Adds the amount to the goal's current_amount. Account balances are not touched.",
		Tags:          []string{"Savings Goals"},
		Security:      apiutil.BearerSecurity,
		DefaultStatus: http.StatusCreated,
	}, h.contribute)
	huma.Register(api, huma.Operation{
		OperationID: "list-savings-goal-contributions",
		Method:      http.MethodGet,
		Path:        "/api/savings-goals/{id}/contributions",
		Summary:     "List contributions to a savings goal",
		Tags:        []string{"Savings Goals"},
		Security:    apiutil.BearerSecurity,
	}, h.contributions)
}
