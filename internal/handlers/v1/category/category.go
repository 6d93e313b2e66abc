package category

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/service"
)

const msgNotFound = "Category not found"

// Category is the API response model for a category.
type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type" doc:"income or expense"`
	Color     string    `json:"color" doc:"Hex color"`
	Icon      string    `json:"icon,omitempty"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func fromService(c *service.Category) Category {
	return Category{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Type:      c.Type,
		Color:     c.Color,
		Icon:      c.Icon,
		IsDefault: c.IsDefault,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type categoryService interface {
	ListCategories(ctx context.Context, userID int64) ([]service.Category, error)
	GetCategory(ctx context.Context, userID, id int64) (*service.Category, error)
	CreateCategory(ctx context.Context, userID int64, create service.CategoryCreate) (*service.Category, error)
	UpdateCategory(ctx context.Context, userID, id int64, update service.CategoryUpdate) (*service.Category, error)
	DeleteCategory(ctx context.Context, userID, id int64) error
}

// Handler serves /api/categories.
type Handler struct {
	CategoryService categoryService
}

func NewHandler(svc categoryService) *Handler {
	return &Handler{CategoryService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
		Security:    apiutil.BearerSecurity,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/api/categories/{id}",
		Summary:     "Get a category",
		Tags:        []string{"Categories"},
		Security:    apiutil.BearerSecurity,
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/api/categories",
		Summary:       "Create a category",
		Tags:          []string{"Categories"},
		Security:      apiutil.BearerSecurity,
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/api/categories/{id}",
		Summary:     "Update a category",
		Tags:        []string{"Categories"},
		Security:    apiutil.BearerSecurity,
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/api/categories/{id}",
		Summary:     "Delete a category",
		Tags:        []string{"Categories"},
		Security:    apiutil.BearerSecurity,
	}, h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*apiutil.Output[[]Category], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := h.CategoryService.ListCategories(ctx, userID)
	if err != nil {
		return nil, apiutil.Internal(ctx, err)
	}

	resp := make([]Category, len(categories))
	for i := range categories {
		resp[i] = fromService(&categories[i])
	}
	return apiutil.OK(resp), nil
}

func (h *Handler) get(ctx context.Context, input *apiutil.IDParam) (*apiutil.Output[Category], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.Parse()
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.GetCategory(ctx, userID, id)
	if err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}
	return apiutil.OK(fromService(category)), nil
}

type CreateCategoryInput struct {
	Body struct {
		Name  string `json:"name" minLength:"1"`
		Type  string `json:"type" enum:"income,expense"`
		Color string `json:"color,omitempty" doc:"Hex color, defaults to #6B7280"`
		Icon  string `json:"icon,omitempty"`
	}
}

func (h *Handler) create(ctx context.Context, input *CreateCategoryInput) (*apiutil.Output[Category], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.CreateCategory(ctx, userID, service.CategoryCreate{
		Name:  input.Body.Name,
		Type:  input.Body.Type,
		Color: input.Body.Color,
		Icon:  input.Body.Icon,
	})
	if err != nil {
		return nil, apiutil.Internal(ctx, err)
	}
	return apiutil.Created(fromService(category)), nil
}

type UpdateCategoryInput struct {
	apiutil.IDParam
	Body struct {
		Name  *string `json:"name,omitempty" minLength:"1"`
		Type  *string `json:"type,omitempty" enum:"income,expense"`
		Color *string `json:"color,omitempty"`
		Icon  *string `json:"icon,omitempty"`
	}
}

func (h *Handler) update(ctx context.Context, input *UpdateCategoryInput) (*apiutil.Output[Category], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.Parse()
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.UpdateCategory(ctx, userID, id, service.CategoryUpdate{
		Name:  input.Body.Name,
		Type:  input.Body.Type,
		Color: input.Body.Color,
		Icon:  input.Body.Icon,
	})
	if err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}
	return apiutil.OK(fromService(category)), nil
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

	if err := h.CategoryService.DeleteCategory(ctx, userID, id); err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgNotFound)
	}
	return apiutil.Message("Category deleted successfully"), nil
}
