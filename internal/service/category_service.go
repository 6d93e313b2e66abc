package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage   *storage.Storage
	processor actionProcessor
}

func NewCategoryService(store *storage.Storage, processor actionProcessor) *CategoryService {
	return &CategoryService{storage: store, processor: processor}
}

func (s *CategoryService) ListCategories(ctx context.Context, userID int64) ([]Category, error) {
	rows := s.storage.Read().Categories.ListByUser(userID)
	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, userID, id int64) (*Category, error) {
	row := s.storage.Read().Categories.FindOwned(id, userID)
	if row == nil {
		return nil, ErrNotFound
	}
	category := categoryFromStorage(row)
	return &category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID int64, create CategoryCreate) (*Category, error) {
	action := &actions.CreateCategory{
		UserID: userID,
		Name:   create.Name,
		Type:   create.Type,
		Color:  create.Color,
		Icon:   create.Icon,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	category := categoryFromStorage(action.Result)
	return &category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, userID, id int64, update CategoryUpdate) (*Category, error) {
	action := &actions.UpdateCategory{
		UserID: userID,
		ID:     id,
		Name:   update.Name,
		Type:   update.Type,
		Color:  update.Color,
		Icon:   update.Icon,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	category := categoryFromStorage(action.Result)
	return &category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, userID, id int64) error {
	return s.processor.Process(ctx, &actions.DeleteCategory{UserID: userID, ID: id})
}
