package service

import (
	"time"

	"github.com/carson-networks/finance-server/internal/storage"
)

// Category represents a transaction category in the service layer.
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

// CategoryCreate holds the fields for creating a category.
type CategoryCreate struct {
	Name  string
	Type  string
	Color string
	Icon  string
}

// CategoryUpdate holds the fields to change. Nil fields are kept.
type CategoryUpdate struct {
	Name  *string
	Type  *string
	Color *string
	Icon  *string
}

func categoryFromStorage(row *storage.Category) Category {
	return Category{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Type:      row.Type,
		Color:     row.Color,
		Icon:      row.Icon,
		IsDefault: row.IsDefault,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
