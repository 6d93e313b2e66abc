package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
)

const defaultCategoryColor = "#6B7280"

type CreateCategory struct {
	UserID int64
	Name   string
	Type   string
	Color  string
	Icon   string

	Result *storage.Category
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	color := c.Color
	if color == "" {
		color = defaultCategoryColor
	}

	ts := now()
	category := writer.Categories.Insert(storage.Category{
		UserID:    c.UserID,
		Name:      c.Name,
		Type:      c.Type,
		Color:     color,
		Icon:      c.Icon,
		CreatedAt: ts,
		UpdatedAt: ts,
	})

	c.Result = &category
	return nil
}

type UpdateCategory struct {
	UserID int64
	ID     int64
	Name   *string
	Type   *string
	Color  *string
	Icon   *string

	Result *storage.Category
}

func (u *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category := writer.Categories.FindOwned(u.ID, u.UserID)
	if category == nil {
		return storage.ErrNotFound
	}

	if u.Name != nil {
		category.Name = *u.Name
	}
	if u.Type != nil {
		category.Type = *u.Type
	}
	if u.Color != nil {
		category.Color = *u.Color
	}
	if u.Icon != nil {
		category.Icon = *u.Icon
	}
	category.UpdatedAt = now()

	if err := writer.Categories.Update(category.ID, *category); err != nil {
		return err
	}
	u.Result = category
	return nil
}

type DeleteCategory struct {
	UserID int64
	ID     int64
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if writer.Categories.FindOwned(d.ID, d.UserID) == nil {
		return storage.ErrNotFound
	}
	return writer.Categories.Delete(d.ID)
}
