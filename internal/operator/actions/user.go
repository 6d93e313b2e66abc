package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
)

// RegisterUser creates a user. Emails are unique.
type RegisterUser struct {
	Email     string
	FirstName string
	LastName  string

	Result *storage.User
}

func (r *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	if writer.FindUserByEmail(r.Email) != nil {
		return ErrUserExists
	}

	ts := now()
	user := writer.Users.Insert(storage.User{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		CreatedAt: ts,
		UpdatedAt: ts,
	})

	r.Result = &user
	return nil
}

// ChangePassword stamps the user's password change time.
type ChangePassword struct {
	UserID int64

	Result *storage.User
}

func (c *ChangePassword) Perform(ctx context.Context, writer *storage.Writer) error {
	user := writer.Users.FindByID(c.UserID)
	if user == nil {
		return storage.ErrNotFound
	}

	ts := now()
	user.PasswordChangedAt = &ts
	user.UpdatedAt = ts
	if err := writer.Users.Update(user.ID, *user); err != nil {
		return err
	}

	c.Result = user
	return nil
}
