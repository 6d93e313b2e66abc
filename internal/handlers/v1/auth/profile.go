package auth

import (
	"context"
	"unicode/utf8"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
)

func (h *Handler) profile(ctx context.Context, _ *struct{}) (*apiutil.Output[User], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := h.UserService.GetProfile(ctx, userID)
	if err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgUserNotFound)
	}
	return apiutil.OK(userFromService(user)), nil
}

type ChangePasswordInput struct {
	Body struct {
		CurrentPassword string `json:"current_password,omitempty"`
		NewPassword     string `json:"new_password,omitempty"`
	}
}

// PasswordChanged is the data of a successful password change.
type PasswordChanged struct {
	Message string `json:"message"`
}

func (h *Handler) changePassword(ctx context.Context, input *ChangePasswordInput) (*apiutil.Output[PasswordChanged], error) {
	userID, err := apiutil.UserID(ctx)
	if err != nil {
		return nil, err
	}

	if input.Body.CurrentPassword == "" || input.Body.NewPassword == "" {
		return nil, huma.Error400BadRequest(msgPasswordsRequired)
	}
	if utf8.RuneCountInString(input.Body.NewPassword) < minPasswordLength {
		return nil, huma.Error400BadRequest(msgPasswordTooShort)
	}

	if err := h.UserService.ChangePassword(ctx, userID); err != nil {
		return nil, apiutil.ServiceError(ctx, err, msgUserNotFound)
	}
	return apiutil.OK(PasswordChanged{Message: "Password changed successfully"}), nil
}
