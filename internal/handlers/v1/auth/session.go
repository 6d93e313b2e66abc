package auth

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

type RegisterInput struct {
	Body struct {
		Email     string `json:"email" minLength:"1"`
		Password  string `json:"password,omitempty"`
		FirstName string `json:"first_name,omitempty"`
		LastName  string `json:"last_name,omitempty"`
	}
}

func (h *Handler) register(ctx context.Context, input *RegisterInput) (*apiutil.Output[Session], error) {
	session, err := h.UserService.Register(ctx, service.UserCreate{
		Email:     input.Body.Email,
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
	})
	if errors.Is(err, service.ErrUserExists) {
		return nil, huma.Error400BadRequest(msgUserExists)
	}
	if err != nil {
		return nil, apiutil.Internal(ctx, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userID", session.User.ID)
	}
	return apiutil.Created(Session{User: userFromService(&session.User), Token: session.Token}), nil
}

type LoginInput struct {
	Body struct {
		Email    string `json:"email" minLength:"1"`
		Password string `json:"password,omitempty"`
	}
}

func (h *Handler) login(ctx context.Context, input *LoginInput) (*apiutil.Output[Session], error) {
	session, err := h.UserService.Login(ctx, input.Body.Email)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return nil, huma.Error401Unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		return nil, apiutil.Internal(ctx, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userID", session.User.ID)
	}
	return apiutil.OK(Session{User: userFromService(&session.User), Token: session.Token}), nil
}
