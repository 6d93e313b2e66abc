// Package auth serves registration, login and the caller's profile.
package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/service"
)

const (
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgUserNotFound       = "User not found"
	msgPasswordsRequired  = "Current password and new password are required"
	msgPasswordTooShort   = "New password must be at least 6 characters long"
	minPasswordLength     = 6
)

// User is the API response model for a user.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is returned by register and login.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token" doc:"Bearer token for the Authorization header"`
}

func userFromService(u *service.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

type userService interface {
	Register(ctx context.Context, create service.UserCreate) (*service.Session, error)
	Login(ctx context.Context, email string) (*service.Session, error)
	GetProfile(ctx context.Context, userID int64) (*service.User, error)
	ChangePassword(ctx context.Context, userID int64) error
}

// Handler serves /api/auth.
type Handler struct {
	UserService userService
}

func NewHandler(svc userService) *Handler {
	return &Handler{UserService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/api/auth/register",
		Summary:       "Register a user",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.register)
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Log in",
		Tags:        []string{"Auth"},
	}, h.login)
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/api/auth/profile",
		Summary:     "Get the caller's profile",
		Tags:        []string{"Auth"},
		Security:    apiutil.BearerSecurity,
	}, h.profile)
	huma.Register(api, huma.Operation{
		OperationID: "change-password",
		Method:      http.MethodPost,
		Path:        "/api/auth/change-password",
		Summary:     "Change the caller's password",
		Tags:        []string{"Auth"},
		Security:    apiutil.BearerSecurity,
	}, h.changePassword)
}
