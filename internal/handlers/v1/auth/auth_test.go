package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	tokenauth "github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/service"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, create service.UserCreate) (*service.Session, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Session), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, email string) (*service.Session, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Session), args.Error(1)
}

func (m *mockUserService) GetProfile(ctx context.Context, userID int64) (*service.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.User), args.Error(1)
}

func (m *mockUserService) ChangePassword(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func newTestAPI(t *testing.T, svc userService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, tokenauth.WithIdentity(ctx.Context(), tokenauth.Identity{UserID: 1, Email: "demo@example.com"})))
	})
	NewHandler(svc).Register(api)
	return api
}

func demoSession() *service.Session {
	return &service.Session{
		User:  service.User{ID: 1, Email: "demo@example.com", FirstName: "Demo", LastName: "User"},
		Token: "signed.jwt.token",
	}
}

func TestHTTP_Register(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Register", mock.Anything, service.UserCreate{Email: "demo@example.com", FirstName: "Demo", LastName: "User"}).
		Return(demoSession(), nil)

	resp := newTestAPI(t, svc).Post("/api/auth/register", map[string]any{
		"email":      "demo@example.com",
		"password":   "secret1",
		"first_name": "Demo",
		"last_name":  "User",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body struct {
		Success bool    `json:"success"`
		Data    Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "signed.jwt.token", body.Data.Token)
	assert.Equal(t, "Demo", body.Data.User.FirstName)
}

func TestHTTP_Register_Exists(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Register", mock.Anything, mock.Anything).Return(nil, service.ErrUserExists)

	resp := newTestAPI(t, svc).Post("/api/auth/register", map[string]any{"email": "demo@example.com"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"success":false,"error":"User already exists"}`, resp.Body.String())
}

func TestHTTP_Login(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Login", mock.Anything, "demo@example.com").Return(demoSession(), nil)

	resp := newTestAPI(t, svc).Post("/api/auth/login", map[string]any{"email": "demo@example.com", "password": "x"})

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHTTP_Login_UnknownEmail(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Login", mock.Anything, "nobody@example.com").Return(nil, service.ErrInvalidCredentials)

	resp := newTestAPI(t, svc).Post("/api/auth/login", map[string]any{"email": "nobody@example.com"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid credentials"}`, resp.Body.String())
}

func TestHTTP_Profile(t *testing.T) {
	svc := new(mockUserService)
	svc.On("GetProfile", mock.Anything, int64(1)).Return(&demoSession().User, nil)

	resp := newTestAPI(t, svc).Get("/api/auth/profile")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Data User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "demo@example.com", body.Data.Email)
}

func TestHTTP_Profile_NotFound(t *testing.T) {
	svc := new(mockUserService)
	svc.On("GetProfile", mock.Anything, int64(1)).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, svc).Get("/api/auth/profile")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"success":false,"error":"User not found"}`, resp.Body.String())
}

func TestHTTP_ChangePassword(t *testing.T) {
	svc := new(mockUserService)
	svc.On("ChangePassword", mock.Anything, int64(1)).Return(nil)

	resp := newTestAPI(t, svc).Post("/api/auth/change-password", map[string]any{
		"current_password": "old-secret",
		"new_password":     "new-secret",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"success":true,"data":{"message":"Password changed successfully"}}`, resp.Body.String())
}

func TestHTTP_ChangePassword_Validation(t *testing.T) {
	svc := new(mockUserService)
	api := newTestAPI(t, svc)

	resp := api.Post("/api/auth/change-password", map[string]any{"new_password": "new-secret"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"success":false,"error":"Current password and new password are required"}`, resp.Body.String())

	resp = api.Post("/api/auth/change-password", map[string]any{"current_password": "old", "new_password": "short"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"success":false,"error":"New password must be at least 6 characters long"}`, resp.Body.String())

	svc.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything)
}
