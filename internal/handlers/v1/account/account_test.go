package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/service"
)

const userID int64 = 1

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) ListAccounts(ctx context.Context, userID int64) ([]service.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Account), args.Error(1)
}

func (m *mockAccountService) GetAccount(ctx context.Context, userID, id int64) (*service.Account, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func (m *mockAccountService) CreateAccount(ctx context.Context, userID int64, create service.AccountCreate) (*service.Account, error) {
	args := m.Called(ctx, userID, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, userID, id int64, update service.AccountUpdate) (*service.Account, error) {
	args := m.Called(ctx, userID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// newTestAPI registers the handler against a humatest API whose requests
// are already authenticated as userID.
func newTestAPI(t *testing.T, svc accountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithIdentity(ctx.Context(), auth.Identity{UserID: userID})))
	})
	NewHandler(svc).Register(api)
	return api
}

func sampleAccount() *service.Account {
	return &service.Account{
		ID:        7,
		UserID:    userID,
		Name:      "Checking",
		Type:      "checking",
		Balance:   decimal.RequireFromString("2850.00"),
		Currency:  "USD",
		IsActive:  true,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestHTTP_ListAccounts(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything, userID).Return([]service.Account{*sampleAccount()}, nil)

	resp := newTestAPI(t, svc).Get("/api/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	env := decode(t, resp.Body.Bytes())
	assert.True(t, env.Success)

	var accounts []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &accounts))
	require.Len(t, accounts, 1)
	assert.Equal(t, 2850.0, accounts[0]["balance"])
	assert.Equal(t, "$2,850.00", accounts[0]["balance_display"])
	assert.Equal(t, true, accounts[0]["is_active"])
}

func TestHTTP_ListAccounts_Empty(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything, userID).Return([]service.Account{}, nil)

	resp := newTestAPI(t, svc).Get("/api/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", string(decode(t, resp.Body.Bytes()).Data))
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("GetAccount", mock.Anything, userID, int64(99)).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, svc).Get("/api/accounts/99")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	env := decode(t, resp.Body.Bytes())
	assert.False(t, env.Success)
	assert.Equal(t, "Account not found", env.Error)
}

func TestHTTP_GetAccount_InvalidID(t *testing.T) {
	svc := new(mockAccountService)

	for _, path := range []string{"/api/accounts/abc", "/api/accounts/0", "/api/accounts/-3", "/api/accounts/1.5"} {
		resp := newTestAPI(t, svc).Get(path)
		assert.Equal(t, http.StatusBadRequest, resp.Code, path)
		assert.Equal(t, "Invalid ID parameter", decode(t, resp.Body.Bytes()).Error, path)
	}
	svc.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateAccount_Defaults(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("CreateAccount", mock.Anything, userID, mock.MatchedBy(func(c service.AccountCreate) bool {
		return c.Name == "Checking" && c.Type == "checking" && c.Balance.IsZero() && c.Currency == ""
	})).Return(sampleAccount(), nil)

	resp := newTestAPI(t, svc).Post("/api/accounts", map[string]any{
		"name": "Checking",
		"type": "checking",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.True(t, decode(t, resp.Body.Bytes()).Success)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_StringBalance(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("CreateAccount", mock.Anything, userID, mock.MatchedBy(func(c service.AccountCreate) bool {
		return c.Balance.Equal(decimal.RequireFromString("1234.56"))
	})).Return(sampleAccount(), nil)

	resp := newTestAPI(t, svc).Post("/api/accounts", map[string]any{
		"name":    "Checking",
		"type":    "checking",
		"balance": "1234.56",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_MissingName(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Post("/api/accounts", map[string]any{"type": "checking"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	env := decode(t, resp.Body.Bytes())
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
	svc.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_CreateAccount_ServiceError(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("CreateAccount", mock.Anything, userID, mock.Anything).Return(nil, errors.New("queue closed"))

	resp := newTestAPI(t, svc).Post("/api/accounts", map[string]any{"name": "Checking", "type": "checking"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Internal server error", decode(t, resp.Body.Bytes()).Error)
}

func TestHTTP_UpdateAccount_PartialFields(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("UpdateAccount", mock.Anything, userID, int64(7), mock.MatchedBy(func(u service.AccountUpdate) bool {
		return u.Name != nil && *u.Name == "Main" && u.Type == nil && u.Balance == nil && u.IsActive == nil
	})).Return(sampleAccount(), nil)

	resp := newTestAPI(t, svc).Put("/api/accounts/7", map[string]any{"name": "Main"})

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_DeleteAccount(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("DeleteAccount", mock.Anything, userID, int64(7)).Return(nil)

	resp := newTestAPI(t, svc).Delete("/api/accounts/7")

	assert.Equal(t, http.StatusOK, resp.Code)
	env := decode(t, resp.Body.Bytes())
	assert.True(t, env.Success)
	assert.Equal(t, "Account deleted successfully", env.Message)
}

func TestHTTP_DeleteAccount_NotFound(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("DeleteAccount", mock.Anything, userID, int64(7)).Return(service.ErrNotFound)

	resp := newTestAPI(t, svc).Delete("/api/accounts/7")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
