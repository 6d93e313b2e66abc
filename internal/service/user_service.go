package service

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// ErrInvalidCredentials is returned by Login for an unknown email.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService handles registration, login and profile lookups.
type UserService struct {
	storage   *storage.Storage
	processor actionProcessor
	issuer    tokenIssuer
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, processor actionProcessor, issuer tokenIssuer) *UserService {
	return &UserService{storage: store, processor: processor, issuer: issuer}
}

// Register creates a user and issues a token for it.
func (s *UserService) Register(ctx context.Context, create UserCreate) (*Session, error) {
	action := &actions.RegisterUser{
		Email:     create.Email,
		FirstName: create.FirstName,
		LastName:  create.LastName,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return s.session(action.Result)
}

// Login issues a token for the user registered with email. Passwords are
// not checked.
func (s *UserService) Login(ctx context.Context, email string) (*Session, error) {
	row := s.storage.Read().FindUserByEmail(email)
	if row == nil {
		return nil, ErrInvalidCredentials
	}
	return s.session(row)
}

// GetProfile returns the user with the given id.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*User, error) {
	row := s.storage.Read().Users.FindByID(userID)
	if row == nil {
		return nil, ErrNotFound
	}
	user := userFromStorage(row)
	return &user, nil
}

// ChangePassword records a password change for the user.
func (s *UserService) ChangePassword(ctx context.Context, userID int64) error {
	return s.processor.Process(ctx, &actions.ChangePassword{UserID: userID})
}

func (s *UserService) session(row *storage.User) (*Session, error) {
	token, err := s.issuer.Issue(auth.Identity{UserID: row.ID, Email: row.Email})
	if err != nil {
		return nil, err
	}
	return &Session{User: userFromStorage(row), Token: token}, nil
}

func userFromStorage(row *storage.User) User {
	return User{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
