package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// AccountService handles account business logic.
type AccountService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor actionProcessor) *AccountService {
	return &AccountService{storage: store, processor: processor}
}

// ListAccounts returns the user's accounts ordered by id.
func (s *AccountService) ListAccounts(ctx context.Context, userID int64) ([]Account, error) {
	rows := s.storage.Read().Accounts.ListByUser(userID)
	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, nil
}

// GetAccount retrieves an account owned by the user.
func (s *AccountService) GetAccount(ctx context.Context, userID, id int64) (*Account, error) {
	row := s.storage.Read().Accounts.FindOwned(id, userID)
	if row == nil {
		return nil, ErrNotFound
	}
	account := accountFromStorage(row)
	return &account, nil
}

// CreateAccount creates a new account for the user.
func (s *AccountService) CreateAccount(ctx context.Context, userID int64, create AccountCreate) (*Account, error) {
	action := &actions.CreateAccount{
		UserID:   userID,
		Name:     create.Name,
		Type:     create.Type,
		Balance:  create.Balance,
		Currency: create.Currency,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	account := accountFromStorage(action.Result)
	return &account, nil
}

// UpdateAccount applies update to an account owned by the user.
func (s *AccountService) UpdateAccount(ctx context.Context, userID, id int64, update AccountUpdate) (*Account, error) {
	action := &actions.UpdateAccount{
		UserID:   userID,
		ID:       id,
		Name:     update.Name,
		Type:     update.Type,
		Balance:  update.Balance,
		Currency: update.Currency,
		IsActive: update.IsActive,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	account := accountFromStorage(action.Result)
	return &account, nil
}

// DeleteAccount removes an account owned by the user.
func (s *AccountService) DeleteAccount(ctx context.Context, userID, id int64) error {
	return s.processor.Process(ctx, &actions.DeleteAccount{UserID: userID, ID: id})
}
