// Package service holds the business logic behind the HTTP handlers. Reads
// go straight to storage; every mutation is handed to the operator as an
// action so ledger updates are serialized.
package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// actionProcessor runs an action in a storage write. The operator
// delegator implements it.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// tokenIssuer signs bearer tokens for a user.
type tokenIssuer interface {
	Issue(id auth.Identity) (string, error)
}

// Service holds all business logic services.
type Service struct {
	User        *UserService
	Account     *AccountService
	Category    *CategoryService
	Transaction *TransactionService
	SavingsGoal *SavingsGoalService
}

// NewService creates a new Service over the given storage and operator.
func NewService(store *storage.Storage, processor actionProcessor, issuer tokenIssuer) *Service {
	return &Service{
		User:        NewUserService(store, processor, issuer),
		Account:     NewAccountService(store, processor),
		Category:    NewCategoryService(store, processor),
		Transaction: NewTransactionService(store, processor),
		SavingsGoal: NewSavingsGoalService(store, processor),
	}
}
