package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor actionProcessor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

// ListTransactions returns the user's transactions matching filter, ordered
// by id.
func (s *TransactionService) ListTransactions(ctx context.Context, userID int64, filter TransactionFilter) ([]Transaction, error) {
	reader := s.storage.Read()
	rows := reader.ListTransactions(storage.TransactionFilter{
		UserID:     userID,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		AccountID:  filter.AccountID,
		CategoryID: filter.CategoryID,
		Type:       filter.Type,
	})

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = enrichTransaction(reader, row)
	}
	return transactions, nil
}

// GetTransaction retrieves a transaction owned by the user.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id int64) (*Transaction, error) {
	reader := s.storage.Read()
	row := reader.Transactions.FindOwned(id, userID)
	if row == nil {
		return nil, ErrNotFound
	}
	tx := enrichTransaction(reader, row)
	return &tx, nil
}

// CreateTransaction records a transaction and moves its account balance.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID int64, create TransactionCreate) (*Transaction, error) {
	action := &actions.CreateTransaction{
		UserID:      userID,
		AccountID:   create.AccountID,
		CategoryID:  create.CategoryID,
		Amount:      create.Amount,
		Type:        create.Type,
		Description: create.Description,
		Date:        create.Date,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	tx := enrichTransaction(s.storage.Read(), action.Result)
	return &tx, nil
}

// UpdateTransaction changes a transaction and rebalances the affected
// accounts.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, id int64, update TransactionUpdate) (*Transaction, error) {
	action := &actions.UpdateTransaction{
		UserID:      userID,
		ID:          id,
		AccountID:   update.AccountID,
		CategoryID:  update.CategoryID,
		Amount:      update.Amount,
		Type:        update.Type,
		Description: update.Description,
		Date:        update.Date,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	tx := enrichTransaction(s.storage.Read(), action.Result)
	return &tx, nil
}

// DeleteTransaction removes a transaction and reverses its balance effect.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id int64) error {
	return s.processor.Process(ctx, &actions.DeleteTransaction{UserID: userID, ID: id})
}
