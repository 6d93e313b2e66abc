package storage

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned when a row does not exist or is not owned by
	// the requesting user.
	ErrNotFound = errors.New("storage: not found")

	// ErrWriterClosed is returned when a writer is used after Commit or Rollback.
	ErrWriterClosed = errors.New("storage: writer already closed")
)

// Storage is the process-local entity store. Committed rows are guarded by
// mu; at most one Writer exists at a time.
type Storage struct {
	mu        sync.RWMutex
	writeSlot chan struct{}

	users         *table[User]
	accounts      *table[Account]
	categories    *table[Category]
	transactions  *table[Transaction]
	goals         *table[SavingsGoal]
	contributions *table[GoalContribution]
}

func NewStorage() *Storage {
	return &Storage{
		writeSlot:     make(chan struct{}, 1),
		users:         newTable[User](),
		accounts:      newTable[Account](),
		categories:    newTable[Category](),
		transactions:  newTable[Transaction](),
		goals:         newTable[SavingsGoal](),
		contributions: newTable[GoalContribution](),
	}
}

// Read returns a reader over the committed state.
func (s *Storage) Read() *Reader {
	return &Reader{
		Users:         Rows[User]{src: committed[User]{s: s, t: s.users}},
		Accounts:      Rows[Account]{src: committed[Account]{s: s, t: s.accounts}},
		Categories:    Rows[Category]{src: committed[Category]{s: s, t: s.categories}},
		Transactions:  Rows[Transaction]{src: committed[Transaction]{s: s, t: s.transactions}},
		Goals:         Rows[SavingsGoal]{src: committed[SavingsGoal]{s: s, t: s.goals}},
		Contributions: Rows[GoalContribution]{src: committed[GoalContribution]{s: s, t: s.contributions}},
	}
}

// Write claims the single writer slot, waiting until it is free or ctx is
// done. The returned Writer must be finished with Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	select {
	case s.writeSlot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return newWriter(s), nil
}
