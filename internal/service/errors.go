package service

import (
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

var (
	// ErrNotFound is returned when an entity is missing or owned by another user.
	ErrNotFound = storage.ErrNotFound

	// ErrInvalidReference is returned when a referenced account, category or
	// goal is missing or owned by another user. ErrInvalidAccount,
	// ErrInvalidCategory and ErrInvalidGoal wrap it.
	ErrInvalidReference = actions.ErrInvalidReference
	ErrInvalidAccount   = actions.ErrInvalidAccount
	ErrInvalidCategory  = actions.ErrInvalidCategory
	ErrInvalidGoal      = actions.ErrInvalidGoal

	ErrUserExists = actions.ErrUserExists
)
