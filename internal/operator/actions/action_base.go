package actions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/observability"
	"github.com/carson-networks/finance-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

var (
	// ErrInvalidReference is returned when a referenced account, category or
	// goal is missing or owned by another user.
	ErrInvalidReference = errors.New("invalid reference")

	ErrInvalidAccount  = fmt.Errorf("%w: account", ErrInvalidReference)
	ErrInvalidCategory = fmt.Errorf("%w: category", ErrInvalidReference)
	ErrInvalidGoal     = fmt.Errorf("%w: savings goal", ErrInvalidReference)

	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = errors.New("user already exists")
)

// now is the clock used for created_at/updated_at stamps.
var now = func() time.Time {
	return time.Now().UTC()
}

// reportDanglingReversal records a balance adjustment that was skipped
// because the transaction's account no longer exists.
func reportDanglingReversal(ctx context.Context, operation string, tx *storage.Transaction) {
	observability.RecordDanglingReversal(operation)

	fields := logrus.Fields{
		"operation":     operation,
		"transactionID": tx.ID,
		"accountID":     tx.AccountID,
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("danglingAccountID", tx.AccountID)
	}
	logrus.WithFields(fields).Warn("Ledger.DanglingAccount")
}
