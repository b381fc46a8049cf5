package repositories

import (
	"context"
	"time"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

// TransactionReader defines read operations for treasury transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByIDs retrieves multiple transactions by their IDs.
	FindTransactionsByIDs(ctx context.Context, transactionIDs []string) (map[string]domain.Transaction, error)
}

// TransactionWriter defines write operations for treasury transactions.
// Draft-guarded methods fail with apperrors.ErrConflict when the row's status
// has moved on, so callers never clobber a concurrent lifecycle transition.
type TransactionWriter interface {
	// SaveTransaction allocates the transaction number and inserts the draft
	// atomically. Retries once with a fresh allocation on number collision.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// UpdateTransactionDraft updates mutable fields while status is DRAFT.
	UpdateTransactionDraft(ctx context.Context, txn domain.Transaction) error

	// DeleteTransactionDraft deletes the transaction while status is DRAFT.
	DeleteTransactionDraft(ctx context.Context, transactionID string) error

	// UpdateTransactionStatus flips status from one state to another as a
	// compare-and-swap; apperrors.ErrConflict when the from-state no longer holds.
	UpdateTransactionStatus(ctx context.Context, transactionID string, from, to domain.TransactionStatus, userID string, now time.Time) error

	// MarkReconciled moves all listed POSTED transactions to RECONCILED in a
	// single statement and returns how many rows changed.
	MarkReconciled(ctx context.Context, transactionIDs []string, reconcileDate time.Time, userID string, now time.Time) (int64, error)
}

// TransactionRepositoryFacade combines transaction reader and writer.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
