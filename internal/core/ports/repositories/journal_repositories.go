package repositories

import (
	"context"
	"time"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

// JournalReader defines read operations for journals and their lines.
type JournalReader interface {
	// FindJournalByID retrieves a journal header by its ID.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindLinesByJournalID retrieves all lines of a journal.
	FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)
}

// PostingRepository is the storage side of the journal posting engine. Both
// methods are single atomic units: either every effect commits or none does.
type PostingRepository interface {
	// PostTransaction locks the transaction row, re-checks it is still a
	// draft, allocates the journal number, writes the journal header and its
	// lines, flips the transaction to POSTED and recomputes the bank balance.
	// apperrors.ErrConflict when the row is no longer a draft.
	PostTransaction(ctx context.Context, transactionID string, journal domain.Journal, lines []domain.JournalLine) (*domain.Journal, error)

	// SettleGiro writes the settlement (clearing or reversal) journal for a
	// giro transaction and moves its instrument status, atomically. A nil
	// journal records a status-only settlement (rejecting an unposted giro).
	// apperrors.ErrConflict when the instrument is already terminal.
	SettleGiro(ctx context.Context, transactionID string, journal *domain.Journal, lines []domain.JournalLine, newStatus domain.InstrumentStatus, appendNote string, userID string, now time.Time) (*domain.Journal, error)
}

// JournalRepositoryFacade combines journal reads with the posting engine.
type JournalRepositoryFacade interface {
	JournalReader
	PostingRepository
}

// JournalRepositoryWithTx extends the facade with transaction management.
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
