package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	"github.com/wiradata/treasury_app/internal/models"
	"github.com/wiradata/treasury_app/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
	sequenceRepo portsrepo.SequenceRepository
}

// newPgxTransactionRepository creates a new repository for treasury transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool, sequenceRepo portsrepo.SequenceRepository) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		sequenceRepo:   sequenceRepo,
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	transaction_id, number, kind, transaction_date, effective_date, amount,
	primary_account_id, counter_account_id, bank_account_id,
	description, related_party, reference_number, status,
	journal_id, posted_at, posted_by, reconciled_at,
	instrument_number, instrument_due_date, instrument_status, settlement_journal_id,
	notes, created_at, created_by, last_updated_at, last_updated_by
`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Number,
		&m.Kind,
		&m.TransactionDate,
		&m.EffectiveDate,
		&m.Amount,
		&m.PrimaryAccountID,
		&m.CounterAccountID,
		&m.BankAccountID,
		&m.Description,
		&m.RelatedParty,
		&m.ReferenceNumber,
		&m.Status,
		&m.JournalID,
		&m.PostedAt,
		&m.PostedBy,
		&m.ReconciledAt,
		&m.InstrumentNumber,
		&m.InstrumentDueDate,
		&m.InstrumentStatus,
		&m.SettlementJournalID,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction allocates the document number and inserts the draft in one
// database transaction. On a number collision (unique violation) the whole
// allocation is retried once with a fresh number.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	saved, err := r.saveTransactionOnce(ctx, txn)
	if err != nil && isUniqueViolation(err) {
		saved, err = r.saveTransactionOnce(ctx, txn)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, err
	}
	return saved, nil
}

func (r *PgxTransactionRepository) saveTransactionOnce(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	number, err := r.sequenceRepo.NextNumberInTx(ctx, tx, txn.NumberPrefix(), txn.TransactionDate.Year(), txn.TransactionDate.Month())
	if err != nil {
		return nil, err
	}
	txn.Number = number

	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26);
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID,
		m.Number,
		m.Kind,
		m.TransactionDate,
		m.EffectiveDate,
		m.Amount,
		m.PrimaryAccountID,
		m.CounterAccountID,
		m.BankAccountID,
		m.Description,
		m.RelatedParty,
		m.ReferenceNumber,
		m.Status,
		m.JournalID,
		m.PostedAt,
		m.PostedBy,
		m.ReconciledAt,
		m.InstrumentNumber,
		m.InstrumentDueDate,
		m.InstrumentStatus,
		m.SettlementJournalID,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &txn, nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransactionsByIDs retrieves multiple transactions, keyed by ID.
func (r *PgxTransactionRepository) FindTransactionsByIDs(ctx context.Context, transactionIDs []string) (map[string]domain.Transaction, error) {
	if len(transactionIDs) == 0 {
		return map[string]domain.Transaction{}, nil
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Transaction, len(transactionIDs))
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		result[m.TransactionID] = mapping.ToDomainTransaction(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}
	return result, nil
}

// UpdateTransactionDraft updates mutable fields, guarded by status = DRAFT in
// the WHERE clause so a concurrently-posted row is never clobbered.
func (r *PgxTransactionRepository) UpdateTransactionDraft(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET transaction_date = $2,
		    effective_date = $3,
		    amount = $4,
		    counter_account_id = $5,
		    description = $6,
		    related_party = $7,
		    reference_number = $8,
		    instrument_number = $9,
		    instrument_due_date = $10,
		    notes = $11,
		    last_updated_at = $12,
		    last_updated_by = $13
		WHERE transaction_id = $1 AND status = 'DRAFT';
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.TransactionDate,
		m.EffectiveDate,
		m.Amount,
		m.CounterAccountID,
		m.Description,
		m.RelatedParty,
		m.ReferenceNumber,
		m.InstrumentNumber,
		m.InstrumentDueDate,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction draft "+m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.missingOrMoved(ctx, m.TransactionID)
	}
	return nil
}

// DeleteTransactionDraft deletes the transaction while it is still a draft.
func (r *PgxTransactionRepository) DeleteTransactionDraft(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND status = 'DRAFT';`

	cmdTag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction draft "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.missingOrMoved(ctx, transactionID)
	}
	return nil
}

// UpdateTransactionStatus flips the status as a compare-and-swap.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, from, to domain.TransactionStatus, userID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET status = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE transaction_id = $1 AND status = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, string(from), string(to), now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.missingOrMoved(ctx, transactionID)
	}
	return nil
}

// MarkReconciled moves the whole set POSTED -> RECONCILED in one transaction.
// If any row is not POSTED anymore the set is rolled back and the caller gets
// apperrors.ErrConflict with the count that would have matched.
func (r *PgxTransactionRepository) MarkReconciled(ctx context.Context, transactionIDs []string, reconcileDate time.Time, userID string, now time.Time) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE transactions
		SET status = 'RECONCILED',
		    reconciled_at = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE transaction_id = ANY($1) AND status = 'POSTED';
	`
	cmdTag, err := tx.Exec(ctx, query, transactionIDs, reconcileDate, now, userID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to mark transactions reconciled", err)
	}

	affected := cmdTag.RowsAffected()
	if affected != int64(len(transactionIDs)) {
		return affected, apperrors.ErrConflict
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return affected, nil
}

// missingOrMoved distinguishes a missing row from one whose status guard
// failed, after a zero-rows-affected write.
func (r *PgxTransactionRepository) missingOrMoved(ctx context.Context, transactionID string) error {
	var status string
	err := r.Pool.QueryRow(ctx, `SELECT status FROM transactions WHERE transaction_id = $1;`, transactionID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to re-check transaction "+transactionID, err)
	}
	return apperrors.ErrConflict
}
