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

type PgxJournalRepository struct {
	BaseRepository
	bankAccountRepo portsrepo.BankAccountTransactionSupport
	sequenceRepo    portsrepo.SequenceRepository
}

// newPgxJournalRepository creates the repository behind the posting engine.
func newPgxJournalRepository(pool *pgxpool.Pool, bankAccountRepo portsrepo.BankAccountTransactionSupport, sequenceRepo portsrepo.SequenceRepository) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository:  BaseRepository{Pool: pool},
		bankAccountRepo: bankAccountRepo,
		sequenceRepo:    sequenceRepo,
	}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// PostTransaction is the posting engine's atomic unit: lock the transaction
// row, re-check it is still a draft, allocate the journal number, write the
// journal and its lines, flip the transaction to POSTED and recompute the
// bank running balance. Any failure rolls the whole unit back.
func (r *PgxJournalRepository) PostTransaction(ctx context.Context, transactionID string, journal domain.Journal, lines []domain.JournalLine) (*domain.Journal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var status string
	var bankAccountID *string
	err = tx.QueryRow(ctx, `
		SELECT status, bank_account_id
		FROM transactions
		WHERE transaction_id = $1
		FOR UPDATE;
	`, transactionID).Scan(&status, &bankAccountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock transaction "+transactionID, err)
	}
	if status != string(domain.StatusDraft) {
		return nil, apperrors.ErrConflict
	}

	if err := r.insertJournalInTx(ctx, tx, &journal, lines); err != nil {
		return nil, err
	}

	now := journal.LastUpdatedAt
	userID := journal.LastUpdatedBy
	cmdTag, err := tx.Exec(ctx, `
		UPDATE transactions
		SET status = 'POSTED',
		    journal_id = $2,
		    posted_at = $3,
		    posted_by = $4,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE transaction_id = $1;
	`, transactionID, journal.JournalID, now, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to flip transaction "+transactionID+" to POSTED", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Cannot happen while the row lock is held.
		return nil, apperrors.NewAppError(500, "locked transaction "+transactionID+" vanished during posting", nil)
	}

	if bankAccountID != nil {
		if _, err := r.bankAccountRepo.RecalculateBalanceInTx(ctx, tx, *bankAccountID, userID, now); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	journal.Lines = lines
	return &journal, nil
}

// SettleGiro writes the clearing or reversal journal for a giro transaction
// and moves its instrument status, atomically. journal may be nil for a
// status-only settlement (rejecting an unposted giro).
func (r *PgxJournalRepository) SettleGiro(ctx context.Context, transactionID string, journal *domain.Journal, lines []domain.JournalLine, newStatus domain.InstrumentStatus, appendNote string, userID string, now time.Time) (*domain.Journal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var instrumentStatus, notes string
	var bankAccountID *string
	err = tx.QueryRow(ctx, `
		SELECT instrument_status, notes, bank_account_id
		FROM transactions
		WHERE transaction_id = $1
		FOR UPDATE;
	`, transactionID).Scan(&instrumentStatus, &notes, &bankAccountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock transaction "+transactionID, err)
	}
	if domain.InstrumentStatus(instrumentStatus).Terminal() {
		return nil, apperrors.ErrConflict
	}

	var settlementJournalID *string
	if journal != nil {
		if err := r.insertJournalInTx(ctx, tx, journal, lines); err != nil {
			return nil, err
		}
		settlementJournalID = &journal.JournalID
	}

	if appendNote != "" {
		if notes != "" {
			notes += "\n"
		}
		notes += appendNote
	}

	// Rejecting the instrument also rejects the transaction itself; the
	// reversal journal (when present) nets the posted receipt out.
	query := `
		UPDATE transactions
		SET instrument_status = $2,
		    settlement_journal_id = COALESCE($3, settlement_journal_id),
		    notes = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
	`
	if newStatus == domain.InstrumentRejected {
		query += `, status = 'REJECTED'`
	}
	query += ` WHERE transaction_id = $1;`

	if _, err := tx.Exec(ctx, query, transactionID, string(newStatus), settlementJournalID, notes, now, userID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to settle giro transaction "+transactionID, err)
	}

	if bankAccountID != nil {
		if _, err := r.bankAccountRepo.RecalculateBalanceInTx(ctx, tx, *bankAccountID, userID, now); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	if journal != nil {
		journal.Lines = lines
	}
	return journal, nil
}

// insertJournalInTx allocates the journal number and writes the header plus
// all lines within tx. The journal's Number field is filled in place.
func (r *PgxJournalRepository) insertJournalInTx(ctx context.Context, tx pgx.Tx, journal *domain.Journal, lines []domain.JournalLine) error {
	number, err := r.sequenceRepo.NextNumberInTx(ctx, tx, domain.JournalNumberPrefix, journal.JournalDate.Year(), journal.JournalDate.Month())
	if err != nil {
		return err
	}
	journal.Number = number

	m := mapping.ToModelJournal(*journal)
	headerQuery := `
		INSERT INTO journals (
			journal_id, number, journal_date, description,
			total_debit, total_credit, status, source_kind, source_id,
			posted_at, posted_by,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.JournalID,
		m.Number,
		m.JournalDate,
		m.Description,
		m.TotalDebit,
		m.TotalCredit,
		m.Status,
		m.SourceKind,
		m.SourceID,
		m.PostedAt,
		m.PostedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+m.JournalID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (
			line_id, journal_id, account_id, description, debit, credit,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, line := range lines {
		ml := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			ml.LineID,
			ml.JournalID,
			ml.AccountID,
			ml.Description,
			ml.Debit,
			ml.Credit,
			ml.CreatedAt,
			ml.CreatedBy,
			ml.LastUpdatedAt,
			ml.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for journal "+m.JournalID, err)
	}
	return nil
}

// FindJournalByID retrieves a journal header by its ID.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `
		SELECT journal_id, number, journal_date, description,
		       total_debit, total_credit, status, source_kind, source_id,
		       posted_at, posted_by,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journals
		WHERE journal_id = $1;
	`
	var m models.Journal
	err := r.Pool.QueryRow(ctx, query, journalID).Scan(
		&m.JournalID,
		&m.Number,
		&m.JournalDate,
		&m.Description,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.Status,
		&m.SourceKind,
		&m.SourceID,
		&m.PostedAt,
		&m.PostedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}

	journal := mapping.ToDomainJournal(m)
	return &journal, nil
}

// FindLinesByJournalID retrieves all lines of a journal in insertion order.
func (r *PgxJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, journal_id, account_id, description, debit, credit,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_lines
		WHERE journal_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal "+journalID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		var l models.JournalLine
		err := rows.Scan(
			&l.LineID,
			&l.JournalID,
			&l.AccountID,
			&l.Description,
			&l.Debit,
			&l.Credit,
			&l.CreatedAt,
			&l.CreatedBy,
			&l.LastUpdatedAt,
			&l.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for journal "+journalID, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for journal "+journalID, err)
	}

	return mapping.ToDomainJournalLineSlice(lines), nil
}
