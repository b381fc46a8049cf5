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

type PgxApprovalRepository struct {
	BaseRepository
}

// newPgxApprovalRepository creates a new repository for approval requests.
func newPgxApprovalRepository(pool *pgxpool.Pool) portsrepo.ApprovalRepository {
	return &PgxApprovalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ApprovalRepository = (*PgxApprovalRepository)(nil)

// SaveApprovalRequest inserts the pending request and flips its transaction
// DRAFT -> PENDING_APPROVAL in the same database transaction. A partial
// unique index on (transaction_id) WHERE status = 'PENDING' rejects a second
// open request for the same transaction.
func (r *PgxApprovalRepository) SaveApprovalRequest(ctx context.Context, req domain.ApprovalRequest) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE transactions
		SET status = 'PENDING_APPROVAL',
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE transaction_id = $1 AND status = 'DRAFT';
	`, req.TransactionID, req.LastUpdatedAt, req.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to park transaction "+req.TransactionID+" for approval", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}

	m := mapping.ToModelApprovalRequest(req)
	_, err = tx.Exec(ctx, `
		INSERT INTO approval_requests (
			request_id, transaction_id, requested_by, note, status,
			decided_by, decided_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		m.RequestID,
		m.TransactionID,
		m.RequestedBy,
		m.Note,
		m.Status,
		m.DecidedBy,
		m.DecidedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert approval request "+m.RequestID, err)
	}

	return r.Commit(ctx, tx)
}

// FindApprovalRequestByID retrieves a request by its ID.
func (r *PgxApprovalRepository) FindApprovalRequestByID(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	query := `
		SELECT request_id, transaction_id, requested_by, note, status,
		       decided_by, decided_at,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM approval_requests
		WHERE request_id = $1;
	`
	var m models.ApprovalRequest
	err := r.Pool.QueryRow(ctx, query, requestID).Scan(
		&m.RequestID,
		&m.TransactionID,
		&m.RequestedBy,
		&m.Note,
		&m.Status,
		&m.DecidedBy,
		&m.DecidedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find approval request by ID "+requestID, err)
	}

	req := mapping.ToDomainApprovalRequest(m)
	return &req, nil
}

// HasApprovedRequest reports whether the transaction carries an approved request.
func (r *PgxApprovalRepository) HasApprovedRequest(ctx context.Context, transactionID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM approval_requests
			WHERE transaction_id = $1 AND status = 'APPROVED'
		);
	`, transactionID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check approvals for transaction "+transactionID, err)
	}
	return exists, nil
}

// DecideApprovalRequest resolves a pending request. Approval returns the
// transaction to DRAFT in the same database transaction; rejection leaves it
// in PENDING_APPROVAL so the submitter must revise or delete.
func (r *PgxApprovalRepository) DecideApprovalRequest(ctx context.Context, requestID string, status domain.ApprovalStatus, approverID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var transactionID string
	err = tx.QueryRow(ctx, `
		UPDATE approval_requests
		SET status = $2,
		    decided_by = $3,
		    decided_at = $4,
		    last_updated_at = $4,
		    last_updated_by = $3
		WHERE request_id = $1 AND status = 'PENDING'
		RETURNING transaction_id;
	`, requestID, string(status), approverID, now).Scan(&transactionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either missing or already decided; look again to tell which.
			if _, findErr := r.FindApprovalRequestByID(ctx, requestID); findErr != nil {
				return findErr
			}
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to decide approval request "+requestID, err)
	}

	if status == domain.ApprovalApproved {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE transactions
			SET status = 'DRAFT',
			    last_updated_at = $2,
			    last_updated_by = $3
			WHERE transaction_id = $1 AND status = 'PENDING_APPROVAL';
		`, transactionID, now, approverID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to return transaction "+transactionID+" to draft", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrConflict
		}
	}

	return r.Commit(ctx, tx)
}
