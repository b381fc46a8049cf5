package repositories

import (
	"context"
	"time"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

// ApprovalRepository defines persistence for approval requests. Save and
// Decide also move the gated transaction's status inside the same database
// transaction, so the request and the transaction can never disagree.
type ApprovalRepository interface {
	// SaveApprovalRequest inserts a pending request and flips the transaction
	// DRAFT -> PENDING_APPROVAL atomically. apperrors.ErrConflict when the
	// transaction is not a draft, apperrors.ErrDuplicate when a pending
	// request already exists for it.
	SaveApprovalRequest(ctx context.Context, req domain.ApprovalRequest) error

	// FindApprovalRequestByID retrieves a request by its ID.
	FindApprovalRequestByID(ctx context.Context, requestID string) (*domain.ApprovalRequest, error)

	// HasApprovedRequest reports whether the transaction carries an approved request.
	HasApprovedRequest(ctx context.Context, transactionID string) (bool, error)

	// DecideApprovalRequest resolves a pending request. On approval the
	// transaction returns PENDING_APPROVAL -> DRAFT in the same database
	// transaction; on rejection it stays PENDING_APPROVAL.
	// apperrors.ErrConflict when the request is no longer pending.
	DecideApprovalRequest(ctx context.Context, requestID string, status domain.ApprovalStatus, approverID string, now time.Time) error
}

// PeriodRepository defines read access to accounting periods.
type PeriodRepository interface {
	// FindPeriodForDate retrieves the period covering the given date.
	// apperrors.ErrNotFound when no period row exists (treated as open).
	FindPeriodForDate(ctx context.Context, date time.Time) (*domain.Period, error)
}
