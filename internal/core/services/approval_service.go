package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
	"github.com/wiradata/treasury_app/internal/middleware"
)

var (
	ErrSelfApproval       = errors.New("approver must differ from requester")
	ErrApprovalNotPending = errors.New("approval request is already decided")
)

// ApprovalRuleConfig is the configurable approval predicate. The exact rules
// live outside the core; this struct is filled from application config.
type ApprovalRuleConfig struct {
	Enabled         bool
	AmountThreshold decimal.Decimal
	// Kinds restricts the gate to specific transaction kinds; empty means all.
	Kinds map[domain.TransactionKind]bool
}

// approvalService gates posting behind an explicit approval workflow.
type approvalService struct {
	approvalRepo portsrepo.ApprovalRepository
	txnRepo      portsrepo.TransactionReader
	rules        ApprovalRuleConfig
}

// NewApprovalService creates the approval gate.
func NewApprovalService(approvalRepo portsrepo.ApprovalRepository, txnRepo portsrepo.TransactionReader, rules ApprovalRuleConfig) portssvc.ApprovalSvcFacade {
	return &approvalService{
		approvalRepo: approvalRepo,
		txnRepo:      txnRepo,
		rules:        rules,
	}
}

var _ portssvc.ApprovalSvcFacade = (*approvalService)(nil)

// RequiresApproval evaluates the configured predicate against a transaction.
func (s *approvalService) RequiresApproval(txn domain.Transaction) bool {
	if !s.rules.Enabled {
		return false
	}
	if len(s.rules.Kinds) > 0 && !s.rules.Kinds[txn.Kind] {
		return false
	}
	if s.rules.AmountThreshold.IsPositive() {
		return txn.Amount.GreaterThanOrEqual(s.rules.AmountThreshold)
	}
	return true
}

// RequestApproval files a pending request and parks the draft in
// PENDING_APPROVAL until an approver decides.
func (s *approvalService) RequestApproval(ctx context.Context, transactionID, requestedBy, note string) (*domain.ApprovalRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != domain.StatusDraft {
		return nil, fmt.Errorf("%w: status is %s", ErrNotDraft, txn.Status)
	}

	now := time.Now().UTC()
	req := domain.ApprovalRequest{
		RequestID:     uuid.NewString(),
		TransactionID: transactionID,
		RequestedBy:   requestedBy,
		Note:          note,
		Status:        domain.ApprovalPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: requestedBy,
		},
	}

	if err := s.approvalRepo.SaveApprovalRequest(ctx, req); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: transaction moved on concurrently", ErrNotDraft)
		}
		logger.Error("Failed to save approval request", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to save approval request: %w", err)
	}

	logger.Info("Approval requested", slog.String("request_id", req.RequestID), slog.String("transaction_id", transactionID))
	return &req, nil
}

// Decide resolves a pending request. Approval returns the transaction to
// DRAFT so it becomes postable; rejection leaves it parked for the submitter.
func (s *approvalService) Decide(ctx context.Context, requestID string, approverID string, decision domain.ApprovalDecision) (*domain.ApprovalRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !decision.Valid() {
		return nil, fmt.Errorf("%w: unknown decision %q", apperrors.ErrValidation, decision)
	}

	req, err := s.approvalRepo.FindApprovalRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.ApprovalPending {
		return nil, fmt.Errorf("%w: status is %s", ErrApprovalNotPending, req.Status)
	}
	if req.RequestedBy == approverID {
		return nil, ErrSelfApproval
	}

	status := domain.ApprovalApproved
	if decision == domain.DecisionReject {
		status = domain.ApprovalRejected
	}

	now := time.Now().UTC()
	if err := s.approvalRepo.DecideApprovalRequest(ctx, requestID, status, approverID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: decided concurrently", ErrApprovalNotPending)
		}
		logger.Error("Failed to decide approval request", slog.String("error", err.Error()), slog.String("request_id", requestID))
		return nil, fmt.Errorf("failed to decide approval request: %w", err)
	}

	req.Status = status
	req.DecidedBy = approverID
	req.DecidedAt = &now
	req.LastUpdatedAt = now
	req.LastUpdatedBy = approverID

	logger.Info("Approval decided",
		slog.String("request_id", requestID),
		slog.String("decision", string(decision)),
		slog.String("approver_id", approverID),
	)
	return req, nil
}

// HasApproval reports whether the transaction already carries an approved request.
func (s *approvalService) HasApproval(ctx context.Context, transactionID string) (bool, error) {
	return s.approvalRepo.HasApprovedRequest(ctx, transactionID)
}
