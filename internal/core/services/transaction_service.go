package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
	"github.com/wiradata/treasury_app/internal/dto"
	"github.com/wiradata/treasury_app/internal/middleware"
)

var (
	ErrNotDraft       = errors.New("transaction is no longer a draft")
	ErrNotAllEligible = errors.New("not all transactions are eligible for reconciliation")
)

// transactionService owns the treasury transaction lifecycle outside posting:
// draft creation, draft-only mutation and reconciliation of posted entries.
type transactionService struct {
	txnRepo         portsrepo.TransactionRepositoryFacade
	directory       portssvc.AccountDirectory
	bankAccountRepo portsrepo.BankAccountReader
	periodGuard     portssvc.PeriodGuard
	reasonMinLen    int
}

// NewTransactionService creates the transaction lifecycle service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	directory portssvc.AccountDirectory,
	bankAccountRepo portsrepo.BankAccountReader,
	periodGuard portssvc.PeriodGuard,
	reasonMinLen int,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:         txnRepo,
		directory:       directory,
		bankAccountRepo: bankAccountRepo,
		periodGuard:     periodGuard,
		reasonMinLen:    reasonMinLen,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and persists a new draft.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kind := domain.TransactionKind(req.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, req.Kind)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, req.Amount.String())
	}
	if kind.IsGiro() && strings.TrimSpace(req.InstrumentNumber) == "" {
		return nil, fmt.Errorf("%w: instrument number is required for giro transactions", apperrors.ErrValidation)
	}

	if err := checkPeriodPostable(ctx, s.periodGuard, req.TransactionDate, req.RevisionReason, s.reasonMinLen); err != nil {
		return nil, err
	}

	primary, err := s.directory.Lookup(ctx, req.PrimaryAccountID)
	if err != nil {
		return nil, err
	}
	if !primary.IsActive {
		return nil, fmt.Errorf("%w: primary account %s is inactive", apperrors.ErrValidation, primary.AccountID)
	}

	if req.BankAccountID != nil {
		bankAccount, err := s.bankAccountRepo.FindBankAccountByID(ctx, *req.BankAccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve bank account: %w", err)
		}
		if !bankAccount.IsActive {
			return nil, fmt.Errorf("%w: bank account %s is inactive", apperrors.ErrValidation, bankAccount.BankAccountID)
		}
		// A bank transaction posts to the bank's own ledger account. A giro
		// posts to a holding account and only settles into the bank later.
		if !kind.IsGiro() && bankAccount.AccountID != req.PrimaryAccountID {
			return nil, fmt.Errorf("%w: primary account does not match the bank account's ledger account", apperrors.ErrValidation)
		}
	}

	now := time.Now().UTC()
	effectiveDate := req.TransactionDate
	if req.EffectiveDate != nil {
		effectiveDate = *req.EffectiveDate
	}

	txn := domain.Transaction{
		TransactionID:     uuid.NewString(),
		Kind:              kind,
		TransactionDate:   req.TransactionDate,
		EffectiveDate:     effectiveDate,
		Amount:            req.Amount,
		PrimaryAccountID:  req.PrimaryAccountID,
		BankAccountID:     req.BankAccountID,
		Description:       req.Description,
		RelatedParty:      req.RelatedParty,
		ReferenceNumber:   req.ReferenceNumber,
		Status:            domain.StatusDraft,
		InstrumentNumber:  req.InstrumentNumber,
		InstrumentDueDate: req.InstrumentDueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if kind.IsGiro() {
		txn.InstrumentStatus = domain.InstrumentReceived
	}

	saved, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", saved.TransactionID),
		slog.String("number", saved.Number),
		slog.String("kind", string(saved.Kind)),
	)
	return saved, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// UpdateTransaction applies draft-only field updates.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !txn.Editable() {
		return nil, fmt.Errorf("%w: status is %s", ErrNotDraft, txn.Status)
	}

	updated := false
	if req.TransactionDate != nil {
		txn.TransactionDate = *req.TransactionDate
		updated = true
	}
	if req.EffectiveDate != nil {
		txn.EffectiveDate = *req.EffectiveDate
		updated = true
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, req.Amount.String())
		}
		txn.Amount = *req.Amount
		updated = true
	}
	if req.Description != nil {
		txn.Description = *req.Description
		updated = true
	}
	if req.RelatedParty != nil {
		txn.RelatedParty = *req.RelatedParty
		updated = true
	}
	if req.ReferenceNumber != nil {
		txn.ReferenceNumber = *req.ReferenceNumber
		updated = true
	}

	if !updated {
		return txn, nil
	}

	if err := checkPeriodPostable(ctx, s.periodGuard, txn.TransactionDate, req.RevisionReason, s.reasonMinLen); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransactionDraft(ctx, *txn); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Somebody posted or submitted it between our read and the write.
			return nil, fmt.Errorf("%w: transaction moved on concurrently", ErrNotDraft)
		}
		logger.Error("Failed to update transaction draft", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

// DeleteTransaction removes a draft. Posted transactions must be reversed,
// never deleted.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if !txn.Editable() {
		return fmt.Errorf("%w: status is %s", ErrNotDraft, txn.Status)
	}

	check, err := s.periodGuard.CheckPostable(ctx, txn.TransactionDate)
	if err != nil {
		return err
	}
	if check.State == domain.PeriodHardClosed {
		return fmt.Errorf("%w: period %s", ErrPeriodClosed, check.PeriodName)
	}

	if err := s.txnRepo.DeleteTransactionDraft(ctx, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return fmt.Errorf("%w: transaction moved on concurrently", ErrNotDraft)
		}
		logger.Error("Failed to delete transaction draft", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID), slog.String("deleted_by", userID))
	return nil
}

// ReconcileTransactions marks a set of posted cash/bank transactions as
// reconciled. The whole set succeeds or fails together.
func (s *transactionService) ReconcileTransactions(ctx context.Context, transactionIDs []string, reconcileDate time.Time, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(transactionIDs) == 0 {
		return fmt.Errorf("%w: no transactions given", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.FindTransactionsByIDs(ctx, transactionIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch transactions for reconciliation: %w", err)
	}

	var ineligible []string
	for _, id := range transactionIDs {
		txn, found := txns[id]
		switch {
		case !found:
			ineligible = append(ineligible, id+" (not found)")
		case txn.IsGiro():
			ineligible = append(ineligible, id+" (giro instruments clear, they do not reconcile)")
		case txn.Status != domain.StatusPosted:
			ineligible = append(ineligible, id+" (status "+string(txn.Status)+")")
		}
	}
	if len(ineligible) > 0 {
		return fmt.Errorf("%w: %s", ErrNotAllEligible, strings.Join(ineligible, "; "))
	}

	count, err := s.txnRepo.MarkReconciled(ctx, transactionIDs, reconcileDate, userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// A transaction changed state between our eligibility read and the
			// write; the repository rolled the whole set back.
			return fmt.Errorf("%w: %d of %d transactions were no longer posted", ErrNotAllEligible, int64(len(transactionIDs))-count, len(transactionIDs))
		}
		logger.Error("Failed to mark transactions reconciled", slog.String("error", err.Error()))
		return fmt.Errorf("failed to reconcile transactions: %w", err)
	}

	logger.Info("Transactions reconciled", slog.Int("count", len(transactionIDs)))
	return nil
}
