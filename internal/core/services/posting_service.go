package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
	"github.com/wiradata/treasury_app/internal/dto"
	"github.com/wiradata/treasury_app/internal/middleware"
	"github.com/wiradata/treasury_app/internal/utils/accounting"
)

var (
	ErrAlreadyPosted    = errors.New("transaction is already posted")
	ErrApprovalRequired = errors.New("transaction requires approval before posting")
	ErrSameAccount      = errors.New("counter account must differ from primary account")
	ErrUnbalanced       = errors.New("journal lines do not balance")
)

// postingService is the posting engine: it turns a draft transaction into a
// balanced journal and flips the draft to POSTED in one atomic unit.
type postingService struct {
	txnRepo     portsrepo.TransactionReader
	journalRepo portsrepo.PostingRepository
	directory   portssvc.AccountDirectory
	approvals   portssvc.ApprovalSvcFacade
	periodGuard portssvc.PeriodGuard
	notifier    portssvc.Notifier

	reasonMinLen int
}

// NewPostingService creates the posting engine.
func NewPostingService(
	txnRepo portsrepo.TransactionReader,
	journalRepo portsrepo.PostingRepository,
	directory portssvc.AccountDirectory,
	approvals portssvc.ApprovalSvcFacade,
	periodGuard portssvc.PeriodGuard,
	notifier portssvc.Notifier,
	reasonMinLen int,
) portssvc.PostingSvcFacade {
	return &postingService{
		txnRepo:      txnRepo,
		journalRepo:  journalRepo,
		directory:    directory,
		approvals:    approvals,
		periodGuard:  periodGuard,
		notifier:     notifier,
		reasonMinLen: reasonMinLen,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// PostTransaction posts one draft. counterAccountID may override the draft's
// stored counter account; empty means use the stored one.
func (s *postingService) PostTransaction(ctx context.Context, transactionID, counterAccountID, revisionReason, actorID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	switch txn.Status {
	case domain.StatusDraft:
		// postable
	case domain.StatusPosted, domain.StatusReconciled:
		return nil, fmt.Errorf("%w: journal %s", ErrAlreadyPosted, derefOrEmpty(txn.JournalID))
	case domain.StatusPendingApproval:
		return nil, fmt.Errorf("%w: a request is pending", ErrApprovalRequired)
	default:
		return nil, fmt.Errorf("%w: status is %s", ErrNotDraft, txn.Status)
	}

	counterID := counterAccountID
	if counterID == "" {
		if txn.CounterAccountID == nil {
			return nil, fmt.Errorf("%w: counter account is required for posting", apperrors.ErrValidation)
		}
		counterID = *txn.CounterAccountID
	}
	if counterID == txn.PrimaryAccountID {
		return nil, ErrSameAccount
	}

	counter, err := s.directory.Lookup(ctx, counterID)
	if err != nil {
		return nil, fmt.Errorf("counter account %s: %w", counterID, err)
	}
	if !counter.IsActive {
		return nil, fmt.Errorf("%w: counter account %s is inactive", apperrors.ErrValidation, counterID)
	}

	if err := checkPeriodPostable(ctx, s.periodGuard, txn.TransactionDate, revisionReason, s.reasonMinLen); err != nil {
		return nil, err
	}

	if s.approvals.RequiresApproval(*txn) {
		approved, err := s.approvals.HasApproval(ctx, transactionID)
		if err != nil {
			return nil, fmt.Errorf("failed to check approval: %w", err)
		}
		if !approved {
			return nil, fmt.Errorf("%w: amount %s", ErrApprovalRequired, txn.Amount.String())
		}
	}

	journal, lines, err := s.buildPostingJournal(txn, counterID, actorID)
	if err != nil {
		return nil, err
	}

	posted, err := s.journalRepo.PostTransaction(ctx, transactionID, *journal, lines)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Row was no longer a draft under the lock.
			return nil, fmt.Errorf("%w: posted concurrently", ErrAlreadyPosted)
		}
		logger.Error("Failed to post transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to post transaction: %w", err)
	}

	logger.Info("Transaction posted",
		slog.String("transaction_id", transactionID),
		slog.String("journal_id", posted.JournalID),
		slog.String("journal_number", posted.Number),
	)
	s.notifier.Notify(ctx, "transaction.posted", map[string]any{
		"transactionID": transactionID,
		"journalID":     posted.JournalID,
		"number":        posted.Number,
		"amount":        txn.Amount.String(),
		"actorID":       actorID,
	})
	return posted, nil
}

// PostBatch posts the items one by one. Each item is its own atomic unit, so
// a failed item is reported and skipped while the rest still post.
func (s *postingService) PostBatch(ctx context.Context, items []dto.PostBatchItem, revisionReason, actorID string) (dto.PostBatchResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	result := dto.PostBatchResult{Failures: []dto.PostBatchFailure{}}
	for _, item := range items {
		if _, err := s.PostTransaction(ctx, item.TransactionID, item.CounterAccountID, revisionReason, actorID); err != nil {
			result.Failures = append(result.Failures, dto.PostBatchFailure{
				TransactionID: item.TransactionID,
				Reason:        err.Error(),
			})
			continue
		}
		result.PostedCount++
	}

	logger.Info("Batch posting finished",
		slog.Int("requested", len(items)),
		slog.Int("posted", result.PostedCount),
		slog.Int("failed", len(result.Failures)),
	)
	return result, nil
}

// buildPostingJournal assembles the balanced journal for a draft, including
// its two single-sided lines and audit fields.
func (s *postingService) buildPostingJournal(txn *domain.Transaction, counterAccountID, actorID string) (*domain.Journal, []domain.JournalLine, error) {
	debitAcc, creditAcc, err := accounting.EntrySides(txn.Kind, txn.PrimaryAccountID, counterAccountID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}

	lines := accounting.PairedLines(journalID, debitAcc, creditAcc, txn.Amount, txn.Description)
	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].AuditFields = audit
	}
	if err := accounting.ValidateLines(lines); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnbalanced, err.Error())
	}

	journal := &domain.Journal{
		JournalID:   journalID,
		JournalDate: txn.TransactionDate,
		Description: txn.Description,
		TotalDebit:  txn.Amount,
		TotalCredit: txn.Amount,
		Status:      domain.JournalPosted,
		SourceKind:  txn.JournalSource(),
		SourceID:    txn.TransactionID,
		PostedAt:    &now,
		PostedBy:    actorID,
		AuditFields: audit,
	}
	return journal, lines, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
