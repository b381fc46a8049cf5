package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
	"github.com/wiradata/treasury_app/internal/middleware"
	"github.com/wiradata/treasury_app/internal/utils/accounting"
)

var (
	ErrNotGiro           = errors.New("transaction does not carry a giro instrument")
	ErrNotReceiptPosted  = errors.New("giro receipt has not been posted yet")
	ErrInstrumentSettled = errors.New("giro instrument is already settled")
)

// giroService drives giro instruments past receipt posting: clearing moves
// the amount from the giro holding account into the bank ledger, rejection
// reverses the posted receipt.
type giroService struct {
	txnRepo         portsrepo.TransactionReader
	journalRepo     portsrepo.JournalRepositoryFacade
	bankAccountRepo portsrepo.BankAccountReader
	periodGuard     portssvc.PeriodGuard
	notifier        portssvc.Notifier
}

// NewGiroService creates the giro settlement service.
func NewGiroService(
	txnRepo portsrepo.TransactionReader,
	journalRepo portsrepo.JournalRepositoryFacade,
	bankAccountRepo portsrepo.BankAccountReader,
	periodGuard portssvc.PeriodGuard,
	notifier portssvc.Notifier,
) portssvc.GiroSvcFacade {
	return &giroService{
		txnRepo:         txnRepo,
		journalRepo:     journalRepo,
		bankAccountRepo: bankAccountRepo,
		periodGuard:     periodGuard,
		notifier:        notifier,
	}
}

var _ portssvc.GiroSvcFacade = (*giroService)(nil)

// ClearGiro settles a received giro at the bank: a clearing journal moves the
// amount between the giro holding account and the bank's ledger account, and
// the instrument becomes CLEARED.
func (s *giroService) ClearGiro(ctx context.Context, transactionID string, clearDate time.Time, actorID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !txn.IsGiro() {
		return nil, fmt.Errorf("%w: kind is %s", ErrNotGiro, txn.Kind)
	}
	if txn.InstrumentStatus.Terminal() {
		return nil, fmt.Errorf("%w: instrument is %s", ErrInstrumentSettled, txn.InstrumentStatus)
	}
	if txn.Status != domain.StatusPosted && txn.Status != domain.StatusReconciled {
		return nil, fmt.Errorf("%w: status is %s", ErrNotReceiptPosted, txn.Status)
	}
	if txn.BankAccountID == nil {
		return nil, fmt.Errorf("%w: giro transaction has no bank account", apperrors.ErrValidation)
	}
	if clearDate.Before(txn.TransactionDate) {
		return nil, fmt.Errorf("%w: clear date %s precedes receive date %s",
			apperrors.ErrValidation, clearDate.Format("2006-01-02"), txn.TransactionDate.Format("2006-01-02"))
	}

	check, err := s.periodGuard.CheckPostable(ctx, clearDate)
	if err != nil {
		return nil, err
	}
	if check.State == domain.PeriodHardClosed {
		return nil, fmt.Errorf("%w: period %s", ErrPeriodClosed, check.PeriodName)
	}

	bankAccount, err := s.bankAccountRepo.FindBankAccountByID(ctx, *txn.BankAccountID)
	if err != nil {
		return nil, fmt.Errorf("bank account %s: %w", *txn.BankAccountID, err)
	}

	// Clearing in: the bank receives the funds held on the giro account.
	// Clearing out: the bank pays them away.
	debitAcc, creditAcc := bankAccount.AccountID, txn.PrimaryAccountID
	if txn.Kind == domain.ClearingOut {
		debitAcc, creditAcc = txn.PrimaryAccountID, bankAccount.AccountID
	}

	now := time.Now().UTC()
	description := fmt.Sprintf("Clearing of giro %s", txn.InstrumentNumber)
	journal, lines := s.buildSettlementJournal(txn, domain.SourceGiroClearing, clearDate, description, debitAcc, creditAcc, actorID, now)

	settled, err := s.journalRepo.SettleGiro(ctx, transactionID, journal, lines, domain.InstrumentCleared, "", actorID, now)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: settled concurrently", ErrInstrumentSettled)
		}
		logger.Error("Failed to clear giro", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to clear giro: %w", err)
	}

	logger.Info("Giro cleared",
		slog.String("transaction_id", transactionID),
		slog.String("instrument_number", txn.InstrumentNumber),
		slog.String("journal_id", settled.JournalID),
	)
	s.notifier.Notify(ctx, "giro.cleared", map[string]any{
		"transactionID":    transactionID,
		"instrumentNumber": txn.InstrumentNumber,
		"journalID":        settled.JournalID,
		"amount":           txn.Amount.String(),
		"actorID":          actorID,
	})
	return settled, nil
}

// RejectGiro marks a giro instrument bounced. If the receipt was already
// posted, a reversal journal nets the receipt out; an unposted giro only
// moves its instrument status.
func (s *giroService) RejectGiro(ctx context.Context, transactionID string, reason string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidation)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if !txn.IsGiro() {
		return fmt.Errorf("%w: kind is %s", ErrNotGiro, txn.Kind)
	}
	if txn.InstrumentStatus.Terminal() {
		return fmt.Errorf("%w: instrument is %s", ErrInstrumentSettled, txn.InstrumentStatus)
	}

	now := time.Now().UTC()
	appendNote := fmt.Sprintf("Rejected: %s", strings.TrimSpace(reason))

	var journal *domain.Journal
	var lines []domain.JournalLine
	if txn.JournalID != nil {
		receiptLines, err := s.journalRepo.FindLinesByJournalID(ctx, *txn.JournalID)
		if err != nil {
			return fmt.Errorf("receipt journal %s: %w", *txn.JournalID, err)
		}

		reversed := accounting.ReversedLines(receiptLines)
		description := fmt.Sprintf("Reversal of giro %s: %s", txn.InstrumentNumber, strings.TrimSpace(reason))
		journal, lines = s.buildReversalJournal(txn, reversed, description, actorID, now)
	}

	if _, err := s.journalRepo.SettleGiro(ctx, transactionID, journal, lines, domain.InstrumentRejected, appendNote, actorID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return fmt.Errorf("%w: settled concurrently", ErrInstrumentSettled)
		}
		logger.Error("Failed to reject giro", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to reject giro: %w", err)
	}

	logger.Info("Giro rejected",
		slog.String("transaction_id", transactionID),
		slog.String("instrument_number", txn.InstrumentNumber),
		slog.String("reason", reason),
	)
	s.notifier.Notify(ctx, "giro.rejected", map[string]any{
		"transactionID":    transactionID,
		"instrumentNumber": txn.InstrumentNumber,
		"reason":           reason,
		"actorID":          actorID,
	})
	return nil
}

func (s *giroService) buildSettlementJournal(txn *domain.Transaction, source domain.SourceKind, date time.Time, description, debitAcc, creditAcc, actorID string, now time.Time) (*domain.Journal, []domain.JournalLine) {
	journalID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}

	lines := accounting.PairedLines(journalID, debitAcc, creditAcc, txn.Amount, description)
	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].AuditFields = audit
	}

	return &domain.Journal{
		JournalID:   journalID,
		JournalDate: date,
		Description: description,
		TotalDebit:  txn.Amount,
		TotalCredit: txn.Amount,
		Status:      domain.JournalPosted,
		SourceKind:  source,
		SourceID:    txn.TransactionID,
		PostedAt:    &now,
		PostedBy:    actorID,
		AuditFields: audit,
	}, lines
}

func (s *giroService) buildReversalJournal(txn *domain.Transaction, reversed []domain.JournalLine, description, actorID string, now time.Time) (*domain.Journal, []domain.JournalLine) {
	journalID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}

	for i := range reversed {
		reversed[i].LineID = uuid.NewString()
		reversed[i].JournalID = journalID
		reversed[i].Description = description
		reversed[i].AuditFields = audit
	}

	return &domain.Journal{
		JournalID:   journalID,
		JournalDate: now,
		Description: description,
		TotalDebit:  txn.Amount,
		TotalCredit: txn.Amount,
		Status:      domain.JournalPosted,
		SourceKind:  domain.SourceGiroReversal,
		SourceID:    txn.TransactionID,
		PostedAt:    &now,
		PostedBy:    actorID,
		AuditFields: audit,
	}, reversed
}
