package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/wiradata/treasury_app/internal/core/domain"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByIDs(ctx context.Context, transactionIDs []string) (map[string]domain.Transaction, error) {
	args := m.Called(ctx, transactionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransactionDraft(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransactionDraft(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, from, to domain.TransactionStatus, userID string, now time.Time) error {
	args := m.Called(ctx, transactionID, from, to, userID, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkReconciled(ctx context.Context, transactionIDs []string, reconcileDate time.Time, userID string, now time.Time) (int64, error) {
	args := m.Called(ctx, transactionIDs, reconcileDate, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) PostTransaction(ctx context.Context, transactionID string, journal domain.Journal, lines []domain.JournalLine) (*domain.Journal, error) {
	args := m.Called(ctx, transactionID, journal, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) SettleGiro(ctx context.Context, transactionID string, journal *domain.Journal, lines []domain.JournalLine, newStatus domain.InstrumentStatus, appendNote string, userID string, now time.Time) (*domain.Journal, error) {
	args := m.Called(ctx, transactionID, journal, lines, newStatus, appendNote, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

// --- Mock BankAccountReader ---

type MockBankAccountReader struct {
	mock.Mock
}

var _ portsrepo.BankAccountReader = (*MockBankAccountReader)(nil)

func (m *MockBankAccountReader) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

// --- Mock ApprovalRepository ---

type MockApprovalRepository struct {
	mock.Mock
}

var _ portsrepo.ApprovalRepository = (*MockApprovalRepository)(nil)

func (m *MockApprovalRepository) SaveApprovalRequest(ctx context.Context, req domain.ApprovalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockApprovalRepository) FindApprovalRequestByID(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}

func (m *MockApprovalRepository) HasApprovedRequest(ctx context.Context, transactionID string) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApprovalRepository) DecideApprovalRequest(ctx context.Context, requestID string, status domain.ApprovalStatus, approverID string, now time.Time) error {
	args := m.Called(ctx, requestID, status, approverID, now)
	return args.Error(0)
}

// --- Mock PeriodRepository ---

type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodRepository = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) FindPeriodForDate(ctx context.Context, date time.Time) (*domain.Period, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

// --- Mock AccountDirectory ---

type MockAccountDirectory struct {
	mock.Mock
}

var _ portssvc.AccountDirectory = (*MockAccountDirectory)(nil)

func (m *MockAccountDirectory) Lookup(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountDirectory) ListActive(ctx context.Context, typeFilter *domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, typeFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock PeriodGuard ---

type MockPeriodGuard struct {
	mock.Mock
}

var _ portssvc.PeriodGuard = (*MockPeriodGuard)(nil)

func (m *MockPeriodGuard) CheckPostable(ctx context.Context, date time.Time) (domain.PeriodCheck, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.PeriodCheck), args.Error(1)
}

// --- Mock ApprovalSvcFacade ---

type MockApprovalSvc struct {
	mock.Mock
}

var _ portssvc.ApprovalSvcFacade = (*MockApprovalSvc)(nil)

func (m *MockApprovalSvc) RequiresApproval(txn domain.Transaction) bool {
	args := m.Called(txn)
	return args.Bool(0)
}

func (m *MockApprovalSvc) RequestApproval(ctx context.Context, transactionID, requestedBy, note string) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, transactionID, requestedBy, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}

func (m *MockApprovalSvc) Decide(ctx context.Context, requestID string, approverID string, decision domain.ApprovalDecision) (*domain.ApprovalRequest, error) {
	args := m.Called(ctx, requestID, approverID, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRequest), args.Error(1)
}

func (m *MockApprovalSvc) HasApproval(ctx context.Context, transactionID string) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

// --- Noop Notifier ---

// noopNotifier swallows events; delivery is irrelevant to the assertions.
type noopNotifier struct{}

var _ portssvc.Notifier = (*noopNotifier)(nil)

func (noopNotifier) Notify(ctx context.Context, event string, payload map[string]any) {}

// --- Helpers ---

func strPtr(s string) *string {
	return &s
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func openPeriodCheck() domain.PeriodCheck {
	return domain.PeriodCheck{State: domain.PeriodOpen, PeriodName: "2024-03"}
}
