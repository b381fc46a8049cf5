package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
	"github.com/wiradata/treasury_app/internal/core/services"
	"github.com/wiradata/treasury_app/internal/dto"
)

type PostingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockJournalRepo *MockJournalRepository
	mockDirectory   *MockAccountDirectory
	mockApprovals   *MockApprovalSvc
	mockPeriodGuard *MockPeriodGuard
	service         portssvc.PostingSvcFacade

	primaryAccountID string
	counterAccountID string
	actorID          string
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockDirectory = new(MockAccountDirectory)
	suite.mockApprovals = new(MockApprovalSvc)
	suite.mockPeriodGuard = new(MockPeriodGuard)
	suite.service = services.NewPostingService(
		suite.mockTxnRepo,
		suite.mockJournalRepo,
		suite.mockDirectory,
		suite.mockApprovals,
		suite.mockPeriodGuard,
		noopNotifier{},
		10,
	)

	suite.primaryAccountID = uuid.NewString()
	suite.counterAccountID = uuid.NewString()
	suite.actorID = uuid.NewString()
}

func (suite *PostingServiceTestSuite) draftTransaction(kind domain.TransactionKind) *domain.Transaction {
	return &domain.Transaction{
		TransactionID:    uuid.NewString(),
		Number:           "CSH/2024/03/0001",
		Kind:             kind,
		TransactionDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		EffectiveDate:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Amount:           decimal.NewFromInt(1000),
		PrimaryAccountID: suite.primaryAccountID,
		Description:      "test transaction",
		Status:           domain.StatusDraft,
	}
}

func (suite *PostingServiceTestSuite) activeCounterAccount() *domain.Account {
	return &domain.Account{
		AccountID:     suite.counterAccountID,
		Code:          "4-1010",
		AccountType:   domain.Revenue,
		NormalBalance: domain.Credit,
		IsActive:      true,
	}
}

func (suite *PostingServiceTestSuite) TestPostTransaction_Receipt_DebitsPrimary() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockDirectory.On("Lookup", ctx, suite.counterAccountID).Return(suite.activeCounterAccount(), nil).Once()
	suite.mockPeriodGuard.On("CheckPostable", ctx, txn.TransactionDate).Return(openPeriodCheck(), nil).Once()
	suite.mockApprovals.On("RequiresApproval", *txn).Return(false).Once()

	var capturedJournal domain.Journal
	var capturedLines []domain.JournalLine
	suite.mockJournalRepo.On("PostTransaction", ctx, txn.TransactionID, mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.JournalLine")).
		Run(func(args mock.Arguments) {
			capturedJournal = args.Get(2).(domain.Journal)
			capturedLines = args.Get(3).([]domain.JournalLine)
		}).
		Return(&domain.Journal{JournalID: "posted-id", Number: "JRN/2024/03/0001"}, nil).Once()

	posted, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(posted)
	suite.Equal("JRN/2024/03/0001", posted.Number)

	suite.Equal(domain.JournalPosted, capturedJournal.Status)
	suite.Equal(domain.SourceCashTransaction, capturedJournal.SourceKind)
	suite.Equal(txn.TransactionID, capturedJournal.SourceID)
	suite.True(capturedJournal.TotalDebit.Equal(txn.Amount))
	suite.True(capturedJournal.TotalCredit.Equal(txn.Amount))

	// A receipt is an inflow: debit the primary account, credit the counter.
	suite.Require().Len(capturedLines, 2)
	suite.Equal(suite.primaryAccountID, capturedLines[0].AccountID)
	suite.True(capturedLines[0].Debit.Equal(txn.Amount))
	suite.Equal(suite.counterAccountID, capturedLines[1].AccountID)
	suite.True(capturedLines[1].Credit.Equal(txn.Amount))

	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockApprovals.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostTransaction_Disbursement_CreditsPrimary() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Disbursement)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockDirectory.On("Lookup", ctx, suite.counterAccountID).Return(suite.activeCounterAccount(), nil).Once()
	suite.mockPeriodGuard.On("CheckPostable", ctx, txn.TransactionDate).Return(openPeriodCheck(), nil).Once()
	suite.mockApprovals.On("RequiresApproval", *txn).Return(false).Once()

	var capturedLines []domain.JournalLine
	suite.mockJournalRepo.On("PostTransaction", ctx, txn.TransactionID, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedLines = args.Get(3).([]domain.JournalLine)
		}).
		Return(&domain.Journal{JournalID: "posted-id"}, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(capturedLines, 2)
	// An outflow swaps the sides: debit counter, credit primary.
	suite.Equal(suite.counterAccountID, capturedLines[0].AccountID)
	suite.True(capturedLines[0].Debit.Equal(txn.Amount))
	suite.Equal(suite.primaryAccountID, capturedLines[1].AccountID)
	suite.True(capturedLines[1].Credit.Equal(txn.Amount))
}

func (suite *PostingServiceTestSuite) TestPostTransaction_UsesStoredCounterAccount() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)
	txn.CounterAccountID = strPtr(suite.counterAccountID)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockDirectory.On("Lookup", ctx, suite.counterAccountID).Return(suite.activeCounterAccount(), nil).Once()
	suite.mockPeriodGuard.On("CheckPostable", ctx, txn.TransactionDate).Return(openPeriodCheck(), nil).Once()
	suite.mockApprovals.On("RequiresApproval", *txn).Return(false).Once()
	suite.mockJournalRepo.On("PostTransaction", ctx, txn.TransactionID, mock.Anything, mock.Anything).
		Return(&domain.Journal{JournalID: "posted-id"}, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, "", "", suite.actorID)

	suite.Require().NoError(err)
	suite.mockDirectory.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostTransaction_NoCounterAccountAnywhere() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, "", "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_AlreadyPosted() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)
	txn.Status = domain.StatusPosted
	txn.JournalID = strPtr("existing-journal")

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAlreadyPosted)
	suite.Contains(err.Error(), "existing-journal")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "PostTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_Reconciled() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)
	txn.Status = domain.StatusReconciled

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAlreadyPosted)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_PendingApproval() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)
	txn.Status = domain.StatusPendingApproval

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrApprovalRequired)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_RejectedStatus() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.ClearingIn)
	txn.Status = domain.StatusRejected

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNotDraft)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_SameAccount() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.primaryAccountID, "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSameAccount)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_InactiveCounterAccount() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)
	inactive := suite.activeCounterAccount()
	inactive.IsActive = false

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockDirectory.On("Lookup", ctx, suite.counterAccountID).Return(inactive, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_CounterAccountUnknown() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockDirectory.On("Lookup", ctx, suite.counterAccountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_PeriodHardClosed() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockDirectory.On("Lookup", ctx, suite.counterAccountID).Return(suite.activeCounterAccount(), nil).Once()
	suite.mockPeriodGuard.On("CheckPostable", ctx, txn.TransactionDate).
		Return(domain.PeriodCheck{State: domain.PeriodHardClosed, PeriodName: "2024-03"}, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPeriodClosed)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "PostTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_SoftClosedNeedsReason() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)
	softClosed := domain.PeriodCheck{State: domain.PeriodSoftClosed, PeriodName: "2024-03", RequiresReason: true}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil)
	suite.mockDirectory.On("Lookup", ctx, suite.counterAccountID).Return(suite.activeCounterAccount(), nil)
	suite.mockPeriodGuard.On("CheckPostable", ctx, txn.TransactionDate).Return(softClosed, nil)

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)
	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrRevisionReasonRequired)

	// Too short a reason still fails against the 10-character minimum.
	_, err = suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "oops", suite.actorID)
	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrRevisionReasonRequired)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_SoftClosedWithReason() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)
	softClosed := domain.PeriodCheck{State: domain.PeriodSoftClosed, PeriodName: "2024-03", RequiresReason: true}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockDirectory.On("Lookup", ctx, suite.counterAccountID).Return(suite.activeCounterAccount(), nil).Once()
	suite.mockPeriodGuard.On("CheckPostable", ctx, txn.TransactionDate).Return(softClosed, nil).Once()
	suite.mockApprovals.On("RequiresApproval", *txn).Return(false).Once()
	suite.mockJournalRepo.On("PostTransaction", ctx, txn.TransactionID, mock.Anything, mock.Anything).
		Return(&domain.Journal{JournalID: "posted-id"}, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "late vendor invoice arrived", suite.actorID)

	suite.Require().NoError(err)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_ApprovalRequiredAndMissing() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Disbursement)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockDirectory.On("Lookup", ctx, suite.counterAccountID).Return(suite.activeCounterAccount(), nil).Once()
	suite.mockPeriodGuard.On("CheckPostable", ctx, txn.TransactionDate).Return(openPeriodCheck(), nil).Once()
	suite.mockApprovals.On("RequiresApproval", *txn).Return(true).Once()
	suite.mockApprovals.On("HasApproval", ctx, txn.TransactionID).Return(false, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrApprovalRequired)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "PostTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_ApprovalSatisfied() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Disbursement)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockDirectory.On("Lookup", ctx, suite.counterAccountID).Return(suite.activeCounterAccount(), nil).Once()
	suite.mockPeriodGuard.On("CheckPostable", ctx, txn.TransactionDate).Return(openPeriodCheck(), nil).Once()
	suite.mockApprovals.On("RequiresApproval", *txn).Return(true).Once()
	suite.mockApprovals.On("HasApproval", ctx, txn.TransactionID).Return(true, nil).Once()
	suite.mockJournalRepo.On("PostTransaction", ctx, txn.TransactionID, mock.Anything, mock.Anything).
		Return(&domain.Journal{JournalID: "posted-id"}, nil).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)

	suite.Require().NoError(err)
	suite.mockApprovals.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostTransaction_ConcurrentPostConflict() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockDirectory.On("Lookup", ctx, suite.counterAccountID).Return(suite.activeCounterAccount(), nil).Once()
	suite.mockPeriodGuard.On("CheckPostable", ctx, txn.TransactionDate).Return(openPeriodCheck(), nil).Once()
	suite.mockApprovals.On("RequiresApproval", *txn).Return(false).Once()
	suite.mockJournalRepo.On("PostTransaction", ctx, txn.TransactionID, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrConflict).Once()

	_, err := suite.service.PostTransaction(ctx, txn.TransactionID, suite.counterAccountID, "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAlreadyPosted)
}

func (suite *PostingServiceTestSuite) TestPostBatch_PartialFailure() {
	ctx := context.Background()
	good := suite.draftTransaction(domain.Receipt)
	bad := suite.draftTransaction(domain.Receipt)
	bad.Status = domain.StatusPosted

	suite.mockTxnRepo.On("FindTransactionByID", ctx, good.TransactionID).Return(good, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, bad.TransactionID).Return(bad, nil).Once()
	suite.mockDirectory.On("Lookup", ctx, suite.counterAccountID).Return(suite.activeCounterAccount(), nil).Once()
	suite.mockPeriodGuard.On("CheckPostable", ctx, good.TransactionDate).Return(openPeriodCheck(), nil).Once()
	suite.mockApprovals.On("RequiresApproval", *good).Return(false).Once()
	suite.mockJournalRepo.On("PostTransaction", ctx, good.TransactionID, mock.Anything, mock.Anything).
		Return(&domain.Journal{JournalID: "posted-id"}, nil).Once()

	result, err := suite.service.PostBatch(ctx, []dto.PostBatchItem{
		{TransactionID: good.TransactionID, CounterAccountID: suite.counterAccountID},
		{TransactionID: bad.TransactionID, CounterAccountID: suite.counterAccountID},
	}, "", suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(1, result.PostedCount)
	suite.Require().Len(result.Failures, 1)
	suite.Equal(bad.TransactionID, result.Failures[0].TransactionID)
	suite.Contains(result.Failures[0].Reason, "already posted")
}

func (suite *PostingServiceTestSuite) TestPostBatch_AllFail() {
	ctx := context.Background()
	txn := suite.draftTransaction(domain.Receipt)
	txn.Status = domain.StatusReconciled

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	result, err := suite.service.PostBatch(ctx, []dto.PostBatchItem{
		{TransactionID: txn.TransactionID, CounterAccountID: suite.counterAccountID},
	}, "", suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(0, result.PostedCount)
	suite.Len(result.Failures, 1)
}

func TestPostingService(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
