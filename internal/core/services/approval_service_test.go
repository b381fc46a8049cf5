package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
	"github.com/wiradata/treasury_app/internal/core/services"
)

func TestRequiresApproval(t *testing.T) {
	txn := func(kind domain.TransactionKind, amount int64) domain.Transaction {
		return domain.Transaction{Kind: kind, Amount: decimal.NewFromInt(amount)}
	}

	tests := []struct {
		name  string
		rules services.ApprovalRuleConfig
		txn   domain.Transaction
		want  bool
	}{
		{
			name:  "disabled gate never requires approval",
			rules: services.ApprovalRuleConfig{Enabled: false, AmountThreshold: decimal.NewFromInt(1)},
			txn:   txn(domain.Disbursement, 1000000),
			want:  false,
		},
		{
			name:  "enabled without threshold or kinds gates everything",
			rules: services.ApprovalRuleConfig{Enabled: true},
			txn:   txn(domain.Receipt, 1),
			want:  true,
		},
		{
			name:  "amount below threshold",
			rules: services.ApprovalRuleConfig{Enabled: true, AmountThreshold: decimal.NewFromInt(10000)},
			txn:   txn(domain.Disbursement, 9999),
			want:  false,
		},
		{
			name:  "amount at threshold",
			rules: services.ApprovalRuleConfig{Enabled: true, AmountThreshold: decimal.NewFromInt(10000)},
			txn:   txn(domain.Disbursement, 10000),
			want:  true,
		},
		{
			name: "kind outside the gated set",
			rules: services.ApprovalRuleConfig{
				Enabled: true,
				Kinds:   map[domain.TransactionKind]bool{domain.Disbursement: true},
			},
			txn:  txn(domain.Receipt, 1000000),
			want: false,
		},
		{
			name: "gated kind over threshold",
			rules: services.ApprovalRuleConfig{
				Enabled:         true,
				AmountThreshold: decimal.NewFromInt(5000),
				Kinds:           map[domain.TransactionKind]bool{domain.Disbursement: true, domain.TransferOut: true},
			},
			txn:  txn(domain.TransferOut, 7500),
			want: true,
		},
		{
			name: "gated kind under threshold",
			rules: services.ApprovalRuleConfig{
				Enabled:         true,
				AmountThreshold: decimal.NewFromInt(5000),
				Kinds:           map[domain.TransactionKind]bool{domain.Disbursement: true},
			},
			txn:  txn(domain.Disbursement, 100),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := services.NewApprovalService(new(MockApprovalRepository), new(MockTransactionRepository), tt.rules)
			assert.Equal(t, tt.want, svc.RequiresApproval(tt.txn))
		})
	}
}

type ApprovalServiceTestSuite struct {
	suite.Suite
	mockApprovalRepo *MockApprovalRepository
	mockTxnRepo      *MockTransactionRepository
	service          portssvc.ApprovalSvcFacade

	requesterID string
	approverID  string
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.mockApprovalRepo = new(MockApprovalRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewApprovalService(suite.mockApprovalRepo, suite.mockTxnRepo, services.ApprovalRuleConfig{Enabled: true})

	suite.requesterID = uuid.NewString()
	suite.approverID = uuid.NewString()
}

func (suite *ApprovalServiceTestSuite) pendingRequest() *domain.ApprovalRequest {
	return &domain.ApprovalRequest{
		RequestID:     uuid.NewString(),
		TransactionID: uuid.NewString(),
		RequestedBy:   suite.requesterID,
		Status:        domain.ApprovalPending,
	}
}

func (suite *ApprovalServiceTestSuite) TestRequestApproval_Success() {
	ctx := context.Background()
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          domain.Disbursement,
		Amount:        decimal.NewFromInt(50000),
		Status:        domain.StatusDraft,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockApprovalRepo.On("SaveApprovalRequest", ctx, mock.AnythingOfType("domain.ApprovalRequest")).Return(nil).Once()

	req, err := suite.service.RequestApproval(ctx, txn.TransactionID, suite.requesterID, "large vendor payment")

	suite.Require().NoError(err)
	suite.Require().NotNil(req)
	suite.NotEmpty(req.RequestID)
	suite.Equal(txn.TransactionID, req.TransactionID)
	suite.Equal(suite.requesterID, req.RequestedBy)
	suite.Equal(domain.ApprovalPending, req.Status)
	suite.Equal("large vendor payment", req.Note)
	suite.mockApprovalRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestRequestApproval_NotDraft() {
	ctx := context.Background()
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Status:        domain.StatusPosted,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	_, err := suite.service.RequestApproval(ctx, txn.TransactionID, suite.requesterID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNotDraft)
	suite.mockApprovalRepo.AssertNotCalled(suite.T(), "SaveApprovalRequest", mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestRequestApproval_ConcurrentStatusChange() {
	ctx := context.Background()
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Status:        domain.StatusDraft,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockApprovalRepo.On("SaveApprovalRequest", ctx, mock.Anything).Return(apperrors.ErrConflict).Once()

	_, err := suite.service.RequestApproval(ctx, txn.TransactionID, suite.requesterID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNotDraft)
}

func (suite *ApprovalServiceTestSuite) TestRequestApproval_DuplicatePending() {
	ctx := context.Background()
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Status:        domain.StatusDraft,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockApprovalRepo.On("SaveApprovalRequest", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.RequestApproval(ctx, txn.TransactionID, suite.requesterID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ApprovalServiceTestSuite) TestDecide_Approve() {
	ctx := context.Background()
	req := suite.pendingRequest()

	suite.mockApprovalRepo.On("FindApprovalRequestByID", ctx, req.RequestID).Return(req, nil).Once()
	suite.mockApprovalRepo.On("DecideApprovalRequest", ctx, req.RequestID, domain.ApprovalApproved, suite.approverID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	decided, err := suite.service.Decide(ctx, req.RequestID, suite.approverID, domain.DecisionApprove)

	suite.Require().NoError(err)
	suite.Require().NotNil(decided)
	suite.Equal(domain.ApprovalApproved, decided.Status)
	suite.Equal(suite.approverID, decided.DecidedBy)
	suite.NotNil(decided.DecidedAt)
	suite.mockApprovalRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestDecide_Reject() {
	ctx := context.Background()
	req := suite.pendingRequest()

	suite.mockApprovalRepo.On("FindApprovalRequestByID", ctx, req.RequestID).Return(req, nil).Once()
	suite.mockApprovalRepo.On("DecideApprovalRequest", ctx, req.RequestID, domain.ApprovalRejected, suite.approverID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	decided, err := suite.service.Decide(ctx, req.RequestID, suite.approverID, domain.DecisionReject)

	suite.Require().NoError(err)
	suite.Equal(domain.ApprovalRejected, decided.Status)
}

func (suite *ApprovalServiceTestSuite) TestDecide_InvalidDecision() {
	ctx := context.Background()

	_, err := suite.service.Decide(ctx, uuid.NewString(), suite.approverID, domain.ApprovalDecision("MAYBE"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockApprovalRepo.AssertNotCalled(suite.T(), "FindApprovalRequestByID", mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestDecide_SelfApproval() {
	ctx := context.Background()
	req := suite.pendingRequest()

	suite.mockApprovalRepo.On("FindApprovalRequestByID", ctx, req.RequestID).Return(req, nil).Once()

	_, err := suite.service.Decide(ctx, req.RequestID, suite.requesterID, domain.DecisionApprove)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSelfApproval)
	suite.mockApprovalRepo.AssertNotCalled(suite.T(), "DecideApprovalRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestDecide_AlreadyDecided() {
	ctx := context.Background()
	req := suite.pendingRequest()
	req.Status = domain.ApprovalApproved

	suite.mockApprovalRepo.On("FindApprovalRequestByID", ctx, req.RequestID).Return(req, nil).Once()

	_, err := suite.service.Decide(ctx, req.RequestID, suite.approverID, domain.DecisionReject)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrApprovalNotPending)
}

func (suite *ApprovalServiceTestSuite) TestDecide_ConcurrentDecision() {
	ctx := context.Background()
	req := suite.pendingRequest()

	suite.mockApprovalRepo.On("FindApprovalRequestByID", ctx, req.RequestID).Return(req, nil).Once()
	suite.mockApprovalRepo.On("DecideApprovalRequest", ctx, req.RequestID, domain.ApprovalApproved, suite.approverID, mock.Anything).Return(apperrors.ErrConflict).Once()

	_, err := suite.service.Decide(ctx, req.RequestID, suite.approverID, domain.DecisionApprove)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrApprovalNotPending)
}

func (suite *ApprovalServiceTestSuite) TestHasApproval() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockApprovalRepo.On("HasApprovedRequest", ctx, transactionID).Return(true, nil).Once()

	approved, err := suite.service.HasApproval(ctx, transactionID)

	suite.Require().NoError(err)
	suite.True(approved)
}

func TestApprovalService(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
