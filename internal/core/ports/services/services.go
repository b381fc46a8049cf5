package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wiradata/treasury_app/internal/core/domain"
	"github.com/wiradata/treasury_app/internal/dto"
)

// TransactionSvcFacade exposes the treasury transaction lifecycle (create,
// read, draft-only mutation, reconciliation).
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
	ReconcileTransactions(ctx context.Context, transactionIDs []string, reconcileDate time.Time, userID string) error
}

// PostingSvcFacade is the journal posting engine.
type PostingSvcFacade interface {
	// PostTransaction converts one draft into a balanced two-line journal and
	// flips its status, atomically.
	PostTransaction(ctx context.Context, transactionID, counterAccountID, revisionReason, actorID string) (*domain.Journal, error)

	// PostBatch posts each item in its own atomic unit; one failure never
	// rolls back the others.
	PostBatch(ctx context.Context, items []dto.PostBatchItem, revisionReason, actorID string) (dto.PostBatchResult, error)
}

// GiroSvcFacade drives the giro instrument state machine past receipt posting.
type GiroSvcFacade interface {
	ClearGiro(ctx context.Context, transactionID string, clearDate time.Time, actorID string) (*domain.Journal, error)
	RejectGiro(ctx context.Context, transactionID string, reason string, actorID string) error
}

// ApprovalSvcFacade is the approval gate in front of the posting engine.
type ApprovalSvcFacade interface {
	// RequiresApproval evaluates the configured approval predicate.
	RequiresApproval(txn domain.Transaction) bool
	RequestApproval(ctx context.Context, transactionID, requestedBy, note string) (*domain.ApprovalRequest, error)
	Decide(ctx context.Context, requestID string, approverID string, decision domain.ApprovalDecision) (*domain.ApprovalRequest, error)
	// HasApproval reports whether the transaction carries an approved request.
	HasApproval(ctx context.Context, transactionID string) (bool, error)
}

// BalanceSvcFacade recomputes bank running balances from posted ledger lines.
type BalanceSvcFacade interface {
	GetBankAccount(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	RecomputeBalance(ctx context.Context, bankAccountID string, actorID string) (decimal.Decimal, error)
}

// JournalSvcFacade exposes read access to journals produced by posting.
type JournalSvcFacade interface {
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
}
