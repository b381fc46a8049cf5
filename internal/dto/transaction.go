package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

// CreateTransactionRequest is the payload for creating a draft transaction.
type CreateTransactionRequest struct {
	Kind             string          `json:"kind" binding:"required,txnkind"`
	TransactionDate  time.Time       `json:"transactionDate" binding:"required"`
	EffectiveDate    *time.Time      `json:"effectiveDate,omitempty"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	PrimaryAccountID string          `json:"primaryAccountID" binding:"required,uuid"`
	BankAccountID    *string         `json:"bankAccountID,omitempty" binding:"omitempty,uuid"`
	Description      string          `json:"description" binding:"required"`
	RelatedParty     string          `json:"relatedParty,omitempty"`
	ReferenceNumber  string          `json:"referenceNumber,omitempty"`

	// Giro instrument fields; required when kind is CLEARING_IN/CLEARING_OUT.
	InstrumentNumber  string     `json:"instrumentNumber,omitempty"`
	InstrumentDueDate *time.Time `json:"instrumentDueDate,omitempty"`

	// RevisionReason justifies creating into a soft-closed period.
	RevisionReason string `json:"revisionReason,omitempty"`
}

// UpdateTransactionRequest carries the mutable fields of a draft.
type UpdateTransactionRequest struct {
	TransactionDate *time.Time       `json:"transactionDate,omitempty"`
	EffectiveDate   *time.Time       `json:"effectiveDate,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Description     *string          `json:"description,omitempty"`
	RelatedParty    *string          `json:"relatedParty,omitempty"`
	ReferenceNumber *string          `json:"referenceNumber,omitempty"`
	RevisionReason  string           `json:"revisionReason,omitempty"`
}

// PostTransactionRequest asks the posting engine to post one draft.
type PostTransactionRequest struct {
	CounterAccountID string `json:"counterAccountID" binding:"required,uuid"`
	RevisionReason   string `json:"revisionReason,omitempty"`
}

// PostBatchItem is one entry of a batch posting request.
type PostBatchItem struct {
	TransactionID    string `json:"transactionID" binding:"required,uuid"`
	CounterAccountID string `json:"counterAccountID" binding:"required,uuid"`
}

// PostBatchRequest posts several drafts, each in its own atomic unit.
type PostBatchRequest struct {
	Items          []PostBatchItem `json:"items" binding:"required,min=1,dive"`
	RevisionReason string          `json:"revisionReason,omitempty"`
}

// PostBatchFailure reports one item that could not be posted.
type PostBatchFailure struct {
	TransactionID string `json:"transactionID"`
	Reason        string `json:"reason"`
}

// PostBatchResult summarizes a batch posting run.
type PostBatchResult struct {
	PostedCount int                `json:"postedCount"`
	Failures    []PostBatchFailure `json:"failures"`
}

// ReconcileRequest marks a set of posted transactions reconciled.
type ReconcileRequest struct {
	TransactionIDs []string  `json:"transactionIDs" binding:"required,min=1,dive,uuid"`
	ReconcileDate  time.Time `json:"reconcileDate" binding:"required"`
}

// ClearGiroRequest settles a posted giro instrument against its bank account.
type ClearGiroRequest struct {
	ClearDate time.Time `json:"clearDate" binding:"required"`
}

// RejectGiroRequest dishonors a giro instrument.
type RejectGiroRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// TransactionResponse is the API representation of a transaction.
type TransactionResponse struct {
	TransactionID    string          `json:"transactionID"`
	Number           string          `json:"number"`
	Kind             string          `json:"kind"`
	TransactionDate  time.Time       `json:"transactionDate"`
	EffectiveDate    time.Time       `json:"effectiveDate"`
	Amount           decimal.Decimal `json:"amount"`
	PrimaryAccountID string          `json:"primaryAccountID"`
	CounterAccountID *string         `json:"counterAccountID,omitempty"`
	BankAccountID    *string         `json:"bankAccountID,omitempty"`
	Description      string          `json:"description"`
	RelatedParty     string          `json:"relatedParty,omitempty"`
	ReferenceNumber  string          `json:"referenceNumber,omitempty"`
	Status           string          `json:"status"`
	JournalID        *string         `json:"journalID,omitempty"`
	PostedAt         *time.Time      `json:"postedAt,omitempty"`
	PostedBy         string          `json:"postedBy,omitempty"`
	ReconciledAt     *time.Time      `json:"reconciledAt,omitempty"`
	InstrumentNumber string          `json:"instrumentNumber,omitempty"`
	InstrumentStatus string          `json:"instrumentStatus,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to its API shape.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    t.TransactionID,
		Number:           t.Number,
		Kind:             string(t.Kind),
		TransactionDate:  t.TransactionDate,
		EffectiveDate:    t.EffectiveDate,
		Amount:           t.Amount,
		PrimaryAccountID: t.PrimaryAccountID,
		CounterAccountID: t.CounterAccountID,
		BankAccountID:    t.BankAccountID,
		Description:      t.Description,
		RelatedParty:     t.RelatedParty,
		ReferenceNumber:  t.ReferenceNumber,
		Status:           string(t.Status),
		JournalID:        t.JournalID,
		PostedAt:         t.PostedAt,
		PostedBy:         t.PostedBy,
		ReconciledAt:     t.ReconciledAt,
		InstrumentNumber: t.InstrumentNumber,
		InstrumentStatus: string(t.InstrumentStatus),
		Notes:            t.Notes,
		CreatedAt:        t.CreatedAt,
		CreatedBy:        t.CreatedBy,
	}
}
