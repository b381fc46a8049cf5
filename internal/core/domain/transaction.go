package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a treasury transaction. The same closed set is
// used for cash, bank and giro transactions; giro instruments use the
// CLEARING_* kinds.
type TransactionKind string

const (
	Receipt      TransactionKind = "RECEIPT"
	Disbursement TransactionKind = "DISBURSEMENT"
	TransferIn   TransactionKind = "TRANSFER_IN"
	TransferOut  TransactionKind = "TRANSFER_OUT"
	ClearingIn   TransactionKind = "CLEARING_IN"
	ClearingOut  TransactionKind = "CLEARING_OUT"
	Interest     TransactionKind = "INTEREST"
	AdminFee     TransactionKind = "ADMIN_FEE"
	Tax          TransactionKind = "TAX"
)

// Valid reports whether k is a known transaction kind.
func (k TransactionKind) Valid() bool {
	switch k {
	case Receipt, Disbursement, TransferIn, TransferOut, ClearingIn, ClearingOut, Interest, AdminFee, Tax:
		return true
	}
	return false
}

// IsInflow reports whether the kind increases the primary account's balance.
// Inflow kinds debit the primary account on posting; everything else credits it.
func (k TransactionKind) IsInflow() bool {
	switch k {
	case Receipt, TransferIn, ClearingIn, Interest:
		return true
	}
	return false
}

// IsGiro reports whether the kind belongs to a deferred giro/check instrument.
func (k TransactionKind) IsGiro() bool {
	return k == ClearingIn || k == ClearingOut
}

// TransactionStatus is the lifecycle state of a treasury transaction.
type TransactionStatus string

const (
	StatusDraft           TransactionStatus = "DRAFT"
	StatusPendingApproval TransactionStatus = "PENDING_APPROVAL"
	StatusPosted          TransactionStatus = "POSTED"
	StatusReconciled      TransactionStatus = "RECONCILED"
	StatusRejected        TransactionStatus = "REJECTED"
)

// InstrumentStatus is the giro instrument sub-state. Empty for cash/bank
// transactions. CLEARED and REJECTED are terminal.
type InstrumentStatus string

const (
	InstrumentNone     InstrumentStatus = ""
	InstrumentReceived InstrumentStatus = "RECEIVED"
	InstrumentCleared  InstrumentStatus = "CLEARED"
	InstrumentRejected InstrumentStatus = "REJECTED"
)

// Terminal reports whether no further instrument transitions are allowed.
func (s InstrumentStatus) Terminal() bool {
	return s == InstrumentCleared || s == InstrumentRejected
}

// Transaction is a cash, bank or giro treasury transaction. It starts life as
// a draft and is turned into a balanced journal by the posting engine.
type Transaction struct {
	TransactionID    string          `json:"transactionID"` // Primary Key (UUID)
	Number           string          `json:"number"`        // Human-readable, unique, e.g. BNK/2024/03/0001
	Kind             TransactionKind `json:"kind"`
	TransactionDate  time.Time       `json:"transactionDate"`
	EffectiveDate    time.Time       `json:"effectiveDate"`
	Amount           decimal.Decimal `json:"amount"`           // Always > 0
	PrimaryAccountID string          `json:"primaryAccountID"` // Ledger account of the cash box / bank / giro holding
	CounterAccountID *string         `json:"counterAccountID,omitempty"`
	BankAccountID    *string         `json:"bankAccountID,omitempty"` // Set for bank and giro transactions
	Description      string          `json:"description"`
	RelatedParty     string          `json:"relatedParty,omitempty"`
	ReferenceNumber  string          `json:"referenceNumber,omitempty"`
	Status           TransactionStatus
	JournalID        *string    `json:"journalID,omitempty"` // Posting journal, at most one
	PostedAt         *time.Time `json:"postedAt,omitempty"`
	PostedBy         string     `json:"postedBy,omitempty"`
	ReconciledAt     *time.Time `json:"reconciledAt,omitempty"`

	// Giro instrument lifecycle; zero values for cash/bank transactions.
	InstrumentNumber    string           `json:"instrumentNumber,omitempty"`
	InstrumentDueDate   *time.Time       `json:"instrumentDueDate,omitempty"`
	InstrumentStatus    InstrumentStatus `json:"instrumentStatus,omitempty"`
	SettlementJournalID *string          `json:"settlementJournalID,omitempty"` // Clearing or reversal journal

	Notes string `json:"notes,omitempty"`
	AuditFields
}

// IsGiro reports whether the transaction carries a giro instrument.
func (t Transaction) IsGiro() bool {
	return t.Kind.IsGiro()
}

// Editable reports whether the transaction may still be updated or deleted.
// Only drafts are mutable; a giro additionally locks once its instrument has
// left the RECEIVED state.
func (t Transaction) Editable() bool {
	if t.Status != StatusDraft {
		return false
	}
	if t.IsGiro() && t.InstrumentStatus != InstrumentReceived {
		return false
	}
	return true
}

// NumberPrefix returns the document-number prefix for the transaction's scope.
func (t Transaction) NumberPrefix() string {
	switch {
	case t.IsGiro():
		return "GIR"
	case t.BankAccountID != nil:
		return "BNK"
	default:
		return "CSH"
	}
}

// JournalSource returns the source kind recorded on the posting journal.
func (t Transaction) JournalSource() SourceKind {
	switch {
	case t.IsGiro():
		return SourceGiroReceipt
	case t.BankAccountID != nil:
		return SourceBankTransaction
	default:
		return SourceCashTransaction
	}
}
