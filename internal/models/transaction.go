package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction maps the transactions table.
type Transaction struct {
	TransactionID    string
	Number           string
	Kind             string
	TransactionDate  time.Time
	EffectiveDate    time.Time
	Amount           decimal.Decimal
	PrimaryAccountID string
	CounterAccountID *string
	BankAccountID    *string
	Description      string
	RelatedParty     string
	ReferenceNumber  string
	Status           string
	JournalID        *string
	PostedAt         *time.Time
	PostedBy         string
	ReconciledAt     *time.Time

	InstrumentNumber    string
	InstrumentDueDate   *time.Time
	InstrumentStatus    string
	SettlementJournalID *string

	Notes string
	AuditFields
}

// ApprovalRequest maps the approval_requests table.
type ApprovalRequest struct {
	RequestID     string
	TransactionID string
	RequestedBy   string
	Note          string
	Status        string
	DecidedBy     string
	DecidedAt     *time.Time
	AuditFields
}

// Period maps the accounting_periods table.
type Period struct {
	PeriodID string
	Year     int
	Month    int
	Name     string
	State    string
	ClosedAt *time.Time
	AuditFields
}
