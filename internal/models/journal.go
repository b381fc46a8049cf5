package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal maps the journals table.
type Journal struct {
	JournalID   string
	Number      string
	JournalDate time.Time
	Description string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Status      string
	SourceKind  string
	SourceID    string
	PostedAt    *time.Time
	PostedBy    string
	AuditFields
}

// JournalLine maps the journal_lines table.
type JournalLine struct {
	LineID      string
	JournalID   string
	AccountID   string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	AuditFields
}
