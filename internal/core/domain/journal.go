package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether a journal line is a Debit or a Credit.
type Direction string

const (
	Debit  Direction = "DEBIT"
	Credit Direction = "CREDIT"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	JournalDraft  JournalStatus = "DRAFT"
	JournalPosted JournalStatus = "POSTED"
)

// SourceKind identifies which treasury operation produced a journal.
type SourceKind string

const (
	SourceCashTransaction SourceKind = "CASH_TRANSACTION"
	SourceBankTransaction SourceKind = "BANK_TRANSACTION"
	SourceGiroReceipt     SourceKind = "GIRO_RECEIPT"
	SourceGiroClearing    SourceKind = "GIRO_CLEARING"
	SourceGiroReversal    SourceKind = "GIRO_REVERSAL"
)

// JournalNumberPrefix scopes journal number sequences.
const JournalNumberPrefix = "JRN"

// Journal represents a balanced double-entry record produced by posting a
// treasury transaction. TotalDebit must always equal TotalCredit.
type Journal struct {
	JournalID   string          `json:"journalID"` // Primary Key (UUID)
	Number      string          `json:"number"`    // Human-readable, unique, e.g. JRN/2024/03/0001
	JournalDate time.Time       `json:"journalDate"`
	Description string          `json:"description"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Status      JournalStatus   `json:"status"`
	SourceKind  SourceKind      `json:"sourceKind"`
	SourceID    string          `json:"sourceID"` // FK -> transactions.transaction_id
	PostedAt    *time.Time      `json:"postedAt,omitempty"`
	PostedBy    string          `json:"postedBy,omitempty"`
	AuditFields

	// Lines is populated on demand; persistence manages it separately.
	Lines []JournalLine `json:"lines,omitempty"`
}

// JournalLine is a single side of a journal. Exactly one of Debit/Credit is
// nonzero; the posting engine always emits paired single-sided lines.
type JournalLine struct {
	LineID      string          `json:"lineID"`    // Primary Key (UUID)
	JournalID   string          `json:"journalID"` // FK -> Journal.journalID
	AccountID   string          `json:"accountID"` // FK -> Account.accountID
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	AuditFields
}

// IsSingleSided reports whether exactly one of Debit/Credit is set, with a
// positive amount on the set side.
func (l JournalLine) IsSingleSided() bool {
	debitSet := l.Debit.IsPositive()
	creditSet := l.Credit.IsPositive()
	if debitSet == creditSet {
		return false
	}
	return l.Debit.GreaterThanOrEqual(decimal.Zero) && l.Credit.GreaterThanOrEqual(decimal.Zero)
}

// Balanced reports whether the journal's lines sum to equal debit and credit
// totals matching the header.
func (j Journal) Balanced() bool {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, l := range j.Lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits.Equal(credits) && debits.Equal(j.TotalDebit) && credits.Equal(j.TotalCredit)
}
