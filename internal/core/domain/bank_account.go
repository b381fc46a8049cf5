package domain

import "github.com/shopspring/decimal"

// BankAccount links a physical bank account to its ledger account and caches
// a running balance. The cache is only ever written by full recomputation from
// posted journal lines, never by delta increments.
type BankAccount struct {
	BankAccountID  string          `json:"bankAccountID"` // Primary Key (UUID)
	AccountID      string          `json:"accountID"`     // FK -> Account.accountID (ledger account)
	Name           string          `json:"name"`          // e.g. "BCA Operational"
	AccountNumber  string          `json:"accountNumber"` // Bank-side account number
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
