package models

import "github.com/shopspring/decimal"

// Account maps the accounts table (read-only for this module).
type Account struct {
	AccountID     string
	Code          string
	Name          string
	AccountType   string
	NormalBalance string
	IsActive      bool
	AuditFields
}

// BankAccount maps the bank_accounts table.
type BankAccount struct {
	BankAccountID  string
	AccountID      string
	Name           string
	AccountNumber  string
	OpeningBalance decimal.Decimal
	RunningBalance decimal.Decimal
	IsActive       bool
	AuditFields
}
