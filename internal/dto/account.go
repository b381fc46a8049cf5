package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

// AccountResponse is the API representation of a chart-of-accounts entry.
type AccountResponse struct {
	AccountID     string `json:"accountID"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	AccountType   string `json:"accountType"`
	NormalBalance string `json:"normalBalance"`
	IsActive      bool   `json:"isActive"`
}

// ToAccountResponse converts a domain.Account to its API shape.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     a.AccountID,
		Code:          a.Code,
		Name:          a.Name,
		AccountType:   string(a.AccountType),
		NormalBalance: string(a.NormalBalance),
		IsActive:      a.IsActive,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}

// BankAccountResponse is the API representation of a bank account.
type BankAccountResponse struct {
	BankAccountID  string          `json:"bankAccountID"`
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	AccountNumber  string          `json:"accountNumber"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	IsActive       bool            `json:"isActive"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToBankAccountResponse converts a domain.BankAccount to its API shape.
func ToBankAccountResponse(b *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID:  b.BankAccountID,
		AccountID:      b.AccountID,
		Name:           b.Name,
		AccountNumber:  b.AccountNumber,
		OpeningBalance: b.OpeningBalance,
		RunningBalance: b.RunningBalance,
		IsActive:       b.IsActive,
		LastUpdatedAt:  b.LastUpdatedAt,
	}
}
