package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

// AccountReader defines read access to the chart of accounts. The treasury
// core never writes accounts; the chart belongs to the wider system.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListActiveAccounts retrieves active accounts, optionally filtered by type.
	ListActiveAccounts(ctx context.Context, typeFilter *domain.AccountType) ([]domain.Account, error)
}

// BankAccountReader defines read operations for bank account data.
type BankAccountReader interface {
	// FindBankAccountByID retrieves a bank account by its unique identifier.
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank account data.
type BankAccountWriter interface {
	// SaveBankAccount persists a new bank account.
	SaveBankAccount(ctx context.Context, bankAccount domain.BankAccount) error

	// RecalculateBalance recomputes running_balance from posted journal lines
	// plus the opening balance, and returns the new value. Idempotent.
	RecalculateBalance(ctx context.Context, bankAccountID string, userID string, now time.Time) (decimal.Decimal, error)
}

// BankAccountTransactionSupport defines balance operations usable inside an
// open database transaction (the posting engine's atomic unit).
type BankAccountTransactionSupport interface {
	// RecalculateBalanceInTx is RecalculateBalance within the given transaction.
	RecalculateBalanceInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, userID string, now time.Time) (decimal.Decimal, error)
}

// BankAccountRepositoryFacade combines all bank-account repository interfaces.
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
	BankAccountTransactionSupport
}
