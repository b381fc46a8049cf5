package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	"github.com/wiradata/treasury_app/internal/models"
	"github.com/wiradata/treasury_app/internal/utils/mapping"
)

type PgxBankAccountRepository struct {
	BaseRepository
}

// newPgxBankAccountRepository creates a new repository for bank account data.
func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepositoryFacade {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx, so the balance
// recompute can run standalone or inside the posting engine's transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// FindBankAccountByID retrieves a bank account by its ID.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `
		SELECT bank_account_id, account_id, name, account_number,
		       opening_balance, running_balance, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM bank_accounts
		WHERE bank_account_id = $1;
	`
	var m models.BankAccount
	err := r.Pool.QueryRow(ctx, query, bankAccountID).Scan(
		&m.BankAccountID,
		&m.AccountID,
		&m.Name,
		&m.AccountNumber,
		&m.OpeningBalance,
		&m.RunningBalance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find bank account by ID "+bankAccountID, err)
	}

	bankAccount := mapping.ToDomainBankAccount(m)
	return &bankAccount, nil
}

// SaveBankAccount persists a new bank account.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, bankAccount domain.BankAccount) error {
	m := mapping.ToModelBankAccount(bankAccount)
	query := `
		INSERT INTO bank_accounts (
			bank_account_id, account_id, name, account_number,
			opening_balance, running_balance, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BankAccountID,
		m.AccountID,
		m.Name,
		m.AccountNumber,
		m.OpeningBalance,
		m.RunningBalance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert bank account "+m.BankAccountID, err)
	}
	return nil
}

// recalcBalanceQuery derives running_balance entirely from the ledger: the
// opening balance plus the signed sum of all POSTED journal lines on the bank
// account's ledger account. Running it twice in a row is a no-op.
const recalcBalanceQuery = `
	UPDATE bank_accounts b
	SET running_balance = b.opening_balance + COALESCE((
	        SELECT SUM(l.debit - l.credit)
	        FROM journal_lines l
	        JOIN journals j ON j.journal_id = l.journal_id
	        WHERE l.account_id = b.account_id
	          AND j.status = 'POSTED'
	    ), 0),
	    last_updated_at = $2,
	    last_updated_by = $3
	WHERE b.bank_account_id = $1
	RETURNING b.running_balance;
`

func recalculateBalance(ctx context.Context, q rowQuerier, bankAccountID string, userID string, now time.Time) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := q.QueryRow(ctx, recalcBalanceQuery, bankAccountID, now, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, apperrors.NewAppError(500, "failed to recalculate balance for bank account "+bankAccountID, err)
	}
	return balance, nil
}

// RecalculateBalance recomputes running_balance outside any caller transaction.
func (r *PgxBankAccountRepository) RecalculateBalance(ctx context.Context, bankAccountID string, userID string, now time.Time) (decimal.Decimal, error) {
	return recalculateBalance(ctx, r.Pool, bankAccountID, userID, now)
}

// RecalculateBalanceInTx recomputes running_balance within the given transaction.
func (r *PgxBankAccountRepository) RecalculateBalanceInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, userID string, now time.Time) (decimal.Decimal, error) {
	return recalculateBalance(ctx, tx, bankAccountID, userID, now)
}
