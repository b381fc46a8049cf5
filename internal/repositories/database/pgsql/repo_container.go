package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	sequenceRepo := newPgxSequenceRepository(dbPool)
	bankAccountRepo := newPgxBankAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, sequenceRepo)
	journalRepo := newPgxJournalRepository(dbPool, bankAccountRepo, sequenceRepo)
	approvalRepo := newPgxApprovalRepository(dbPool)
	periodRepo := newPgxPeriodRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		BankAccountRepo: bankAccountRepo,
		TransactionRepo: transactionRepo,
		JournalRepo:     journalRepo,
		ApprovalRepo:    approvalRepo,
		PeriodRepo:      periodRepo,
		SequenceRepo:    sequenceRepo,
	}
}
