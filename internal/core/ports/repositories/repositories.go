package repositories

// RepositoryProvider bundles every repository implementation for wiring.
type RepositoryProvider struct {
	AccountRepo     AccountReader
	BankAccountRepo BankAccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	JournalRepo     JournalRepositoryWithTx
	ApprovalRepo    ApprovalRepository
	PeriodRepo      PeriodRepository
	SequenceRepo    SequenceRepository
}
