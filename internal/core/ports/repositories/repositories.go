package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo       AccountRepositoryFacade
	TransactionRepo   TransactionRepositoryFacade
	InvestmentRepo    InvestmentRepositoryFacade
	RecurringRuleRepo RecurringRuleRepositoryFacade
	SettingRepo       SettingRepositoryFacade
	PriceHistoryRepo  PriceHistoryRepositoryFacade
	SnapshotRepo      SnapshotRepositoryFacade
	BackupRepo        BackupRepository
	Ledger            LedgerStore
}
