package pgsql

import (
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	investmentRepo := newPgxInvestmentRepository(dbPool)
	ruleRepo := newPgxRecurringRuleRepository(dbPool)
	settingRepo := newPgxSettingRepository(dbPool)
	priceHistoryRepo := newPgxPriceHistoryRepository(dbPool)
	snapshotRepo := newPgxSnapshotRepository(dbPool)
	backupRepo := newPgxBackupRepository(dbPool)
	ledger := newPgxLedgerStore(dbPool, ruleRepo)

	return portsrepo.RepositoryProvider{
		AccountRepo:       accountRepo,
		TransactionRepo:   transactionRepo,
		InvestmentRepo:    investmentRepo,
		RecurringRuleRepo: ruleRepo,
		SettingRepo:       settingRepo,
		PriceHistoryRepo:  priceHistoryRepo,
		SnapshotRepo:      snapshotRepo,
		BackupRepo:        backupRepo,
		Ledger:            ledger,
	}
}
