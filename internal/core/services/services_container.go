package services

import (
	"log/slog"
	"sync"

	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/core/recurring"
	"github.com/captainmuzzol/OpenPercento/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// writeLock is the single ledger write guard of the process; the recurring runner and
// every mutating service share it.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, writeLock sync.Locker, logger *slog.Logger) (*portssvc.ServiceContainer, *recurring.Runner) {
	clock := recurring.SystemClock{Location: cfg.Location}
	options := []ServiceOption{WithWriteLock(writeLock), WithClock(clock)}

	runner := recurring.NewRunner(repos.Ledger,
		recurring.WithClock(clock),
		recurring.WithWriteLock(writeLock),
		recurring.WithLogger(logger),
	)

	container := &portssvc.ServiceContainer{
		Account:      NewAccountService(repos.AccountRepo, repos.Ledger, options...),
		Transaction:  NewTransactionService(repos.TransactionRepo, options...),
		Investment:   NewInvestmentService(repos.InvestmentRepo, options...),
		Recurring:    NewRecurringRuleService(repos.RecurringRuleRepo, repos.AccountRepo, repos.InvestmentRepo, runner, options...),
		Setting:      NewSettingService(repos.SettingRepo, options...),
		PriceHistory: NewPriceHistoryService(repos.PriceHistoryRepo, repos.InvestmentRepo, options...),
		Snapshot:     NewSnapshotService(repos.SnapshotRepo, options...),
		Backup:       NewBackupService(repos.BackupRepo, options...),
	}
	return container, runner
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade       = (*accountService)(nil)
	_ portssvc.RecurringRuleSvcFacade = (*recurringRuleService)(nil)
	_ portssvc.RecurringRunnerSvc     = (*recurring.Runner)(nil)
)
