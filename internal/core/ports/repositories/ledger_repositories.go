package repositories

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// LedgerTx is the set of ledger operations available inside one store transaction.
// Every read observes the writes already made through the same LedgerTx.
type LedgerTx interface {
	AccountLedger
	TransactionWriter
	InvestmentLedger
	RuleScheduleWriter
}

// LedgerStore is the store the recurring engine and balance-changing services work
// against. It assumes a single writer.
type LedgerStore interface {
	TransactionManager

	// ListEnabledRecurringRules retrieves every enabled rule in ascending id order.
	ListEnabledRecurringRules(ctx context.Context) ([]domain.RecurringRule, error)
}
