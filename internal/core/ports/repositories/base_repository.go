package repositories

import (
	"context"
)

// TransactionManager runs a unit of work inside a single database transaction.
type TransactionManager interface {
	// WithinTx runs fn inside a transaction. The transaction is committed when fn
	// returns nil and rolled back otherwise; fn's error is returned unchanged.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}
