package repositories

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/utils/pagination"
)

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
type TransactionFilter struct {
	AccountID *int64
	Limit     int                // Page size; must be positive
	After     *pagination.Cursor // Resume strictly after this row
}

// TransactionReader defines read operations for ledger entries
type TransactionReader interface {
	// FindTransactionByID retrieves a single ledger entry.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactions retrieves one page of ledger entries newest first (date desc, id desc).
	// The returned cursor is nil on the last page.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, *pagination.Cursor, error)
}

// TransactionWriter appends ledger entries. Entries are never updated or deleted.
type TransactionWriter interface {
	// SaveTransaction inserts a ledger entry and sets its ID.
	SaveTransaction(ctx context.Context, txn *domain.Transaction) error
}

// TransactionRepositoryFacade is the read side used by the transaction service
type TransactionRepositoryFacade interface {
	TransactionReader
}
