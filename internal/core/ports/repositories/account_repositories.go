package repositories

import (
	"context"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its identifier.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves all accounts ordered by id.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account metadata.
// Balances are only changed through AccountLedger inside a ledger transaction.
type AccountWriter interface {
	// UpdateAccount updates an existing account's descriptive fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. Ledger entries and rules referencing it are kept.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountLedger defines the balance-affecting account operations available inside a
// ledger transaction.
type AccountLedger interface {
	// FindAccountByIDForUpdate reads an account and locks its row until the transaction ends.
	FindAccountByIDForUpdate(ctx context.Context, accountID int64) (*domain.Account, error)

	// SaveAccount inserts a new account and sets its ID.
	SaveAccount(ctx context.Context, account *domain.Account) error

	// UpdateAccountBalance stores the new running balance of an account.
	UpdateAccountBalance(ctx context.Context, accountID int64, balance decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines the account read and write interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
