package services

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves every account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account, recording a non-zero opening balance as a ledger entry.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an existing account's descriptive fields.
	UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountBalanceSvc defines balance corrections made by the owner.
type AccountBalanceSvc interface {
	// AdjustBalance sets the balance of an account and records the delta as an
	// adjustment entry. It returns nil when the balance is already the requested one.
	AdjustBalance(ctx context.Context, accountID int64, req dto.AdjustBalanceRequest) (*domain.Transaction, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountBalanceSvc
}
