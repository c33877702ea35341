package repositories

import (
	"context"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvestmentReader defines read operations for investment holdings
type InvestmentReader interface {
	// FindInvestmentByID retrieves a specific investment.
	FindInvestmentByID(ctx context.Context, investmentID int64) (*domain.Investment, error)

	// ListInvestments retrieves investments ordered by id, optionally of one type.
	ListInvestments(ctx context.Context, investmentType string) ([]domain.Investment, error)
}

// InvestmentWriter defines write operations for investment holdings
type InvestmentWriter interface {
	// SaveInvestment inserts a new investment and sets its ID.
	SaveInvestment(ctx context.Context, investment *domain.Investment) error

	// UpdateInvestment replaces the stored fields of an investment.
	UpdateInvestment(ctx context.Context, investment domain.Investment) error

	// DeleteInvestment removes an investment together with its price history.
	DeleteInvestment(ctx context.Context, investmentID int64) error
}

// InvestmentLedger defines the holding updates available inside a ledger transaction.
type InvestmentLedger interface {
	// FindInvestmentByIDForUpdate reads an investment and locks its row until the transaction ends.
	FindInvestmentByIDForUpdate(ctx context.Context, investmentID int64) (*domain.Investment, error)

	// UpdateInvestmentHolding stores a new quantity and weighted-average cost price.
	UpdateInvestmentHolding(ctx context.Context, investmentID int64, quantity, costPrice decimal.Decimal, now time.Time) error
}

// InvestmentRepositoryFacade combines the investment read and write interfaces
type InvestmentRepositoryFacade interface {
	InvestmentReader
	InvestmentWriter
}
