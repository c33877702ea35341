package repositories

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// PriceHistoryFilter narrows a price history listing. Zero fields are ignored.
type PriceHistoryFilter struct {
	InvestmentID int64
	StartDate    string // Inclusive, YYYY-MM-DD
	EndDate      string // Inclusive, YYYY-MM-DD
}

// PriceHistoryReader defines read operations for recorded prices
type PriceHistoryReader interface {
	// ListPriceHistory retrieves records ordered by date, then id.
	ListPriceHistory(ctx context.Context, filter PriceHistoryFilter) ([]domain.PriceRecord, error)

	// FindPriceRecordByDate retrieves the record of one investment on one date.
	FindPriceRecordByDate(ctx context.Context, investmentID int64, date string) (*domain.PriceRecord, error)
}

// PriceHistoryWriter defines write operations for recorded prices
type PriceHistoryWriter interface {
	// UpsertPriceRecord inserts the record or, when the investment already has one for
	// that date, replaces its price, type and symbol. The stored ID is set on record.
	UpsertPriceRecord(ctx context.Context, record *domain.PriceRecord) error

	// UpdatePriceRecord replaces every field of an existing record and loads its
	// stored creation time into record.
	UpdatePriceRecord(ctx context.Context, record *domain.PriceRecord) error

	// DeletePriceHistoryByInvestment removes every record of an investment and
	// returns how many were removed.
	DeletePriceHistoryByInvestment(ctx context.Context, investmentID int64) (int64, error)
}

// PriceHistoryRepositoryFacade combines the price history read and write interfaces
type PriceHistoryRepositoryFacade interface {
	PriceHistoryReader
	PriceHistoryWriter
}
