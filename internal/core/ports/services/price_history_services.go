package services

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
)

// PriceHistorySvcFacade records and queries the daily prices of investments.
type PriceHistorySvcFacade interface {
	ListPriceHistory(ctx context.Context, params dto.ListPriceHistoryParams) ([]domain.PriceRecord, error)
	// GetPriceByDate returns nil without error when no price was recorded that day.
	GetPriceByDate(ctx context.Context, params dto.PriceByDateParams) (*domain.PriceRecord, error)
	RecordPrice(ctx context.Context, req dto.RecordPriceRequest) (*domain.PriceRecord, error)
	UpdatePriceRecord(ctx context.Context, recordID int64, req dto.UpdatePriceRecordRequest) (*domain.PriceRecord, error)
	DeletePriceHistoryByInvestment(ctx context.Context, investmentID int64) (int64, error)
}
