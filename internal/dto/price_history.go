package dto

import (
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPriceRequest stores the price of an investment on a date, replacing any
// price already recorded for that date.
type RecordPriceRequest struct {
	InvestmentID int64            `json:"investmentId" binding:"required,gt=0"`
	Date         string           `json:"date" binding:"required,isodate"`
	Price        *decimal.Decimal `json:"price" binding:"required"`
	Type         *string          `json:"type"`   // Defaults to the investment's type
	Symbol       *string          `json:"symbol"` // Defaults to the investment's symbol
}

// UpdatePriceRecordRequest replaces every field of a stored price record.
type UpdatePriceRecordRequest struct {
	InvestmentID int64            `json:"investmentId" binding:"required,gt=0"`
	Date         string           `json:"date" binding:"required,isodate"`
	Price        *decimal.Decimal `json:"price" binding:"required"`
	Type         *string          `json:"type"`
	Symbol       *string          `json:"symbol"`
}

// ListPriceHistoryParams defines query parameters for listing recorded prices.
type ListPriceHistoryParams struct {
	InvestmentID *int64 `form:"investmentId" binding:"omitempty,gt=0"`
	StartDate    string `form:"startDate" binding:"omitempty,isodate"`
	EndDate      string `form:"endDate" binding:"omitempty,isodate"`
}

// PriceByDateParams selects the price of one investment on one date.
type PriceByDateParams struct {
	InvestmentID int64  `form:"investmentId" binding:"required,gt=0"`
	Date         string `form:"date" binding:"required,isodate"`
}

type PriceRecordResponse struct {
	ID           int64           `json:"id"`
	InvestmentID int64           `json:"investmentId"`
	Date         string          `json:"date"`
	Price        decimal.Decimal `json:"price"`
	Type         *string         `json:"type"`
	Symbol       *string         `json:"symbol"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func ToPriceRecordResponse(p *domain.PriceRecord) PriceRecordResponse {
	return PriceRecordResponse{
		ID:           p.ID,
		InvestmentID: p.InvestmentID,
		Date:         p.Date,
		Price:        p.Price,
		Type:         p.Type,
		Symbol:       p.Symbol,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToListPriceRecordResponse(records []domain.PriceRecord) []PriceRecordResponse {
	res := make([]PriceRecordResponse, len(records))
	for i := range records {
		res[i] = ToPriceRecordResponse(&records[i])
	}
	return res
}

type ListPriceHistoryResponse struct {
	PriceHistory []PriceRecordResponse `json:"priceHistory"`
}

// DeletePriceHistoryResponse reports how many records were removed.
type DeletePriceHistoryResponse struct {
	Deleted int64 `json:"deleted"`
}
