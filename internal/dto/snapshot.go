package dto

import (
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordSnapshotRequest stores the net-worth figures of a day. Omitted figures are zero.
type RecordSnapshotRequest struct {
	Date                 string           `json:"date" binding:"required,isodate"`
	NetWorth             *decimal.Decimal `json:"netWorth"`
	Assets               *decimal.Decimal `json:"assets"`
	Liabilities          *decimal.Decimal `json:"liabilities"`
	Investments          *decimal.Decimal `json:"investments"`
	TotalAssets          *decimal.Decimal `json:"totalAssets"`
	TotalLiabilities     *decimal.Decimal `json:"totalLiabilities"`
	TotalInvestmentValue *decimal.Decimal `json:"totalInvestmentValue"`
	TotalInvestmentCost  *decimal.Decimal `json:"totalInvestmentCost"`
	InvestmentProfit     *decimal.Decimal `json:"investmentProfit"`
	InvestmentProfitRate *decimal.Decimal `json:"investmentProfitRate"`
}

// ListSnapshotsParams bounds a snapshot listing; both dates are inclusive.
type ListSnapshotsParams struct {
	StartDate string `form:"startDate" binding:"omitempty,isodate"`
	EndDate   string `form:"endDate" binding:"omitempty,isodate"`
}

type SnapshotResponse struct {
	ID                   int64           `json:"id"`
	Date                 string          `json:"date"`
	NetWorth             decimal.Decimal `json:"netWorth"`
	Assets               decimal.Decimal `json:"assets"`
	Liabilities          decimal.Decimal `json:"liabilities"`
	Investments          decimal.Decimal `json:"investments"`
	TotalAssets          decimal.Decimal `json:"totalAssets"`
	TotalLiabilities     decimal.Decimal `json:"totalLiabilities"`
	TotalInvestmentValue decimal.Decimal `json:"totalInvestmentValue"`
	TotalInvestmentCost  decimal.Decimal `json:"totalInvestmentCost"`
	InvestmentProfit     decimal.Decimal `json:"investmentProfit"`
	InvestmentProfitRate decimal.Decimal `json:"investmentProfitRate"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

func ToSnapshotResponse(s *domain.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:                   s.ID,
		Date:                 s.Date,
		NetWorth:             s.NetWorth,
		Assets:               s.Assets,
		Liabilities:          s.Liabilities,
		Investments:          s.Investments,
		TotalAssets:          s.TotalAssets,
		TotalLiabilities:     s.TotalLiabilities,
		TotalInvestmentValue: s.TotalInvestmentValue,
		TotalInvestmentCost:  s.TotalInvestmentCost,
		InvestmentProfit:     s.InvestmentProfit,
		InvestmentProfitRate: s.InvestmentProfitRate,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func ToListSnapshotResponse(snapshots []domain.Snapshot) []SnapshotResponse {
	res := make([]SnapshotResponse, len(snapshots))
	for i := range snapshots {
		res[i] = ToSnapshotResponse(&snapshots[i])
	}
	return res
}

type ListSnapshotsResponse struct {
	Snapshots []SnapshotResponse `json:"snapshots"`
}
