package domain

import "github.com/shopspring/decimal"

// Snapshot is the net-worth summary recorded for one day. There is at most one
// snapshot per date; recording again replaces the figures.
type Snapshot struct {
	ID                   int64           `json:"id"`
	Date                 string          `json:"date"` // YYYY-MM-DD
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
	AuditFields
}

// FillSummaryFromTotals copies the total figures into Assets, Liabilities and
// Investments where those are zero. Older exports only carried the totals.
func (s *Snapshot) FillSummaryFromTotals() {
	if s.Assets.IsZero() {
		s.Assets = s.TotalAssets
	}
	if s.Liabilities.IsZero() {
		s.Liabilities = s.TotalLiabilities
	}
	if s.Investments.IsZero() {
		s.Investments = s.TotalInvestmentValue
	}
}
