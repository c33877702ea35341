package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a row of the snapshots table.
type Snapshot struct {
	ID                   int64           `db:"id"`
	SnapshotDate         time.Time       `db:"snapshot_date"`
	NetWorth             decimal.Decimal `db:"net_worth"`
	Assets               decimal.Decimal `db:"assets"`
	Liabilities          decimal.Decimal `db:"liabilities"`
	Investments          decimal.Decimal `db:"investments"`
	TotalAssets          decimal.Decimal `db:"total_assets"`
	TotalLiabilities     decimal.Decimal `db:"total_liabilities"`
	TotalInvestmentValue decimal.Decimal `db:"total_investment_value"`
	TotalInvestmentCost  decimal.Decimal `db:"total_investment_cost"`
	InvestmentProfit     decimal.Decimal `db:"investment_profit"`
	InvestmentProfitRate decimal.Decimal `db:"investment_profit_rate"`
	AuditFields
}
