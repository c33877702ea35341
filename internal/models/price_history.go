package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord is a row of the price_history table.
type PriceRecord struct {
	ID           int64           `db:"id"`
	InvestmentID int64           `db:"investment_id"`
	PriceDate    time.Time       `db:"price_date"`
	Price        decimal.Decimal `db:"price"`
	Type         *string         `db:"type"`   // Nullable
	Symbol       *string         `db:"symbol"` // Nullable
	AuditFields
}
