package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is a row of the investments table.
type Investment struct {
	ID                 int64           `db:"id"`
	Type               string          `db:"type"`
	Name               string          `db:"name"`
	Symbol             string          `db:"symbol"`
	Quantity           decimal.Decimal `db:"quantity"`
	CostPrice          decimal.Decimal `db:"cost_price"`
	CurrentPrice       decimal.Decimal `db:"current_price"`
	PurchaseDate       *time.Time      `db:"purchase_date"`       // Nullable
	WealthProductType  *string         `db:"wealth_product_type"` // Nullable
	AnnualInterestRate decimal.Decimal `db:"annual_interest_rate"`
	MaturityDate       *time.Time      `db:"maturity_date"`     // Nullable
	LastAccruedDate    *time.Time      `db:"last_accrued_date"` // Nullable
	Note               *string         `db:"note"`              // Nullable
	AuditFields
}
