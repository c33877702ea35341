package domain

import "github.com/shopspring/decimal"

// PriceRecord is the price of one investment on one day. An investment has at most
// one record per date.
type PriceRecord struct {
	ID           int64           `json:"id"`
	InvestmentID int64           `json:"investmentId"`
	Date         string          `json:"date"` // YYYY-MM-DD
	Price        decimal.Decimal `json:"price"`
	Type         *string         `json:"type"`   // Investment type at the time of recording
	Symbol       *string         `json:"symbol"` // Investment symbol at the time of recording
	AuditFields
}
