package domain

import (
	"github.com/shopspring/decimal"
)

// Investment is a holding (fund, stock, wealth product, ...) tracked by quantity and
// weighted-average cost basis.
type Investment struct {
	ID           int64           `json:"id"`
	Type         string          `json:"type"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	Quantity     decimal.Decimal `json:"quantity"`     // Non-negative
	CostPrice    decimal.Decimal `json:"costPrice"`    // Weighted-average cost per unit
	CurrentPrice decimal.Decimal `json:"currentPrice"` // Last known market price per unit
	PurchaseDate *string         `json:"purchaseDate"` // YYYY-MM-DD, nullable
	Note         *string         `json:"note"`

	// Wealth-product terms; informational, the ledger never accrues interest itself.
	WealthProductType  *string         `json:"wealthProductType"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate"` // Percent per year
	MaturityDate       *string         `json:"maturityDate"`       // YYYY-MM-DD, nullable
	LastAccruedDate    *string         `json:"lastAccruedDate"`    // YYYY-MM-DD, nullable
	AuditFields
}

// Purchase describes the effect of buying into a holding at a given unit price.
type Purchase struct {
	Price         decimal.Decimal
	QuantityAdded decimal.Decimal
	NewQuantity   decimal.Decimal
	NewCostPrice  decimal.Decimal
}

// DisplayName returns the investment name, or "-" when it has none.
func (i Investment) DisplayName() string {
	if i.Name == "" {
		return "-"
	}
	return i.Name
}

// UnitPrice returns the price new units are bought at: the current price when it is
// positive, otherwise the cost price. ok is false when neither is positive.
func (i Investment) UnitPrice() (price decimal.Decimal, ok bool) {
	if i.CurrentPrice.IsPositive() {
		return i.CurrentPrice, true
	}
	if i.CostPrice.IsPositive() {
		return i.CostPrice, true
	}
	return decimal.Zero, false
}

// Buy computes the holding after spending amount at the unit price.
// The new cost basis is the quantity-weighted average of the old lot and the new one;
// it is left unchanged when the resulting quantity is zero.
func (i Investment) Buy(amount decimal.Decimal) (Purchase, bool) {
	price, ok := i.UnitPrice()
	if !ok {
		return Purchase{}, false
	}

	qtyAdded := amount.Div(price)
	newQty := i.Quantity.Add(qtyAdded)
	newCost := i.CostPrice
	if newQty.IsPositive() {
		newCost = i.Quantity.Mul(i.CostPrice).Add(qtyAdded.Mul(price)).Div(newQty)
	}

	return Purchase{
		Price:         price,
		QuantityAdded: qtyAdded,
		NewQuantity:   newQty,
		NewCostPrice:  newCost,
	}, true
}
