package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a money account (cash, bank card, credit card, ...) in the ledger.
// Balance is the running total of every ledger entry recorded against the account and
// is never edited without recording a corresponding Transaction.
type Account struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Group             string          `json:"group"`             // e.g. "cash", "credit", "receivable"
	Balance           decimal.Decimal `json:"balance"`           // Signed running balance
	Icon              *string         `json:"icon"`              // Nullable
	IncludeInNetWorth bool            `json:"includeInNetWorth"` // Default true
	BillingDay        *int            `json:"billingDay"`        // Credit accounts only
	RepaymentDay      *int            `json:"repaymentDay"`      // Credit accounts only
	Note              *string         `json:"note"`
	AuditFields
}

// DisplayName returns the account name, or "-" when it has none.
func (a Account) DisplayName() string {
	if a.Name == "" {
		return "-"
	}
	return a.Name
}
