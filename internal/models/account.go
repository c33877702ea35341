package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
type Account struct {
	ID                int64           `db:"id"`
	Name              string          `db:"name"`
	Group             string          `db:"account_group"`
	Balance           decimal.Decimal `db:"balance"`
	Icon              *string         `db:"icon"` // Nullable
	IncludeInNetWorth bool            `db:"include_in_net_worth"`
	BillingDay        *int            `db:"billing_day"`   // Nullable
	RepaymentDay      *int            `db:"repayment_day"` // Nullable
	Note              *string         `db:"note"`          // Nullable
	AuditFields
}
