package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringRule is a row of the recurring_rules table. Participant references are
// flat nullable columns; which of them matter depends on Action.
type RecurringRule struct {
	ID            int64           `db:"id"`
	Kind          string          `db:"kind"`
	Action        string          `db:"action"`
	AccountID     *int64          `db:"account_id"`
	FromAccountID *int64          `db:"from_account_id"`
	ToAccountID   *int64          `db:"to_account_id"`
	InvestmentID  *int64          `db:"investment_id"`
	Frequency     string          `db:"frequency"`
	Weekday       *int            `db:"weekday"`
	MonthDay      *int            `db:"month_day"`
	YearDay       *int            `db:"year_day"`
	Amount        decimal.Decimal `db:"amount"`
	Note          *string         `db:"note"`
	Enabled       bool            `db:"enabled"`
	NextRun       *time.Time      `db:"next_run"` // NULL until initialised
	LastRun       *time.Time      `db:"last_run"`
	AuditFields
}
