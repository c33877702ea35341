package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the append-only transactions table.
// AccountID carries no foreign key so history survives account deletion.
type Transaction struct {
	ID              int64           `db:"id"`
	AccountID       int64           `db:"account_id"`
	Type            string          `db:"type"`
	PreviousBalance decimal.Decimal `db:"previous_balance"`
	NewBalance      decimal.Decimal `db:"new_balance"`
	Amount          decimal.Decimal `db:"amount"`
	Reason          string          `db:"reason"`
	TxnDate         time.Time       `db:"txn_date"`
	Note            *string         `db:"note"`
	CreatedAt       time.Time       `db:"created_at"`
}
