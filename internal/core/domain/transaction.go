package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags the kind of ledger entry.
type TransactionType string

const (
	TxnRecurringIncome      TransactionType = "recurring_income"
	TxnRecurringTransferOut TransactionType = "recurring_transfer_out"
	TxnRecurringTransferIn  TransactionType = "recurring_transfer_in"
	TxnDCAOut               TransactionType = "dca_out"
	TxnOpeningBalance       TransactionType = "opening_balance"
	TxnAdjustment           TransactionType = "adjustment"
)

var (
	ErrEntryUnbalanced = errors.New("ledger entry new balance does not equal previous balance plus amount")
	ErrEntryDate       = errors.New("ledger entry date must be YYYY-MM-DD")
	ErrEntryAccount    = errors.New("ledger entry must reference an account")
)

// Transaction is one immutable entry of an account's append-only audit trail.
type Transaction struct {
	ID              int64           `json:"id"`
	AccountID       int64           `json:"accountId"`
	Type            TransactionType `json:"type"`
	PreviousBalance decimal.Decimal `json:"previousBalance"` // Account balance immediately before this entry
	NewBalance      decimal.Decimal `json:"newBalance"`      // PreviousBalance + Amount
	Amount          decimal.Decimal `json:"amount"`          // Signed delta
	Reason          string          `json:"reason"`
	Date            string          `json:"date"` // YYYY-MM-DD
	Note            *string         `json:"note"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// NewLedgerEntry builds the entry that moves account by the signed amount.
// The previous balance is taken from account, so account must be the latest committed
// state of the row.
func NewLedgerEntry(account Account, txnType TransactionType, amount decimal.Decimal, reason, date string, note *string, now time.Time) Transaction {
	return Transaction{
		AccountID:       account.ID,
		Type:            txnType,
		PreviousBalance: account.Balance,
		NewBalance:      account.Balance.Add(amount),
		Amount:          amount,
		Reason:          reason,
		Date:            date,
		Note:            note,
		CreatedAt:       now,
	}
}

// Validate checks the ledger invariants of a single entry.
func (t Transaction) Validate() error {
	if t.AccountID <= 0 {
		return ErrEntryAccount
	}
	if _, ok := ParseDate(t.Date); !ok {
		return fmt.Errorf("%w: got %q", ErrEntryDate, t.Date)
	}
	if !t.PreviousBalance.Add(t.Amount).Equal(t.NewBalance) {
		return fmt.Errorf("%w: %s + %s != %s", ErrEntryUnbalanced, t.PreviousBalance, t.Amount, t.NewBalance)
	}
	return nil
}
