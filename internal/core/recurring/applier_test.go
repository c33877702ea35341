package recurring_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	"github.com/captainmuzzol/OpenPercento/internal/core/recurring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var applyAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func apply(t *testing.T, ledger *fakeLedger, rule domain.RecurringRule, date string) error {
	t.Helper()
	applier := recurring.NewEffectApplier(recurring.FixedClock{At: applyAt})
	return ledger.WithinTx(context.Background(), func(ctx context.Context, tx portsrepo.LedgerTx) error {
		return applier.Apply(ctx, tx, rule, date)
	})
}

func TestApply_Income(t *testing.T) {
	ledger := newFakeLedger()
	ledger.addAccount(1, "Salary card", "10")

	rule := domain.RecurringRule{ID: 3, Payload: domain.IncomePayload{AccountID: 1}, Amount: dec("100")}
	require.NoError(t, apply(t, ledger, rule, "2024-01-31"))

	assert.True(t, ledger.balance(1).Equal(dec("110")))
	require.Len(t, ledger.txns, 1)
	txn := ledger.txns[0]
	assert.Equal(t, domain.TxnRecurringIncome, txn.Type)
	assert.Equal(t, "Recurring income", txn.Reason)
	assert.Equal(t, "2024-01-31", txn.Date)
	assert.True(t, txn.PreviousBalance.Equal(dec("10")))
	assert.True(t, txn.NewBalance.Equal(dec("110")))
	assert.True(t, txn.Amount.Equal(dec("100")))
	assert.Equal(t, applyAt, txn.CreatedAt)
}

func TestApply_IncomeUsesNoteAsReason(t *testing.T) {
	ledger := newFakeLedger()
	ledger.addAccount(1, "Salary card", "0")

	rule := domain.RecurringRule{Payload: domain.IncomePayload{AccountID: 1}, Amount: dec("5"), Note: strp("Allowance")}
	require.NoError(t, apply(t, ledger, rule, "2024-01-31"))

	require.Len(t, ledger.txns, 1)
	assert.Equal(t, "Allowance", ledger.txns[0].Reason)
	assert.Equal(t, "Allowance", *ledger.txns[0].Note)
}

func TestApply_TransferConservesTotal(t *testing.T) {
	amounts := []string{"0.01", "30", "250.75", "1000"}
	for _, amount := range amounts {
		ledger := newFakeLedger()
		ledger.addAccount(1, "Checking", "100")
		ledger.addAccount(2, "Savings", "50")
		before := ledger.balance(1).Add(ledger.balance(2))

		rule := domain.RecurringRule{Payload: domain.TransferPayload{FromAccountID: 1, ToAccountID: 2}, Amount: dec(amount)}
		require.NoError(t, apply(t, ledger, rule, "2024-02-01"))

		after := ledger.balance(1).Add(ledger.balance(2))
		assert.True(t, before.Equal(after), "amount %s: %s != %s", amount, before, after)
		assert.True(t, ledger.balance(1).Equal(dec("100").Sub(dec(amount))))
	}
}

func TestApply_TransferEntries(t *testing.T) {
	ledger := newFakeLedger()
	ledger.addAccount(1, "Checking", "100")
	ledger.addAccount(2, "Savings", "50")

	rule := domain.RecurringRule{Payload: domain.TransferPayload{FromAccountID: 1, ToAccountID: 2}, Amount: dec("30")}
	require.NoError(t, apply(t, ledger, rule, "2024-02-01"))

	require.Len(t, ledger.txns, 2)
	out, in := ledger.txns[0], ledger.txns[1]
	assert.Equal(t, domain.TxnRecurringTransferOut, out.Type)
	assert.Equal(t, int64(1), out.AccountID)
	assert.True(t, out.Amount.Equal(dec("-30")))
	assert.True(t, out.NewBalance.Equal(dec("70")))

	assert.Equal(t, domain.TxnRecurringTransferIn, in.Type)
	assert.Equal(t, int64(2), in.AccountID)
	assert.True(t, in.Amount.Equal(dec("30")))
	assert.True(t, in.NewBalance.Equal(dec("80")))

	assert.Equal(t, "Recurring transfer: Checking → Savings", out.Reason)
	assert.Equal(t, out.Reason, in.Reason)
}

func TestApply_DCA(t *testing.T) {
	ledger := newFakeLedger()
	ledger.addAccount(1, "Wallet", "1000")
	ledger.addInvestment(domain.Investment{ID: 7, Name: "Index fund", Quantity: dec("100"), CostPrice: dec("1"), CurrentPrice: dec("2")})

	rule := domain.RecurringRule{Payload: domain.DCAPayload{FromAccountID: 1, InvestmentID: 7}, Amount: dec("100")}
	require.NoError(t, apply(t, ledger, rule, "2024-02-01"))

	assert.True(t, ledger.balance(1).Equal(dec("900")))
	require.Len(t, ledger.txns, 1, "no entry is written for the investment side")
	assert.Equal(t, domain.TxnDCAOut, ledger.txns[0].Type)
	assert.True(t, ledger.txns[0].Amount.Equal(dec("-100")))
	assert.Equal(t, "DCA: Wallet → Index fund", ledger.txns[0].Reason)

	inv := ledger.investments[7]
	assert.True(t, inv.Quantity.Equal(dec("150")))
	assert.Equal(t, "1.3333333333333333", inv.CostPrice.String())
	assert.Equal(t, applyAt, inv.UpdatedAt)
}

func TestApply_DCAFallsBackToCostPrice(t *testing.T) {
	ledger := newFakeLedger()
	ledger.addAccount(1, "Wallet", "100")
	ledger.addInvestment(domain.Investment{ID: 7, Quantity: dec("0"), CostPrice: dec("4")})

	rule := domain.RecurringRule{Payload: domain.DCAPayload{FromAccountID: 1, InvestmentID: 7}, Amount: dec("20")}
	require.NoError(t, apply(t, ledger, rule, "2024-02-01"))

	inv := ledger.investments[7]
	assert.True(t, inv.Quantity.Equal(dec("5")))
	assert.True(t, inv.CostPrice.Equal(dec("4")))
}

func TestApply_Declines(t *testing.T) {
	tests := []struct {
		name    string
		rule    domain.RecurringRule
		wantErr error
	}{
		{
			name:    "zero amount",
			rule:    domain.RecurringRule{Payload: domain.IncomePayload{AccountID: 1}, Amount: dec("0")},
			wantErr: recurring.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			rule:    domain.RecurringRule{Payload: domain.TransferPayload{FromAccountID: 1, ToAccountID: 2}, Amount: dec("-5")},
			wantErr: recurring.ErrInvalidAmount,
		},
		{
			name:    "income without account",
			rule:    domain.RecurringRule{Payload: domain.IncomePayload{}, Amount: dec("5")},
			wantErr: recurring.ErrMissingParticipant,
		},
		{
			name:    "income to deleted account",
			rule:    domain.RecurringRule{Payload: domain.IncomePayload{AccountID: 99}, Amount: dec("5")},
			wantErr: recurring.ErrAccountNotFound,
		},
		{
			name:    "transfer without destination",
			rule:    domain.RecurringRule{Payload: domain.TransferPayload{FromAccountID: 1}, Amount: dec("5")},
			wantErr: recurring.ErrMissingParticipant,
		},
		{
			name:    "transfer to itself",
			rule:    domain.RecurringRule{Payload: domain.TransferPayload{FromAccountID: 1, ToAccountID: 1}, Amount: dec("5")},
			wantErr: recurring.ErrSameAccount,
		},
		{
			name:    "transfer to deleted account",
			rule:    domain.RecurringRule{Payload: domain.TransferPayload{FromAccountID: 1, ToAccountID: 99}, Amount: dec("5")},
			wantErr: recurring.ErrAccountNotFound,
		},
		{
			name:    "dca without investment",
			rule:    domain.RecurringRule{Payload: domain.DCAPayload{FromAccountID: 1}, Amount: dec("5")},
			wantErr: recurring.ErrMissingParticipant,
		},
		{
			name:    "dca into deleted investment",
			rule:    domain.RecurringRule{Payload: domain.DCAPayload{FromAccountID: 1, InvestmentID: 99}, Amount: dec("5")},
			wantErr: recurring.ErrInvestmentNotFound,
		},
		{
			name:    "dca without price",
			rule:    domain.RecurringRule{Payload: domain.DCAPayload{FromAccountID: 1, InvestmentID: 8}, Amount: dec("5")},
			wantErr: recurring.ErrNoUsablePrice,
		},
		{
			name:    "unsupported action",
			rule:    domain.RecurringRule{StoredAction: "refund", Amount: dec("5")},
			wantErr: recurring.ErrUnsupportedAction,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := newFakeLedger()
			ledger.addAccount(1, "Checking", "100")
			ledger.addAccount(2, "Savings", "50")
			ledger.addInvestment(domain.Investment{ID: 8, Quantity: dec("3")})

			err := apply(t, ledger, tt.rule, "2024-02-01")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, recurring.IsDeclined(err))

			assert.Empty(t, ledger.txns)
			assert.True(t, ledger.balance(1).Equal(dec("100")))
			assert.True(t, ledger.balance(2).Equal(dec("50")))
			assert.True(t, ledger.investments[8].Quantity.Equal(dec("3")))
		})
	}
}

func TestApply_StoreFailureIsNotADecline(t *testing.T) {
	ledger := newFakeLedger()
	ledger.addAccount(1, "Checking", "100")
	ledger.addAccount(2, "Savings", "50")
	ledger.failSaveTransaction = errors.New("disk full")

	rule := domain.RecurringRule{Payload: domain.TransferPayload{FromAccountID: 1, ToAccountID: 2}, Amount: dec("30")}
	err := apply(t, ledger, rule, "2024-02-01")

	require.Error(t, err)
	assert.False(t, recurring.IsDeclined(err))
	assert.True(t, ledger.balance(1).Equal(dec("100")), "rolled back")
	assert.True(t, ledger.balance(2).Equal(dec("50")))
}
