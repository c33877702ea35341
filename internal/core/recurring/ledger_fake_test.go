package recurring_test

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// fakeLedger is an in-memory LedgerStore. WithinTx snapshots the state and restores
// it when fn fails, so tests can observe rollbacks.
type fakeLedger struct {
	accounts    map[int64]domain.Account
	investments map[int64]domain.Investment
	rules       map[int64]domain.RecurringRule
	txns        []domain.Transaction
	lastTxnID   int64
	lastAcctID  int64

	failSaveTransaction error
	commits             int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		accounts:    map[int64]domain.Account{},
		investments: map[int64]domain.Investment{},
		rules:       map[int64]domain.RecurringRule{},
	}
}

var (
	_ portsrepo.LedgerStore = (*fakeLedger)(nil)
	_ portsrepo.LedgerTx    = (*fakeLedger)(nil)
)

func (f *fakeLedger) addAccount(id int64, name, balance string) {
	f.accounts[id] = domain.Account{ID: id, Name: name, Balance: decimal.RequireFromString(balance)}
}

func (f *fakeLedger) addInvestment(inv domain.Investment) {
	f.investments[inv.ID] = inv
}

func (f *fakeLedger) addRule(rule domain.RecurringRule) {
	f.rules[rule.ID] = rule
}

func (f *fakeLedger) balance(id int64) decimal.Decimal {
	return f.accounts[id].Balance
}

func (f *fakeLedger) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	accounts := maps.Clone(f.accounts)
	investments := maps.Clone(f.investments)
	rules := maps.Clone(f.rules)
	txns := slices.Clone(f.txns)
	lastTxnID := f.lastTxnID

	if err := fn(ctx, f); err != nil {
		f.accounts, f.investments, f.rules, f.txns, f.lastTxnID = accounts, investments, rules, txns, lastTxnID
		return err
	}
	f.commits++
	return nil
}

func (f *fakeLedger) ListEnabledRecurringRules(_ context.Context) ([]domain.RecurringRule, error) {
	var out []domain.RecurringRule
	for _, id := range slices.Sorted(maps.Keys(f.rules)) {
		if r := f.rules[id]; r.Enabled {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLedger) FindAccountByIDForUpdate(_ context.Context, id int64) (*domain.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", id, apperrors.ErrNotFound)
	}
	return &a, nil
}

func (f *fakeLedger) SaveAccount(_ context.Context, account *domain.Account) error {
	f.lastAcctID++
	account.ID = f.lastAcctID
	f.accounts[account.ID] = *account
	return nil
}

func (f *fakeLedger) UpdateAccountBalance(_ context.Context, id int64, balance decimal.Decimal, now time.Time) error {
	a, ok := f.accounts[id]
	if !ok {
		return fmt.Errorf("account %d: %w", id, apperrors.ErrNotFound)
	}
	a.Balance = balance
	a.UpdatedAt = now
	f.accounts[id] = a
	return nil
}

func (f *fakeLedger) SaveTransaction(_ context.Context, txn *domain.Transaction) error {
	if f.failSaveTransaction != nil {
		return f.failSaveTransaction
	}
	f.lastTxnID++
	txn.ID = f.lastTxnID
	f.txns = append(f.txns, *txn)
	return nil
}

func (f *fakeLedger) FindInvestmentByIDForUpdate(_ context.Context, id int64) (*domain.Investment, error) {
	inv, ok := f.investments[id]
	if !ok {
		return nil, fmt.Errorf("investment %d: %w", id, apperrors.ErrNotFound)
	}
	return &inv, nil
}

func (f *fakeLedger) UpdateInvestmentHolding(_ context.Context, id int64, quantity, costPrice decimal.Decimal, now time.Time) error {
	inv, ok := f.investments[id]
	if !ok {
		return fmt.Errorf("investment %d: %w", id, apperrors.ErrNotFound)
	}
	inv.Quantity = quantity
	inv.CostPrice = costPrice
	inv.UpdatedAt = now
	f.investments[id] = inv
	return nil
}

func (f *fakeLedger) UpdateRuleSchedule(_ context.Context, id int64, nextRun string, lastRun *string, now time.Time) error {
	r, ok := f.rules[id]
	if !ok {
		return fmt.Errorf("rule %d: %w", id, apperrors.ErrNotFound)
	}
	r.NextRun = nextRun
	if lastRun != nil {
		v := *lastRun
		r.LastRun = &v
	} else {
		r.LastRun = nil
	}
	r.UpdatedAt = now
	f.rules[id] = r
	return nil
}

// manualClock is a Clock tests can move forward.
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time   { return c.now }
func (c *manualClock) Today() time.Time { return domain.DateOf(c.now) }

func (c *manualClock) set(date string) {
	d, ok := domain.ParseDate(date)
	if !ok {
		panic("bad date " + date)
	}
	c.now = d.Add(9 * time.Hour)
}

func day(s string) time.Time {
	d, ok := domain.ParseDate(s)
	if !ok {
		panic("bad date " + s)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func i64(v int64) *int64 { return &v }
func intp(v int) *int    { return &v }
func strp(v string) *string {
	return &v
}
