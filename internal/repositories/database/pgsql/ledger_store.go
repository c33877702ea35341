package pgsql

import (
	"context"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxLedgerStore runs ledger units of work in PostgreSQL transactions.
type PgxLedgerStore struct {
	BaseRepository
	rules *PgxRecurringRuleRepository
}

func newPgxLedgerStore(pool *pgxpool.Pool, rules *PgxRecurringRuleRepository) *PgxLedgerStore {
	return &PgxLedgerStore{BaseRepository: BaseRepository{Pool: pool}, rules: rules}
}

var _ portsrepo.LedgerStore = (*PgxLedgerStore)(nil)

// WithinTx runs fn in a transaction and commits when fn succeeds.
func (s *PgxLedgerStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.Rollback(ctx, tx) // Ignored once the transaction is committed

	if err := fn(ctx, &pgxLedgerTx{tx: tx}); err != nil {
		return err
	}
	return s.Commit(ctx, tx)
}

func (s *PgxLedgerStore) ListEnabledRecurringRules(ctx context.Context) ([]domain.RecurringRule, error) {
	return s.rules.ListEnabledRecurringRules(ctx)
}

// pgxLedgerTx implements LedgerTx on top of one open pgx.Tx.
type pgxLedgerTx struct {
	tx pgx.Tx
}

var _ portsrepo.LedgerTx = (*pgxLedgerTx)(nil)

func (t *pgxLedgerTx) FindAccountByIDForUpdate(ctx context.Context, accountID int64) (*domain.Account, error) {
	return findAccount(ctx, t.tx, accountID, true)
}

func (t *pgxLedgerTx) SaveAccount(ctx context.Context, account *domain.Account) error {
	return insertAccount(ctx, t.tx, account)
}

func (t *pgxLedgerTx) UpdateAccountBalance(ctx context.Context, accountID int64, balance decimal.Decimal, now time.Time) error {
	return updateAccountBalance(ctx, t.tx, accountID, balance, now)
}

func (t *pgxLedgerTx) SaveTransaction(ctx context.Context, txn *domain.Transaction) error {
	return insertTransaction(ctx, t.tx, txn)
}

func (t *pgxLedgerTx) FindInvestmentByIDForUpdate(ctx context.Context, investmentID int64) (*domain.Investment, error) {
	return findInvestment(ctx, t.tx, investmentID, true)
}

func (t *pgxLedgerTx) UpdateInvestmentHolding(ctx context.Context, investmentID int64, quantity, costPrice decimal.Decimal, now time.Time) error {
	return updateInvestmentHolding(ctx, t.tx, investmentID, quantity, costPrice, now)
}

func (t *pgxLedgerTx) UpdateRuleSchedule(ctx context.Context, ruleID int64, nextRun string, lastRun *string, now time.Time) error {
	return updateRuleSchedule(ctx, t.tx, ruleID, nextRun, lastRun, now)
}
