package pgsql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	"github.com/captainmuzzol/OpenPercento/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// backupTables are the tables export covers, in restore order. Clearing runs in reverse.
var backupTables = []string{"accounts", "transactions", "investments", "settings", "snapshots", "price_history"}

// PgxBackupRepository exports, restores and clears the data set.
type PgxBackupRepository struct {
	BaseRepository
}

func newPgxBackupRepository(pool *pgxpool.Pool) *PgxBackupRepository {
	return &PgxBackupRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BackupRepository = (*PgxBackupRepository)(nil)

// ExportData reads all tables in one read-only repeatable-read transaction.
func (r *PgxBackupRepository) ExportData(ctx context.Context) (domain.Backup, error) {
	var backup domain.Backup

	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return backup, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin export transaction", err)
	}
	defer r.Rollback(ctx, tx)

	accounts, err := queryRows(ctx, tx, `SELECT `+accountColumns+` FROM accounts ORDER BY id;`, scanAccount)
	if err != nil {
		return backup, fmt.Errorf("failed to export accounts: %w", err)
	}
	txns, err := queryRows(ctx, tx, `SELECT `+transactionColumns+` FROM transactions ORDER BY txn_date DESC, id DESC;`, scanTransaction)
	if err != nil {
		return backup, fmt.Errorf("failed to export transactions: %w", err)
	}
	invs, err := queryRows(ctx, tx, `SELECT `+investmentColumns+` FROM investments ORDER BY id;`, scanInvestment)
	if err != nil {
		return backup, fmt.Errorf("failed to export investments: %w", err)
	}
	settings, err := queryRows(ctx, tx, `SELECT key, value::text, created_at, updated_at FROM settings ORDER BY key;`, scanSetting)
	if err != nil {
		return backup, fmt.Errorf("failed to export settings: %w", err)
	}
	snapshots, err := queryRows(ctx, tx, `SELECT `+snapshotColumns+` FROM snapshots ORDER BY snapshot_date, id;`, scanSnapshot)
	if err != nil {
		return backup, fmt.Errorf("failed to export snapshots: %w", err)
	}
	prices, err := queryRows(ctx, tx, `SELECT `+priceRecordColumns+` FROM price_history ORDER BY price_date, id;`, scanPriceRecord)
	if err != nil {
		return backup, fmt.Errorf("failed to export price history: %w", err)
	}

	backup.Accounts = mapping.ToDomainAccountSlice(accounts)
	backup.Transactions = mapping.ToDomainTransactionSlice(txns)
	backup.Investments = mapping.ToDomainInvestmentSlice(invs)
	backup.Settings = mapping.ToDomainSettingSlice(settings)
	backup.Snapshots = mapping.ToDomainSnapshotSlice(snapshots)
	backup.PriceHistory = mapping.ToDomainPriceRecordSlice(prices)
	return backup, nil
}

// ReplaceData deletes the covered tables and inserts backup with its own IDs in one
// transaction, then moves every id sequence past the restored rows.
func (r *PgxBackupRepository) ReplaceData(ctx context.Context, backup domain.Backup) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	if err := clearTables(ctx, tx); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, a := range backup.Accounts {
		m := mapping.ToModelAccount(a)
		batch.Queue(`
			INSERT INTO accounts (id, name, account_group, balance, icon, include_in_net_worth, billing_day, repayment_day, note, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
			m.ID, m.Name, m.Group, m.Balance, m.Icon, m.IncludeInNetWorth, m.BillingDay, m.RepaymentDay, m.Note, m.CreatedAt, m.UpdatedAt)
	}
	for _, t := range backup.Transactions {
		m := mapping.ToModelTransaction(t)
		batch.Queue(`
			INSERT INTO transactions (id, account_id, type, previous_balance, new_balance, amount, reason, txn_date, note, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
			m.ID, m.AccountID, m.Type, m.PreviousBalance, m.NewBalance, m.Amount, m.Reason, m.TxnDate, m.Note, m.CreatedAt)
	}
	for _, inv := range backup.Investments {
		m := mapping.ToModelInvestment(inv)
		batch.Queue(`
			INSERT INTO investments (id, type, name, symbol, quantity, cost_price, current_price, purchase_date,
			                         wealth_product_type, annual_interest_rate, maturity_date, last_accrued_date, note, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`,
			m.ID, m.Type, m.Name, m.Symbol, m.Quantity, m.CostPrice, m.CurrentPrice, m.PurchaseDate,
			m.WealthProductType, m.AnnualInterestRate, m.MaturityDate, m.LastAccruedDate, m.Note, m.CreatedAt, m.UpdatedAt)
	}
	for _, s := range backup.Settings {
		m := mapping.ToModelSetting(s)
		batch.Queue(`INSERT INTO settings (key, value, created_at, updated_at) VALUES ($1, $2::jsonb, $3, $4);`,
			m.Key, m.Value, m.CreatedAt, m.UpdatedAt)
	}
	for _, s := range backup.Snapshots {
		m := mapping.ToModelSnapshot(s)
		batch.Queue(`
			INSERT INTO snapshots (snapshot_date, net_worth, assets, liabilities, investments, total_assets, total_liabilities,
			                       total_investment_value, total_investment_cost, investment_profit, investment_profit_rate,
			                       created_at, updated_at, id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
			append(snapshotArgs(m), m.ID)...)
	}
	for _, p := range backup.PriceHistory {
		m := mapping.ToModelPriceRecord(p)
		batch.Queue(`
			INSERT INTO price_history (id, investment_id, price_date, price, type, symbol, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			m.ID, m.InvestmentID, m.PriceDate, m.Price, m.Type, m.Symbol, m.CreatedAt, m.UpdatedAt)
	}
	for _, table := range backupTables {
		if table == "settings" {
			continue
		}
		batch.Queue(`SELECT setval(pg_get_serial_sequence('` + table + `', 'id'), COALESCE((SELECT MAX(id) FROM ` + table + `), 0) + 1, false);`)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isPgError(err, pgUniqueViolation) {
			return fmt.Errorf("%w: backup contains duplicate rows: %v", apperrors.ErrValidation, err)
		}
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	return r.Commit(ctx, tx)
}

// ClearData deletes the covered tables in one transaction.
func (r *PgxBackupRepository) ClearData(ctx context.Context) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	if err := clearTables(ctx, tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func clearTables(ctx context.Context, q dbtx) error {
	for i := len(backupTables) - 1; i >= 0; i-- {
		if _, err := q.Exec(ctx, `DELETE FROM `+backupTables[i]+`;`); err != nil {
			return fmt.Errorf("failed to clear %s: %w", backupTables[i], err)
		}
	}
	return nil
}

// queryRows runs query on q and scans every row with scan.
func queryRows[M any](ctx context.Context, q dbtx, query string, scan func(scanner) (M, error)) ([]M, error) {
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (M, error) {
		return scan(row)
	})
}
