package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	"github.com/captainmuzzol/OpenPercento/internal/models"
	"github.com/captainmuzzol/OpenPercento/internal/utils/mapping"
	"github.com/captainmuzzol/OpenPercento/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, account_id, type, previous_balance, new_balance, amount, reason, txn_date, note, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row scanner) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID,
		&m.AccountID,
		&m.Type,
		&m.PreviousBalance,
		&m.NewBalance,
		&m.Amount,
		&m.Reason,
		&m.TxnDate,
		&m.Note,
		&m.CreatedAt,
	)
	return m, err
}

// FindTransactionByID retrieves a single ledger entry.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %d", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction by ID %d: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves one page of ledger entries, newest date first and newest
// entry first within a date. One extra row is fetched to detect a following page.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, *pagination.Cursor, error) {
	var (
		conds []string
		args  []any
	)
	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		conds = append(conds, fmt.Sprintf("account_id = $%d", len(args)))
	}
	if filter.After != nil {
		args = append(args, filter.After.Date, filter.After.ID)
		conds = append(conds, fmt.Sprintf("(txn_date, id) < ($%d::date, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit+1)
	query += ` ORDER BY txn_date DESC, id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan transaction rows: %w", err)
	}

	var next *pagination.Cursor
	if len(ms) > filter.Limit {
		ms = ms[:filter.Limit]
		last := ms[len(ms)-1]
		next = &pagination.Cursor{Date: domain.FormatDate(last.TxnDate), ID: last.ID}
	}
	return mapping.ToDomainTransactionSlice(ms), next, nil
}

func insertTransaction(ctx context.Context, q dbtx, txn *domain.Transaction) error {
	m := mapping.ToModelTransaction(*txn)
	query := `
		INSERT INTO transactions (account_id, type, previous_balance, new_balance, amount, reason, txn_date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := q.QueryRow(ctx, query,
		m.AccountID,
		m.Type,
		m.PreviousBalance,
		m.NewBalance,
		m.Amount,
		m.Reason,
		m.TxnDate,
		m.Note,
		m.CreatedAt,
	).Scan(&txn.ID)
	if err != nil {
		return fmt.Errorf("failed to save %s transaction for account %d: %w", m.Type, m.AccountID, err)
	}
	return nil
}
