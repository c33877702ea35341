package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	"github.com/captainmuzzol/OpenPercento/internal/models"
	"github.com/captainmuzzol/OpenPercento/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, name, account_group, balance, icon, include_in_net_worth, billing_day, repayment_day, note, created_at, updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row scanner) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Group,
		&m.Balance,
		&m.Icon,
		&m.IncludeInNetWorth,
		&m.BillingDay,
		&m.RepaymentDay,
		&m.Note,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return findAccount(ctx, r.Pool, accountID, false)
}

// ListAccounts retrieves all accounts ordered by id.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// UpdateAccount updates the descriptive fields of an account. The balance column is
// left untouched.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $1, account_group = $2, icon = $3, include_in_net_worth = $4,
		    billing_day = $5, repayment_day = $6, note = $7, updated_at = $8
		WHERE id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Group,
		m.Icon,
		m.IncludeInNetWorth,
		m.BillingDay,
		m.RepaymentDay,
		m.Note,
		m.UpdatedAt,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %d: %w", m.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, m.ID)
	}
	return nil
}

// DeleteAccount removes an account row.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
	}
	return nil
}

func findAccount(ctx context.Context, q dbtx, accountID int64, forUpdate bool) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	m, err := scanAccount(q.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account by ID %d: %w", accountID, err)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

func insertAccount(ctx context.Context, q dbtx, account *domain.Account) error {
	m := mapping.ToModelAccount(*account)
	query := `
		INSERT INTO accounts (name, account_group, balance, icon, include_in_net_worth, billing_day, repayment_day, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`
	err := q.QueryRow(ctx, query,
		m.Name,
		m.Group,
		m.Balance,
		m.Icon,
		m.IncludeInNetWorth,
		m.BillingDay,
		m.RepaymentDay,
		m.Note,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&account.ID)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return fmt.Errorf("%w: account %q", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save account %q: %w", m.Name, err)
	}
	return nil
}

func updateAccountBalance(ctx context.Context, q dbtx, accountID int64, balance decimal.Decimal, now time.Time) error {
	cmdTag, err := q.Exec(ctx, `UPDATE accounts SET balance = $1, updated_at = $2 WHERE id = $3;`, balance, now, accountID)
	if err != nil {
		return fmt.Errorf("failed to update balance of account %d: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
	}
	return nil
}
