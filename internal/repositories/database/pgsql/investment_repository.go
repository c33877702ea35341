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

const investmentColumns = `id, type, name, symbol, quantity, cost_price, current_price, purchase_date,
	wealth_product_type, annual_interest_rate, maturity_date, last_accrued_date, note, created_at, updated_at`

type PgxInvestmentRepository struct {
	BaseRepository
}

func newPgxInvestmentRepository(pool *pgxpool.Pool) *PgxInvestmentRepository {
	return &PgxInvestmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

func scanInvestment(row scanner) (models.Investment, error) {
	var m models.Investment
	err := row.Scan(
		&m.ID,
		&m.Type,
		&m.Name,
		&m.Symbol,
		&m.Quantity,
		&m.CostPrice,
		&m.CurrentPrice,
		&m.PurchaseDate,
		&m.WealthProductType,
		&m.AnnualInterestRate,
		&m.MaturityDate,
		&m.LastAccruedDate,
		&m.Note,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID int64) (*domain.Investment, error) {
	return findInvestment(ctx, r.Pool, investmentID, false)
}

// ListInvestments retrieves investments ordered by id. An empty investmentType lists all.
func (r *PgxInvestmentRepository) ListInvestments(ctx context.Context, investmentType string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments`
	var args []any
	if investmentType != "" {
		query += ` WHERE type = $1`
		args = append(args, investmentType)
	}
	query += ` ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Investment, error) {
		return scanInvestment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan investment rows: %w", err)
	}
	return mapping.ToDomainInvestmentSlice(ms), nil
}

func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, investment *domain.Investment) error {
	return insertInvestment(ctx, r.Pool, investment, false)
}

func (r *PgxInvestmentRepository) UpdateInvestment(ctx context.Context, investment domain.Investment) error {
	m := mapping.ToModelInvestment(investment)
	query := `
		UPDATE investments
		SET type = $1, name = $2, symbol = $3, quantity = $4, cost_price = $5, current_price = $6,
		    purchase_date = $7, wealth_product_type = $8, annual_interest_rate = $9, maturity_date = $10,
		    last_accrued_date = $11, note = $12, updated_at = $13
		WHERE id = $14;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Type,
		m.Name,
		m.Symbol,
		m.Quantity,
		m.CostPrice,
		m.CurrentPrice,
		m.PurchaseDate,
		m.WealthProductType,
		m.AnnualInterestRate,
		m.MaturityDate,
		m.LastAccruedDate,
		m.Note,
		m.UpdatedAt,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment %d: %w", m.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: investment %d", apperrors.ErrNotFound, m.ID)
	}
	return nil
}

// DeleteInvestment removes the investment and its price history in one transaction.
func (r *PgxInvestmentRepository) DeleteInvestment(ctx context.Context, investmentID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	cmdTag, err := tx.Exec(ctx, `DELETE FROM investments WHERE id = $1;`, investmentID)
	if err != nil {
		return fmt.Errorf("failed to delete investment %d: %w", investmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: investment %d", apperrors.ErrNotFound, investmentID)
	}
	if _, err := deletePriceHistoryByInvestment(ctx, tx, investmentID); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// insertInvestment inserts investment and sets its ID. With keepID the row keeps
// investment.ID, as when restoring a backup.
func insertInvestment(ctx context.Context, q dbtx, investment *domain.Investment, keepID bool) error {
	m := mapping.ToModelInvestment(*investment)
	args := []any{
		m.Type,
		m.Name,
		m.Symbol,
		m.Quantity,
		m.CostPrice,
		m.CurrentPrice,
		m.PurchaseDate,
		m.WealthProductType,
		m.AnnualInterestRate,
		m.MaturityDate,
		m.LastAccruedDate,
		m.Note,
		m.CreatedAt,
		m.UpdatedAt,
	}
	columns := `type, name, symbol, quantity, cost_price, current_price, purchase_date,
		wealth_product_type, annual_interest_rate, maturity_date, last_accrued_date, note, created_at, updated_at`
	values := `$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14`
	if keepID {
		columns += `, id`
		values += `, $15`
		args = append(args, m.ID)
	}
	query := `INSERT INTO investments (` + columns + `) VALUES (` + values + `) RETURNING id;`
	if err := q.QueryRow(ctx, query, args...).Scan(&investment.ID); err != nil {
		return fmt.Errorf("failed to save investment %q: %w", m.Name, err)
	}
	return nil
}

func findInvestment(ctx context.Context, q dbtx, investmentID int64, forUpdate bool) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	m, err := scanInvestment(q.QueryRow(ctx, query, investmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: investment %d", apperrors.ErrNotFound, investmentID)
		}
		return nil, fmt.Errorf("failed to find investment by ID %d: %w", investmentID, err)
	}
	d := mapping.ToDomainInvestment(m)
	return &d, nil
}

func updateInvestmentHolding(ctx context.Context, q dbtx, investmentID int64, quantity, costPrice decimal.Decimal, now time.Time) error {
	query := `UPDATE investments SET quantity = $1, cost_price = $2, updated_at = $3 WHERE id = $4;`
	cmdTag, err := q.Exec(ctx, query, quantity, costPrice, now, investmentID)
	if err != nil {
		return fmt.Errorf("failed to update holding of investment %d: %w", investmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: investment %d", apperrors.ErrNotFound, investmentID)
	}
	return nil
}
