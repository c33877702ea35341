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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const priceRecordColumns = `id, investment_id, price_date, price, type, symbol, created_at, updated_at`

type PgxPriceHistoryRepository struct {
	BaseRepository
}

func newPgxPriceHistoryRepository(pool *pgxpool.Pool) *PgxPriceHistoryRepository {
	return &PgxPriceHistoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PriceHistoryRepositoryFacade = (*PgxPriceHistoryRepository)(nil)

func scanPriceRecord(row scanner) (models.PriceRecord, error) {
	var m models.PriceRecord
	err := row.Scan(
		&m.ID,
		&m.InvestmentID,
		&m.PriceDate,
		&m.Price,
		&m.Type,
		&m.Symbol,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func collectPriceRecords(rows pgx.Rows) ([]domain.PriceRecord, error) {
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PriceRecord, error) {
		return scanPriceRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan price history rows: %w", err)
	}
	return mapping.ToDomainPriceRecordSlice(ms), nil
}

// ListPriceHistory retrieves records ordered by date, then id.
func (r *PgxPriceHistoryRepository) ListPriceHistory(ctx context.Context, filter portsrepo.PriceHistoryFilter) ([]domain.PriceRecord, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.InvestmentID > 0 {
		args = append(args, filter.InvestmentID)
		clauses = append(clauses, "investment_id = $"+strconv.Itoa(len(args)))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		clauses = append(clauses, "price_date >= $"+strconv.Itoa(len(args))+"::date")
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		clauses = append(clauses, "price_date <= $"+strconv.Itoa(len(args))+"::date")
	}

	query := `SELECT ` + priceRecordColumns + ` FROM price_history`
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY price_date ASC, id ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	return collectPriceRecords(rows)
}

func (r *PgxPriceHistoryRepository) FindPriceRecordByDate(ctx context.Context, investmentID int64, date string) (*domain.PriceRecord, error) {
	query := `SELECT ` + priceRecordColumns + ` FROM price_history WHERE investment_id = $1 AND price_date = $2::date;`

	m, err := scanPriceRecord(r.Pool.QueryRow(ctx, query, investmentID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: price of investment %d on %s", apperrors.ErrNotFound, investmentID, date)
		}
		return nil, fmt.Errorf("failed to find price of investment %d on %s: %w", investmentID, date, err)
	}
	d := mapping.ToDomainPriceRecord(m)
	return &d, nil
}

// UpsertPriceRecord keeps one row per (investment, date). On conflict the original
// created_at is kept.
func (r *PgxPriceHistoryRepository) UpsertPriceRecord(ctx context.Context, record *domain.PriceRecord) error {
	m := mapping.ToModelPriceRecord(*record)
	query := `
		INSERT INTO price_history (investment_id, price_date, price, type, symbol, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (investment_id, price_date) DO UPDATE
		SET price = EXCLUDED.price, type = EXCLUDED.type, symbol = EXCLUDED.symbol, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.InvestmentID,
		m.PriceDate,
		m.Price,
		m.Type,
		m.Symbol,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save price of investment %d on %s: %w", m.InvestmentID, record.Date, err)
	}
	return nil
}

// UpdatePriceRecord replaces the fields of record.ID and loads its created_at.
func (r *PgxPriceHistoryRepository) UpdatePriceRecord(ctx context.Context, record *domain.PriceRecord) error {
	m := mapping.ToModelPriceRecord(*record)
	query := `
		UPDATE price_history
		SET investment_id = $1, price_date = $2, price = $3, type = $4, symbol = $5, updated_at = $6
		WHERE id = $7
		RETURNING created_at;
	`
	err := r.Pool.QueryRow(ctx, query, m.InvestmentID, m.PriceDate, m.Price, m.Type, m.Symbol, m.UpdatedAt, m.ID).
		Scan(&record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: price record %d", apperrors.ErrNotFound, m.ID)
		}
		if isPgError(err, pgUniqueViolation) {
			return fmt.Errorf("%w: investment %d already has a price on %s", apperrors.ErrDuplicate, m.InvestmentID, record.Date)
		}
		return fmt.Errorf("failed to update price record %d: %w", m.ID, err)
	}
	return nil
}

func (r *PgxPriceHistoryRepository) DeletePriceHistoryByInvestment(ctx context.Context, investmentID int64) (int64, error) {
	return deletePriceHistoryByInvestment(ctx, r.Pool, investmentID)
}

func deletePriceHistoryByInvestment(ctx context.Context, q dbtx, investmentID int64) (int64, error) {
	cmdTag, err := q.Exec(ctx, `DELETE FROM price_history WHERE investment_id = $1;`, investmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete price history of investment %d: %w", investmentID, err)
	}
	return cmdTag.RowsAffected(), nil
}
