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

const snapshotColumns = `id, snapshot_date, net_worth, assets, liabilities, investments, total_assets, total_liabilities,
	total_investment_value, total_investment_cost, investment_profit, investment_profit_rate, created_at, updated_at`

type PgxSnapshotRepository struct {
	BaseRepository
}

func newPgxSnapshotRepository(pool *pgxpool.Pool) *PgxSnapshotRepository {
	return &PgxSnapshotRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SnapshotRepositoryFacade = (*PgxSnapshotRepository)(nil)

func scanSnapshot(row scanner) (models.Snapshot, error) {
	var m models.Snapshot
	err := row.Scan(
		&m.ID,
		&m.SnapshotDate,
		&m.NetWorth,
		&m.Assets,
		&m.Liabilities,
		&m.Investments,
		&m.TotalAssets,
		&m.TotalLiabilities,
		&m.TotalInvestmentValue,
		&m.TotalInvestmentCost,
		&m.InvestmentProfit,
		&m.InvestmentProfitRate,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func collectSnapshots(rows pgx.Rows) ([]domain.Snapshot, error) {
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Snapshot, error) {
		return scanSnapshot(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan snapshot rows: %w", err)
	}
	return mapping.ToDomainSnapshotSlice(ms), nil
}

func (r *PgxSnapshotRepository) ListSnapshots(ctx context.Context, startDate, endDate string) ([]domain.Snapshot, error) {
	var (
		clauses []string
		args    []any
	)
	if startDate != "" {
		args = append(args, startDate)
		clauses = append(clauses, "snapshot_date >= $"+strconv.Itoa(len(args))+"::date")
	}
	if endDate != "" {
		args = append(args, endDate)
		clauses = append(clauses, "snapshot_date <= $"+strconv.Itoa(len(args))+"::date")
	}

	query := `SELECT ` + snapshotColumns + ` FROM snapshots`
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY snapshot_date ASC, id ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	return collectSnapshots(rows)
}

func (r *PgxSnapshotRepository) FindLatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM snapshots ORDER BY snapshot_date DESC, id DESC LIMIT 1;`

	m, err := scanSnapshot(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no snapshot recorded", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find latest snapshot: %w", err)
	}
	d := mapping.ToDomainSnapshot(m)
	return &d, nil
}

// UpsertSnapshot keeps one row per date. On conflict the original created_at is kept.
func (r *PgxSnapshotRepository) UpsertSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	m := mapping.ToModelSnapshot(*snapshot)
	query := `
		INSERT INTO snapshots (snapshot_date, net_worth, assets, liabilities, investments, total_assets, total_liabilities,
		                       total_investment_value, total_investment_cost, investment_profit, investment_profit_rate,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (snapshot_date) DO UPDATE SET
			net_worth = EXCLUDED.net_worth,
			assets = EXCLUDED.assets,
			liabilities = EXCLUDED.liabilities,
			investments = EXCLUDED.investments,
			total_assets = EXCLUDED.total_assets,
			total_liabilities = EXCLUDED.total_liabilities,
			total_investment_value = EXCLUDED.total_investment_value,
			total_investment_cost = EXCLUDED.total_investment_cost,
			investment_profit = EXCLUDED.investment_profit,
			investment_profit_rate = EXCLUDED.investment_profit_rate,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at;
	`
	err := r.Pool.QueryRow(ctx, query, snapshotArgs(m)...).Scan(&snapshot.ID, &snapshot.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save snapshot of %s: %w", snapshot.Date, err)
	}
	return nil
}

// snapshotArgs lists the insert values of m in snapshotColumns order, without id.
func snapshotArgs(m models.Snapshot) []any {
	return []any{
		m.SnapshotDate,
		m.NetWorth,
		m.Assets,
		m.Liabilities,
		m.Investments,
		m.TotalAssets,
		m.TotalLiabilities,
		m.TotalInvestmentValue,
		m.TotalInvestmentCost,
		m.InvestmentProfit,
		m.InvestmentProfitRate,
		m.CreatedAt,
		m.UpdatedAt,
	}
}
