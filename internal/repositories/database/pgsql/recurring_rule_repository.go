package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	"github.com/captainmuzzol/OpenPercento/internal/models"
	"github.com/captainmuzzol/OpenPercento/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recurringRuleColumns = `id, kind, action, account_id, from_account_id, to_account_id, investment_id,
	frequency, weekday, month_day, year_day, amount, note, enabled, next_run, last_run, created_at, updated_at`

type PgxRecurringRuleRepository struct {
	BaseRepository
}

func newPgxRecurringRuleRepository(pool *pgxpool.Pool) *PgxRecurringRuleRepository {
	return &PgxRecurringRuleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RecurringRuleRepositoryFacade = (*PgxRecurringRuleRepository)(nil)

func scanRecurringRule(row scanner) (models.RecurringRule, error) {
	var m models.RecurringRule
	err := row.Scan(
		&m.ID,
		&m.Kind,
		&m.Action,
		&m.AccountID,
		&m.FromAccountID,
		&m.ToAccountID,
		&m.InvestmentID,
		&m.Frequency,
		&m.Weekday,
		&m.MonthDay,
		&m.YearDay,
		&m.Amount,
		&m.Note,
		&m.Enabled,
		&m.NextRun,
		&m.LastRun,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxRecurringRuleRepository) FindRecurringRuleByID(ctx context.Context, ruleID int64) (*domain.RecurringRule, error) {
	query := `SELECT ` + recurringRuleColumns + ` FROM recurring_rules WHERE id = $1;`

	m, err := scanRecurringRule(r.Pool.QueryRow(ctx, query, ruleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: recurring rule %d", apperrors.ErrNotFound, ruleID)
		}
		return nil, fmt.Errorf("failed to find recurring rule by ID %d: %w", ruleID, err)
	}
	d := mapping.ToDomainRecurringRule(m)
	return &d, nil
}

// ListRecurringRules retrieves rules newest first. The account filter matches any of
// the three account reference columns.
func (r *PgxRecurringRuleRepository) ListRecurringRules(ctx context.Context, filter portsrepo.RecurringRuleFilter) ([]domain.RecurringRule, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Kind != "" {
		args = append(args, filter.Kind)
		conds = append(conds, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(account_id = $%d OR from_account_id = $%d OR to_account_id = $%d)", n, n, n))
	}
	if filter.InvestmentID != nil {
		args = append(args, *filter.InvestmentID)
		conds = append(conds, fmt.Sprintf("investment_id = $%d", len(args)))
	}

	query := `SELECT ` + recurringRuleColumns + ` FROM recurring_rules`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id DESC;`

	return r.queryRules(ctx, r.Pool, query, args...)
}

// ListEnabledRecurringRules retrieves every enabled rule in ascending id order.
func (r *PgxRecurringRuleRepository) ListEnabledRecurringRules(ctx context.Context) ([]domain.RecurringRule, error) {
	query := `SELECT ` + recurringRuleColumns + ` FROM recurring_rules WHERE enabled = TRUE ORDER BY id ASC;`
	return r.queryRules(ctx, r.Pool, query)
}

func (r *PgxRecurringRuleRepository) queryRules(ctx context.Context, q dbtx, query string, args ...any) ([]domain.RecurringRule, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring rules: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RecurringRule, error) {
		return scanRecurringRule(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recurring rule rows: %w", err)
	}
	return mapping.ToDomainRecurringRuleSlice(ms), nil
}

func (r *PgxRecurringRuleRepository) SaveRecurringRule(ctx context.Context, rule *domain.RecurringRule) error {
	m := mapping.ToModelRecurringRule(*rule)
	query := `
		INSERT INTO recurring_rules (kind, action, account_id, from_account_id, to_account_id, investment_id,
			frequency, weekday, month_day, year_day, amount, note, enabled, next_run, last_run, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Kind,
		m.Action,
		m.AccountID,
		m.FromAccountID,
		m.ToAccountID,
		m.InvestmentID,
		m.Frequency,
		m.Weekday,
		m.MonthDay,
		m.YearDay,
		m.Amount,
		m.Note,
		m.Enabled,
		m.NextRun,
		m.LastRun,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&rule.ID)
	if err != nil {
		return fmt.Errorf("failed to save recurring rule %q: %w", m.Kind, err)
	}
	return nil
}

func (r *PgxRecurringRuleRepository) UpdateRecurringRule(ctx context.Context, rule domain.RecurringRule) error {
	m := mapping.ToModelRecurringRule(rule)
	query := `
		UPDATE recurring_rules
		SET kind = $1, action = $2, account_id = $3, from_account_id = $4, to_account_id = $5, investment_id = $6,
		    frequency = $7, weekday = $8, month_day = $9, year_day = $10, amount = $11, note = $12,
		    enabled = $13, next_run = $14, last_run = $15, updated_at = $16
		WHERE id = $17;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Kind,
		m.Action,
		m.AccountID,
		m.FromAccountID,
		m.ToAccountID,
		m.InvestmentID,
		m.Frequency,
		m.Weekday,
		m.MonthDay,
		m.YearDay,
		m.Amount,
		m.Note,
		m.Enabled,
		m.NextRun,
		m.LastRun,
		m.UpdatedAt,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recurring rule %d: %w", m.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: recurring rule %d", apperrors.ErrNotFound, m.ID)
	}
	return nil
}

func (r *PgxRecurringRuleRepository) DeleteRecurringRule(ctx context.Context, ruleID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM recurring_rules WHERE id = $1;`, ruleID)
	if err != nil {
		return fmt.Errorf("failed to delete recurring rule %d: %w", ruleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: recurring rule %d", apperrors.ErrNotFound, ruleID)
	}
	return nil
}

// updateRuleSchedule writes next_run and last_run. An empty nextRun is stored as NULL.
func updateRuleSchedule(ctx context.Context, q dbtx, ruleID int64, nextRun string, lastRun *string, now time.Time) error {
	var next *time.Time
	if nextRun != "" {
		next = mapping.StringToDate(&nextRun)
	}
	query := `UPDATE recurring_rules SET next_run = $1, last_run = $2, updated_at = $3 WHERE id = $4;`
	cmdTag, err := q.Exec(ctx, query, next, mapping.StringToDate(lastRun), now, ruleID)
	if err != nil {
		return fmt.Errorf("failed to update schedule of recurring rule %d: %w", ruleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: recurring rule %d", apperrors.ErrNotFound, ruleID)
	}
	return nil
}
