package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	"github.com/captainmuzzol/OpenPercento/internal/models"
	"github.com/captainmuzzol/OpenPercento/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingRepository struct {
	BaseRepository
}

func newPgxSettingRepository(pool *pgxpool.Pool) *PgxSettingRepository {
	return &PgxSettingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingRepositoryFacade = (*PgxSettingRepository)(nil)

func scanSetting(row scanner) (models.Setting, error) {
	var m models.Setting
	err := row.Scan(&m.Key, &m.Value, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *PgxSettingRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.Pool.Query(ctx, `SELECT key, value::text, created_at, updated_at FROM settings ORDER BY key;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Setting, error) {
		return scanSetting(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan setting rows: %w", err)
	}
	return mapping.ToDomainSettingSlice(ms), nil
}

func (r *PgxSettingRepository) FindSetting(ctx context.Context, key string) (*domain.Setting, error) {
	m, err := scanSetting(r.Pool.QueryRow(ctx, `SELECT key, value::text, created_at, updated_at FROM settings WHERE key = $1;`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: setting %q", apperrors.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to find setting %q: %w", key, err)
	}
	d := mapping.ToDomainSetting(m)
	return &d, nil
}

// UpsertSetting stores the value under key, keeping the original created_at.
func (r *PgxSettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	m := mapping.ToModelSetting(setting)
	query := `
		INSERT INTO settings (key, value, created_at, updated_at)
		VALUES ($1, $2::jsonb, $3, $4)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, m.Key, m.Value, m.CreatedAt, m.UpdatedAt); err != nil {
		if isPgError(err, pgInvalidTextInput) {
			return fmt.Errorf("%w: setting %q is not valid JSON", apperrors.ErrValidation, m.Key)
		}
		return fmt.Errorf("failed to save setting %q: %w", m.Key, err)
	}
	return nil
}

func (r *PgxSettingRepository) DeleteSetting(ctx context.Context, key string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM settings WHERE key = $1;`, key); err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}
	return nil
}
