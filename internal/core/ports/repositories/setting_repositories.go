package repositories

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// SettingRepositoryFacade defines operations on key/value settings
type SettingRepositoryFacade interface {
	// ListSettings retrieves all settings ordered by key.
	ListSettings(ctx context.Context) ([]domain.Setting, error)

	// FindSetting retrieves one setting by key.
	FindSetting(ctx context.Context, key string) (*domain.Setting, error)

	// UpsertSetting creates or replaces the value stored under setting.Key.
	UpsertSetting(ctx context.Context, setting domain.Setting) error

	// DeleteSetting removes a key. Deleting an absent key is not an error.
	DeleteSetting(ctx context.Context, key string) error
}
