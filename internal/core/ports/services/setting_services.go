package services

import (
	"context"
	"encoding/json"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// SettingSvcFacade manages the key/value preference store.
type SettingSvcFacade interface {
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	// GetSetting returns the setting under key. An unknown key yields a setting with a null value.
	GetSetting(ctx context.Context, key string) (*domain.Setting, error)
	PutSetting(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error)
	DeleteSetting(ctx context.Context, key string) error
}
