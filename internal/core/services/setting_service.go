package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
)

const maxSettingKeyLength = 128

type settingService struct {
	BaseService
	settingRepo portsrepo.SettingRepositoryFacade
}

// NewSettingService creates the key/value settings service.
func NewSettingService(repo portsrepo.SettingRepositoryFacade, options ...ServiceOption) portssvc.SettingSvcFacade {
	return &settingService{BaseService: applyOptions(options), settingRepo: repo}
}

var _ portssvc.SettingSvcFacade = (*settingService)(nil)

func (s *settingService) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	settings, err := s.settingRepo.ListSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list settings")
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	if settings == nil {
		return []domain.Setting{}, nil
	}
	return settings, nil
}

func (s *settingService) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	key, err := normalizeSettingKey(key)
	if err != nil {
		return nil, err
	}
	setting, err := s.settingRepo.FindSetting(ctx, key)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &domain.Setting{Key: key, Value: json.RawMessage("null")}, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find setting", slog.String("key", key))
		return nil, fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return setting, nil
}

func (s *settingService) PutSetting(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error) {
	key, err := normalizeSettingKey(key)
	if err != nil {
		return nil, err
	}
	if len(value) == 0 || !json.Valid(value) {
		return nil, fmt.Errorf("%w: setting value must be valid JSON", apperrors.ErrValidation)
	}

	unlock := s.lockWrites()
	defer unlock()

	now := s.now()
	setting := domain.Setting{
		Key:         key,
		Value:       value,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.settingRepo.UpsertSetting(ctx, setting); err != nil {
		s.LogError(ctx, err, "Failed to store setting", slog.String("key", key))
		return nil, fmt.Errorf("failed to store setting %q: %w", key, err)
	}
	s.LogDebug(ctx, "Setting stored", slog.String("key", key))
	return &setting, nil
}

func (s *settingService) DeleteSetting(ctx context.Context, key string) error {
	key, err := normalizeSettingKey(key)
	if err != nil {
		return err
	}

	unlock := s.lockWrites()
	defer unlock()

	if err := s.settingRepo.DeleteSetting(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to delete setting", slog.String("key", key))
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}
	return nil
}

func normalizeSettingKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || len(key) > maxSettingKeyLength {
		return "", fmt.Errorf("%w: setting key must be 1-%d characters", apperrors.ErrValidation, maxSettingKeyLength)
	}
	return key, nil
}
