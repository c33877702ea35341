package dto

import (
	"encoding/json"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// PutSettingRequest carries any JSON value to store under a key.
type PutSettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

type SettingResponse struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func ToSettingResponse(s *domain.Setting) SettingResponse {
	return SettingResponse{Key: s.Key, Value: s.Value, UpdatedAt: s.UpdatedAt}
}

// ToSettingsMap flattens settings into the key/value object returned by GET /settings.
func ToSettingsMap(settings []domain.Setting) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	return out
}
