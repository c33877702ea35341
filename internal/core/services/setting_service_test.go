package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/core/recurring"
	"github.com/captainmuzzol/OpenPercento/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSetting_UnknownKeyIsNull(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingRepository)
	repo.On("FindSetting", ctx, "theme").Return(nil, apperrors.ErrNotFound).Once()

	setting, err := services.NewSettingService(repo).GetSetting(ctx, "theme")

	require.NoError(t, err)
	assert.Equal(t, "theme", setting.Key)
	assert.JSONEq(t, "null", string(setting.Value))
}

func TestGetSetting_StoreError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingRepository)
	repo.On("FindSetting", ctx, "theme").Return(nil, assert.AnError).Once()

	_, err := services.NewSettingService(repo).GetSetting(ctx, "theme")

	assert.ErrorIs(t, err, assert.AnError)
}

func TestPutSetting_StoresJSON(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingRepository)
	repo.On("UpsertSetting", ctx, mock.MatchedBy(func(s domain.Setting) bool {
		return s.Key == "currency" && string(s.Value) == `{"code":"CNY"}` && s.UpdatedAt.Equal(testNow)
	})).Return(nil).Once()

	svc := services.NewSettingService(repo, services.WithClock(recurring.FixedClock{At: testNow}))
	setting, err := svc.PutSetting(ctx, " currency ", json.RawMessage(`{"code":"CNY"}`))

	require.NoError(t, err)
	assert.Equal(t, "currency", setting.Key)
	repo.AssertExpectations(t)
}

func TestPutSetting_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "empty key", key: "", value: `1`},
		{name: "invalid json", key: "k", value: `{"a":`},
		{name: "empty value", key: "k", value: ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSettingRepository)

			_, err := services.NewSettingService(repo).PutSetting(context.Background(), tt.key, json.RawMessage(tt.value))

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			repo.AssertNotCalled(t, "UpsertSetting", mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteSetting(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingRepository)
	repo.On("DeleteSetting", ctx, "theme").Return(nil).Once()

	require.NoError(t, services.NewSettingService(repo).DeleteSetting(ctx, "theme"))
	repo.AssertExpectations(t)
}
