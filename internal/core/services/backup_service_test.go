package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/core/recurring"
	"github.com/captainmuzzol/OpenPercento/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBackupService(repo *MockBackupRepository) portssvc.BackupSvcFacade {
	return services.NewBackupService(repo, services.WithClock(recurring.FixedClock{At: testNow}))
}

func TestExportData_StampsVersion(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBackupRepository)
	repo.On("ExportData", ctx).Return(domain.Backup{Accounts: []domain.Account{{ID: 1}}}, nil).Once()

	backup, err := newBackupService(repo).ExportData(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.BackupVersion, backup.Version)
	assert.Equal(t, testNow, backup.ExportedAt)
	assert.Len(t, backup.Accounts, 1)
}

func TestImportData_Normalizes(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBackupRepository)
	var stored domain.Backup
	repo.On("ReplaceData", ctx, mock.AnythingOfType("domain.Backup")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(domain.Backup) }).
		Return(nil).Once()

	var backup domain.Backup
	backup.Accounts = []domain.Account{{ID: 5, Name: " Cash "}, {Name: "Card"}}
	backup.Transactions = []domain.Transaction{
		{AccountID: 5, Amount: dec("10"), NewBalance: dec("10"), Date: "2024-03-01T08:00:00.000Z"},
	}
	backup.Investments = []domain.Investment{{Name: "Fund"}}
	backup.Settings = []domain.Setting{{Key: "theme"}}
	backup.Snapshots = []domain.Snapshot{{Date: "2024-03-01", TotalAssets: dec("200"), TotalInvestmentValue: dec("50")}}
	backup.PriceHistory = []domain.PriceRecord{{InvestmentID: 1, Date: "2024-03-01", Price: dec("1.1")}}

	err := newBackupService(repo).ImportData(ctx, backup)

	require.NoError(t, err)
	assert.Equal(t, int64(6), stored.Accounts[1].ID)
	assert.Equal(t, "Cash", stored.Accounts[0].Name)
	assert.Equal(t, testNow, stored.Accounts[0].CreatedAt)
	assert.Equal(t, "2024-03-01", stored.Transactions[0].Date)
	assert.Equal(t, int64(1), stored.Transactions[0].ID)
	assert.Equal(t, "fund", stored.Investments[0].Type)
	assert.JSONEq(t, "null", string(stored.Settings[0].Value))
	assert.True(t, stored.Snapshots[0].Assets.Equal(dec("200")))
	assert.True(t, stored.Snapshots[0].Investments.Equal(dec("50")))
	assert.Equal(t, int64(1), stored.PriceHistory[0].ID)
	repo.AssertExpectations(t)
}

func TestImportData_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		backup domain.Backup
	}{
		{name: "unbalanced transaction", backup: domain.Backup{Transactions: []domain.Transaction{
			{AccountID: 1, Amount: dec("10"), NewBalance: dec("5"), Date: "2024-03-01"},
		}}},
		{name: "transaction without date", backup: domain.Backup{Transactions: []domain.Transaction{
			{AccountID: 1, Date: ""},
		}}},
		{name: "invalid setting JSON", backup: domain.Backup{Settings: []domain.Setting{
			{Key: "theme", Value: json.RawMessage(`{dark`)},
		}}},
		{name: "snapshot without date", backup: domain.Backup{Snapshots: []domain.Snapshot{{}}}},
		{name: "price record without investment", backup: domain.Backup{PriceHistory: []domain.PriceRecord{
			{Date: "2024-03-01"},
		}}},
		{name: "negative holding", backup: domain.Backup{Investments: []domain.Investment{
			{Name: "Fund", Quantity: dec("-1")},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBackupRepository)

			err := newBackupService(repo).ImportData(context.Background(), tt.backup)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			repo.AssertNotCalled(t, "ReplaceData", mock.Anything, mock.Anything)
		})
	}
}

func TestClearData(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBackupRepository)
	repo.On("ClearData", ctx).Return(assert.AnError).Once()

	err := newBackupService(repo).ClearData(ctx)

	assert.ErrorIs(t, err, assert.AnError)
}
