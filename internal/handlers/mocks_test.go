package handlers_test

import (
	"context"
	"encoding/json"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockAccountService) AdjustBalance(ctx context.Context, accountID int64, req dto.AdjustBalanceRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock RecurringRuleService ---
type MockRecurringService struct {
	mock.Mock
}

func (m *MockRecurringService) GetRecurringRuleByID(ctx context.Context, ruleID int64) (*domain.RecurringRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringService) ListRecurringRules(ctx context.Context, params dto.ListRecurringRulesParams) ([]domain.RecurringRule, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringService) CreateRecurringRule(ctx context.Context, req dto.CreateRecurringRuleRequest) (*domain.RecurringRule, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringService) UpdateRecurringRule(ctx context.Context, ruleID int64, req dto.UpdateRecurringRuleRequest) (*domain.RecurringRule, error) {
	args := m.Called(ctx, ruleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringService) DeleteRecurringRule(ctx context.Context, ruleID int64) error {
	return m.Called(ctx, ruleID).Error(0)
}

func (m *MockRecurringService) RunDue(ctx context.Context) (domain.RunResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RunResult), args.Error(1)
}

type MockPassReporter struct {
	mock.Mock
}

func (m *MockPassReporter) ReportRecurringPass(trigger string, result domain.RunResult) {
	m.Called(trigger, result)
}

var _ portssvc.RecurringRuleSvcFacade = (*MockRecurringService)(nil)

// --- Mock SettingService ---
type MockSettingService struct {
	mock.Mock
}

func (m *MockSettingService) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Setting), args.Error(1)
}

func (m *MockSettingService) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingService) PutSetting(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error) {
	args := m.Called(ctx, key, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingService) DeleteSetting(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

var _ portssvc.SettingSvcFacade = (*MockSettingService)(nil)

// --- Mock PriceHistoryService ---

type MockPriceHistoryService struct {
	mock.Mock
}

func (m *MockPriceHistoryService) ListPriceHistory(ctx context.Context, params dto.ListPriceHistoryParams) ([]domain.PriceRecord, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceRecord), args.Error(1)
}

func (m *MockPriceHistoryService) GetPriceByDate(ctx context.Context, params dto.PriceByDateParams) (*domain.PriceRecord, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRecord), args.Error(1)
}

func (m *MockPriceHistoryService) RecordPrice(ctx context.Context, req dto.RecordPriceRequest) (*domain.PriceRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRecord), args.Error(1)
}

func (m *MockPriceHistoryService) UpdatePriceRecord(ctx context.Context, recordID int64, req dto.UpdatePriceRecordRequest) (*domain.PriceRecord, error) {
	args := m.Called(ctx, recordID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRecord), args.Error(1)
}

func (m *MockPriceHistoryService) DeletePriceHistoryByInvestment(ctx context.Context, investmentID int64) (int64, error) {
	args := m.Called(ctx, investmentID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.PriceHistorySvcFacade = (*MockPriceHistoryService)(nil)

// --- Mock SnapshotService ---

type MockSnapshotService struct {
	mock.Mock
}

func (m *MockSnapshotService) ListSnapshots(ctx context.Context, params dto.ListSnapshotsParams) ([]domain.Snapshot, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotService) GetLatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotService) RecordSnapshot(ctx context.Context, req dto.RecordSnapshotRequest) (*domain.Snapshot, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

var _ portssvc.SnapshotSvcFacade = (*MockSnapshotService)(nil)

// --- Mock BackupService ---

type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) ExportData(ctx context.Context) (domain.Backup, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Backup), args.Error(1)
}

func (m *MockBackupService) ImportData(ctx context.Context, backup domain.Backup) error {
	return m.Called(ctx, backup).Error(0)
}

func (m *MockBackupService) ClearData(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ portssvc.BackupSvcFacade = (*MockBackupService)(nil)
