package services_test

import (
	"context"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	"github.com/captainmuzzol/OpenPercento/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Account repository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}

// --- Ledger store and transaction ---

// MockLedgerStore records WithinTx calls and runs fn against Tx.
type MockLedgerStore struct {
	mock.Mock
	Tx *MockLedgerTx
}

func (m *MockLedgerStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	if err := m.Called(ctx).Error(0); err != nil {
		return err
	}
	return fn(ctx, m.Tx)
}

func (m *MockLedgerStore) ListEnabledRecurringRules(ctx context.Context) ([]domain.RecurringRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringRule), args.Error(1)
}

type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) FindAccountByIDForUpdate(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerTx) SaveAccount(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockLedgerTx) UpdateAccountBalance(ctx context.Context, accountID int64, balance decimal.Decimal, now time.Time) error {
	return m.Called(ctx, accountID, balance, now).Error(0)
}

func (m *MockLedgerTx) SaveTransaction(ctx context.Context, txn *domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockLedgerTx) FindInvestmentByIDForUpdate(ctx context.Context, investmentID int64) (*domain.Investment, error) {
	args := m.Called(ctx, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockLedgerTx) UpdateInvestmentHolding(ctx context.Context, investmentID int64, quantity, costPrice decimal.Decimal, now time.Time) error {
	return m.Called(ctx, investmentID, quantity, costPrice, now).Error(0)
}

func (m *MockLedgerTx) UpdateRuleSchedule(ctx context.Context, ruleID int64, nextRun string, lastRun *string, now time.Time) error {
	return m.Called(ctx, ruleID, nextRun, lastRun, now).Error(0)
}

// --- Transaction repository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, *pagination.Cursor, error) {
	args := m.Called(ctx, filter)
	var txns []domain.Transaction
	if v := args.Get(0); v != nil {
		txns = v.([]domain.Transaction)
	}
	var next *pagination.Cursor
	if v := args.Get(1); v != nil {
		next = v.(*pagination.Cursor)
	}
	return txns, next, args.Error(2)
}

// --- Investment repository ---

type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID int64) (*domain.Investment, error) {
	args := m.Called(ctx, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) ListInvestments(ctx context.Context, investmentType string) ([]domain.Investment, error) {
	args := m.Called(ctx, investmentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) SaveInvestment(ctx context.Context, investment *domain.Investment) error {
	return m.Called(ctx, investment).Error(0)
}

func (m *MockInvestmentRepository) UpdateInvestment(ctx context.Context, investment domain.Investment) error {
	return m.Called(ctx, investment).Error(0)
}

func (m *MockInvestmentRepository) DeleteInvestment(ctx context.Context, investmentID int64) error {
	return m.Called(ctx, investmentID).Error(0)
}

// --- Recurring rule repository ---

type MockRecurringRuleRepository struct {
	mock.Mock
}

func (m *MockRecurringRuleRepository) FindRecurringRuleByID(ctx context.Context, ruleID int64) (*domain.RecurringRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringRuleRepository) ListRecurringRules(ctx context.Context, filter portsrepo.RecurringRuleFilter) ([]domain.RecurringRule, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringRuleRepository) ListEnabledRecurringRules(ctx context.Context) ([]domain.RecurringRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringRuleRepository) SaveRecurringRule(ctx context.Context, rule *domain.RecurringRule) error {
	return m.Called(ctx, rule).Error(0)
}

func (m *MockRecurringRuleRepository) UpdateRecurringRule(ctx context.Context, rule domain.RecurringRule) error {
	return m.Called(ctx, rule).Error(0)
}

func (m *MockRecurringRuleRepository) DeleteRecurringRule(ctx context.Context, ruleID int64) error {
	return m.Called(ctx, ruleID).Error(0)
}

// --- Setting repository ---

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Setting), args.Error(1)
}

func (m *MockSettingRepository) FindSetting(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	return m.Called(ctx, setting).Error(0)
}

func (m *MockSettingRepository) DeleteSetting(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// --- Price history repository ---

type MockPriceHistoryRepository struct {
	mock.Mock
}

func (m *MockPriceHistoryRepository) ListPriceHistory(ctx context.Context, filter portsrepo.PriceHistoryFilter) ([]domain.PriceRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceRecord), args.Error(1)
}

func (m *MockPriceHistoryRepository) FindPriceRecordByDate(ctx context.Context, investmentID int64, date string) (*domain.PriceRecord, error) {
	args := m.Called(ctx, investmentID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRecord), args.Error(1)
}

func (m *MockPriceHistoryRepository) UpsertPriceRecord(ctx context.Context, record *domain.PriceRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockPriceHistoryRepository) UpdatePriceRecord(ctx context.Context, record *domain.PriceRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockPriceHistoryRepository) DeletePriceHistoryByInvestment(ctx context.Context, investmentID int64) (int64, error) {
	args := m.Called(ctx, investmentID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Snapshot repository ---

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) ListSnapshots(ctx context.Context, startDate, endDate string) ([]domain.Snapshot, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotRepository) FindLatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotRepository) UpsertSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

// --- Backup repository ---

type MockBackupRepository struct {
	mock.Mock
}

func (m *MockBackupRepository) ExportData(ctx context.Context) (domain.Backup, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Backup), args.Error(1)
}

func (m *MockBackupRepository) ReplaceData(ctx context.Context, backup domain.Backup) error {
	return m.Called(ctx, backup).Error(0)
}

func (m *MockBackupRepository) ClearData(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Runner ---

type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) RunDue(ctx context.Context) (domain.RunResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RunResult), args.Error(1)
}

// --- helpers ---

var testNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(s string) any {
	want := dec(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func i64(v int64) *int64    { return &v }
func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }
func boolp(v bool) *bool    { return &v }

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
