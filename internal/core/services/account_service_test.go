package services_test

import (
	"context"
	"testing"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/core/recurring"
	"github.com/captainmuzzol/OpenPercento/internal/core/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockAccountRepository
	mockLedger *MockLedgerStore
	mockTx     *MockLedgerTx
	service    portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockTx = new(MockLedgerTx)
	suite.mockLedger = &MockLedgerStore{Tx: suite.mockTx}
	suite.service = services.NewAccountService(suite.mockRepo, suite.mockLedger,
		services.WithClock(recurring.FixedClock{At: testNow}))
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RecordsOpeningBalance() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: " Wallet ", Balance: decp("100.50")}

	suite.mockLedger.On("WithinTx", ctx).Return(nil).Once()
	suite.mockTx.On("SaveAccount", ctx, mock.AnythingOfType("*domain.Account")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Account).ID = 7 }).
		Return(nil).Once()
	suite.mockTx.On("UpdateAccountBalance", ctx, int64(7), decEq("100.50"), testNow).Return(nil).Once()
	suite.mockTx.On("SaveTransaction", ctx, mock.MatchedBy(func(t *domain.Transaction) bool {
		return t.AccountID == 7 &&
			t.Type == domain.TxnOpeningBalance &&
			t.PreviousBalance.IsZero() &&
			t.Amount.Equal(dec("100.50")) &&
			t.Date == "2024-03-10"
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(7), account.ID)
	suite.Equal("Wallet", account.Name)
	suite.Equal("cash", account.Group)
	suite.True(account.IncludeInNetWorth)
	suite.True(account.Balance.Equal(dec("100.50")))
	suite.Equal(testNow, account.CreatedAt)
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockTx.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ZeroBalanceSkipsEntry() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Card", Group: "credit", IncludeInNetWorth: boolp(false)}

	suite.mockLedger.On("WithinTx", ctx).Return(nil).Once()
	suite.mockTx.On("SaveAccount", ctx, mock.AnythingOfType("*domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("credit", account.Group)
	suite.False(account.IncludeInNetWorth)
	suite.True(account.Balance.IsZero())
	suite.mockTx.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_BlankName() {
	_, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{Name: "   "})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "WithinTx", mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_StoreError() {
	ctx := context.Background()
	suite.mockLedger.On("WithinTx", ctx).Return(nil).Once()
	suite.mockTx.On("SaveAccount", ctx, mock.Anything).Return(assert.AnError).Once()

	account, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Broken"})

	suite.Nil(account)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, 99)

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListAccounts", ctx).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_OnlyGivenFields() {
	ctx := context.Background()
	existing := &domain.Account{ID: 3, Name: "Old", Group: "cash", Balance: dec("42"), IncludeInNetWorth: true}
	suite.mockRepo.On("FindAccountByID", ctx, int64(3)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "New" && a.Group == "cash" && a.BillingDay != nil && *a.BillingDay == 5 && a.UpdatedAt.Equal(testNow)
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, 3, dto.UpdateAccountRequest{Name: strp("New"), BillingDay: intp(5)})

	suite.Require().NoError(err)
	suite.Equal("New", account.Name)
	suite.True(account.Balance.Equal(dec("42")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_EmptyNameRejected() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, int64(3)).Return(&domain.Account{ID: 3, Name: "Old"}, nil).Once()

	_, err := suite.service.UpdateAccount(ctx, 3, dto.UpdateAccountRequest{Name: strp(" ")})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteAccount", ctx, int64(3)).Return(nil).Once()

	suite.NoError(suite.service.DeleteAccount(ctx, 3))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestAdjustBalance_RecordsDelta() {
	ctx := context.Background()
	suite.mockLedger.On("WithinTx", ctx).Return(nil).Once()
	suite.mockTx.On("FindAccountByIDForUpdate", ctx, int64(4)).
		Return(&domain.Account{ID: 4, Name: "Bank", Balance: dec("80")}, nil).Once()
	suite.mockTx.On("UpdateAccountBalance", ctx, int64(4), decEq("50"), testNow).Return(nil).Once()
	suite.mockTx.On("SaveTransaction", ctx, mock.AnythingOfType("*domain.Transaction")).Return(nil).Once()

	entry, err := suite.service.AdjustBalance(ctx, 4, dto.AdjustBalanceRequest{NewBalance: decp("50")})

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(domain.TxnAdjustment, entry.Type)
	suite.True(entry.Amount.Equal(dec("-30")))
	suite.True(entry.PreviousBalance.Equal(dec("80")))
	suite.True(entry.NewBalance.Equal(dec("50")))
	suite.Equal("Balance adjustment", entry.Reason)
	suite.Equal("2024-03-10", entry.Date)
	suite.mockTx.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestAdjustBalance_UnchangedBalanceRecordsNothing() {
	ctx := context.Background()
	suite.mockLedger.On("WithinTx", ctx).Return(nil).Once()
	suite.mockTx.On("FindAccountByIDForUpdate", ctx, int64(4)).
		Return(&domain.Account{ID: 4, Balance: dec("80")}, nil).Once()

	entry, err := suite.service.AdjustBalance(ctx, 4, dto.AdjustBalanceRequest{NewBalance: decp("80.00"), Date: "2024-01-01"})

	suite.Require().NoError(err)
	suite.Nil(entry)
	suite.mockTx.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestAdjustBalance_UnknownAccount() {
	ctx := context.Background()
	suite.mockLedger.On("WithinTx", ctx).Return(nil).Once()
	suite.mockTx.On("FindAccountByIDForUpdate", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AdjustBalance(ctx, 404, dto.AdjustBalanceRequest{NewBalance: decp("1")})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestAdjustBalance_BadDate() {
	_, err := suite.service.AdjustBalance(context.Background(), 4, dto.AdjustBalanceRequest{NewBalance: decp("1"), Date: "10/03/2024"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "WithinTx", mock.Anything)
}
