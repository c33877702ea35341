package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/captainmuzzol/OpenPercento/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
	suite.router = gin.New()
	suite.mockAccountService = new(MockAccountService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAccountRoutes(v1, suite.mockAccountService)
}

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (suite *AccountHandlerTestSuite) serve(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
		return req.Name == "Wallet" && req.Balance != nil && req.Balance.Equal(decimal.RequireFromString("12.5"))
	})).Return(&domain.Account{ID: 1, Name: "Wallet", Group: "cash", Balance: decimal.RequireFromString("12.5")}, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/accounts", `{"name":"Wallet","balance":"12.5"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(1), body.ID)
	suite.True(body.Balance.Equal(decimal.RequireFromString("12.5")))
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingName() {
	w := suite.serve(http.MethodPost, "/api/v1/accounts", `{"group":"cash"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_BillingDayOutOfRange() {
	w := suite.serve(http.MethodPost, "/api/v1/accounts", `{"name":"Card","billingDay":32}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_InvalidID() {
	w := suite.serve(http.MethodGet, "/api/v1/accounts/abc", "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, int64(9)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/9", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_ServiceFailureIsHidden() {
	suite.mockAccountService.On("ListAccounts", mock.Anything).Return(nil, assert.AnError).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), assert.AnError.Error())
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount() {
	suite.mockAccountService.On("DeleteAccount", mock.Anything, int64(3)).Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/accounts/3", "")

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *AccountHandlerTestSuite) TestAdjustBalance_ReturnsAccountAndEntry() {
	entry := &domain.Transaction{ID: 8, AccountID: 3, Type: domain.TxnAdjustment, Amount: decimal.RequireFromString("-5"), Date: "2024-03-10"}
	suite.mockAccountService.On("AdjustBalance", mock.Anything, int64(3), mock.MatchedBy(func(req dto.AdjustBalanceRequest) bool {
		return req.NewBalance.Equal(decimal.RequireFromString("95")) && req.Date == "2024-03-10"
	})).Return(entry, nil).Once()
	suite.mockAccountService.On("GetAccountByID", mock.Anything, int64(3)).
		Return(&domain.Account{ID: 3, Balance: decimal.RequireFromString("95")}, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/accounts/3/adjustments", `{"newBalance":95,"date":"2024-03-10"}`)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.AdjustBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().NotNil(body.Transaction)
	suite.Equal(int64(8), body.Transaction.ID)
	suite.Equal("adjustment", body.Transaction.Type)
}

func (suite *AccountHandlerTestSuite) TestAdjustBalance_BadDate() {
	w := suite.serve(http.MethodPost, "/api/v1/accounts/3/adjustments", `{"newBalance":95,"date":"March 10"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}
