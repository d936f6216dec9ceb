package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pennyledger/backend/internal/apperrors"
	"github.com/pennyledger/backend/internal/core/domain"
	portssvc "github.com/pennyledger/backend/internal/core/ports/services"
	"github.com/pennyledger/backend/internal/dto"
	"github.com/pennyledger/backend/internal/handlers"
	"github.com/pennyledger/backend/internal/platform/config"
)

// --- Mock AccountSvc ---

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, includeArchived bool, accountType *domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, includeArchived, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, patch domain.AccountPatch) (*domain.Account, error) {
	args := m.Called(ctx, accountID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ArchiveAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountService) UnarchiveAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountService) HasTransactions(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.AccountSvc = (*MockAccountService)(nil)

// --- Mock ReportingSvc ---

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) AccountBalance(ctx context.Context, accountID string) (*domain.BalanceReport, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceReport), args.Error(1)
}

func (m *MockReportingService) NetWorth(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

// --- Mock TransactionSvc ---

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactionViews(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionView), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, acknowledgeHistoryLoss bool) (bool, error) {
	args := m.Called(ctx, transactionID, acknowledgeHistoryLoss)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionService) ReverseTransaction(ctx context.Context, transactionID string, note *string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvc = (*MockTransactionService)(nil)

// --- Test Suite ---

type AccountHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockAccountService     *MockAccountService
	mockReportingService   *MockReportingService
	mockTransactionService *MockTransactionService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAccountService = new(MockAccountService)
	suite.mockReportingService = new(MockReportingService)
	suite.mockTransactionService = new(MockTransactionService)

	cfg := &config.Config{CORSAllowedOrigins: []string{"http://localhost:3000"}}
	services := &portssvc.ServiceContainer{
		Account:     suite.mockAccountService,
		Transaction: suite.mockTransactionService,
		Reporting:   suite.mockReportingService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AccountHandlerTestSuite) serve(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	account := &domain.Account{
		AccountID: uuid.NewString(),
		Name:      "Checking",
		Type:      domain.Internal,
		Currency:  "USD",
		CreatedAt: 1700000000000,
	}
	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).Return(account, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/accounts", gin.H{
		"name": "Checking",
		"type": "internal",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(account.AccountID, resp.AccountID)
	suite.Equal("USD", resp.Currency)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_UnknownTypeRejectedByBinding() {
	w := suite.serve(http.MethodPost, "/api/v1/accounts", gin.H{
		"name": "Broken",
		"type": "asset",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("GetAccountByID", mock.Anything, accountID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_TypeFilterPassedThrough() {
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), Name: "Cash", Type: domain.Internal, Currency: "USD"},
	}
	suite.mockAccountService.On("ListAccounts", mock.Anything, true, mock.MatchedBy(func(t *domain.AccountType) bool {
		return t != nil && *t == domain.Internal
	})).Return(accounts, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts?includeArchived=true&type=internal", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestUpdateAccount_ImmutableFieldRejected() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("UpdateAccount", mock.Anything, accountID, mock.AnythingOfType("domain.AccountPatch")).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.serve(http.MethodPatch, "/api/v1/accounts/"+accountID, gin.H{"type": "external"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestArchiveAccount() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("ArchiveAccount", mock.Anything, accountID).Return(nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/accounts/"+accountID+"/archive", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestHasTransactions() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("HasTransactions", mock.Anything, accountID).Return(true, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/"+accountID+"/has-transactions", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.HasTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.HasTransactions)
	suite.Equal(accountID, resp.AccountID)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetBalance() {
	accountID := uuid.NewString()
	report := &domain.BalanceReport{
		AccountID:  accountID,
		Type:       domain.External,
		Balance:    42000,
		OwnerValue: -42000,
	}
	suite.mockReportingService.On("AccountBalance", mock.Anything, accountID).Return(report, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/accounts/"+accountID+"/balance", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(42000), resp.Balance)
	suite.Equal(int64(-42000), resp.OwnerValue)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestNetWorth() {
	suite.mockReportingService.On("NetWorth", mock.Anything).Return(int64(987650), nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/networth", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.NetWorthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(987650), resp.NetWorth)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
