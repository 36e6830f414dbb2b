package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/corralonapp/cuentas_backend/internal/apperrors"
	"github.com/corralonapp/cuentas_backend/internal/core/domain"
	portssvc "github.com/corralonapp/cuentas_backend/internal/core/ports/services"
	"github.com/corralonapp/cuentas_backend/internal/dto"
	"github.com/corralonapp/cuentas_backend/internal/handlers"
	"github.com/corralonapp/cuentas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) BuildLedger(ctx context.Context, accountID int64, windowDays int) (*domain.Ledger, error) {
	args := m.Called(ctx, accountID, windowDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite Setup ---

type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *LedgerHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cuentas-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterLedgerRoutes(v1, suite.mockLedgerService)
}

func (suite *LedgerHandlerTestSuite) doRequest(url string, authenticated bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))
	}
	req.Header.Set("Accept", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestGetLedger_Success() {
	accountID := int64(7)
	windowStart := time.Date(2026, time.July, 28, 0, 0, 0, 0, time.UTC)
	ledger := &domain.Ledger{
		AccountID:      accountID,
		WindowStart:    windowStart,
		OpeningBalance: decimal.NewFromInt(1000),
		ClosingBalance: decimal.NewFromInt(1200),
		Transactions: []domain.Transaction{
			{
				Date:          windowStart.AddDate(0, 0, 5),
				Concept:       "B-0002-00001234 - Corralón San José",
				Debit:         decimal.NewFromInt(500),
				Credit:        decimal.Zero,
				Balance:       decimal.NewFromInt(1500),
				Kind:          domain.Charge,
				SourceID:      31,
				SourceSubtype: domain.Delivery,
			},
			{
				Date:     windowStart.AddDate(0, 0, 6),
				Concept:  "Pago - Transferencia",
				Debit:    decimal.Zero,
				Credit:   decimal.NewFromInt(300),
				Balance:  decimal.NewFromInt(1200),
				Kind:     domain.Payment,
				SourceID: 32,
			},
		},
	}

	suite.mockLedgerService.On("BuildLedger", mock.Anything, accountID, 0).Return(ledger, nil).Once()

	w := suite.doRequest(fmt.Sprintf("/api/v1/accounts/%d/ledger", accountID), true)

	suite.Equal(http.StatusOK, w.Code)

	var response dto.LedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(accountID, response.AccountID)
	suite.Equal("2026-07-28", response.WindowStart)
	suite.True(response.OpeningBalance.Equal(decimal.NewFromInt(1000)))
	suite.True(response.TotalBalance.Equal(decimal.NewFromInt(1200)))
	suite.Require().Len(response.Transactions, 2)
	suite.Equal("2026-08-02", response.Transactions[0].Date)
	suite.Equal("CHARGE", response.Transactions[0].Type)
	suite.Equal("DELIVERY", response.Transactions[0].SourceSubtype)
	suite.True(response.Transactions[1].Balance.Equal(decimal.NewFromInt(1200)))

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetLedger_ForwardsWindowDays() {
	accountID := int64(7)
	ledger := &domain.Ledger{
		AccountID:      accountID,
		WindowStart:    time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC),
		OpeningBalance: decimal.Zero,
		ClosingBalance: decimal.Zero,
		Transactions:   []domain.Transaction{},
	}
	suite.mockLedgerService.On("BuildLedger", mock.Anything, accountID, 7).Return(ledger, nil).Once()

	w := suite.doRequest(fmt.Sprintf("/api/v1/accounts/%d/ledger?windowDays=7", accountID), true)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetLedger_AccountNotFound() {
	suite.mockLedgerService.On("BuildLedger", mock.Anything, int64(999), 0).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest("/api/v1/accounts/999/ledger", true)

	suite.Equal(http.StatusNotFound, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Account not found", body["error"])
}

func (suite *LedgerHandlerTestSuite) TestGetLedger_SourceUnavailable() {
	suite.mockLedgerService.On("BuildLedger", mock.Anything, int64(7), 0).
		Return(nil, fmt.Errorf("%w: aggregating charges: connection refused", apperrors.ErrSourceUnavailable)).Once()

	w := suite.doRequest("/api/v1/accounts/7/ledger", true)

	suite.Equal(http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.NotEmpty(body["error"])
}

func (suite *LedgerHandlerTestSuite) TestGetLedger_InvalidAccountID() {
	w := suite.doRequest("/api/v1/accounts/not-a-number/ledger", true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "BuildLedger")
}

func (suite *LedgerHandlerTestSuite) TestGetLedger_InvalidWindowDays() {
	w := suite.doRequest("/api/v1/accounts/7/ledger?windowDays=9999", true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "BuildLedger")
}

func (suite *LedgerHandlerTestSuite) TestGetLedger_Unauthenticated() {
	w := suite.doRequest("/api/v1/accounts/7/ledger", false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "BuildLedger")
}

// --- Run Test Suite ---
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
