package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/middleware"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) CurrentMonthSummary(ctx context.Context, userID string) (*domain.LedgerReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerReport), args.Error(1)
}

func (m *MockLedgerService) YearlySummary(ctx context.Context, userID string) ([]domain.YearlySummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YearlySummary), args.Error(1)
}

func (m *MockLedgerService) RecordEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

// generateTestToken creates a signed JWT for the given user.
func (suite *LedgerHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fda-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerLedgerRoutes(v1, suite.mockLedgerService)
}

func (suite *LedgerHandlerTestSuite) doRequest(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *LedgerHandlerTestSuite) TestGetCurrentMonth_Success() {
	userID := "user-1"
	clientID := "client-1"
	report := &domain.LedgerReport{
		Summary: domain.MonthSummary{
			Income:  decimal.RequireFromString("1750"),
			Expense: decimal.RequireFromString("600.25"),
			Profit:  decimal.RequireFromString("1149.75"),
		},
		Entries: []domain.LedgerEntry{
			{
				EntryID:       "entry-1",
				UserID:        userID,
				EntryDate:     time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
				EntryType:     domain.EntryIncome,
				Amount:        decimal.RequireFromString("1750"),
				Description:   "Payment received for INV-1001",
				ReferenceID:   "INV-1001",
				ReferenceType: domain.RefClientTransaction,
				ClientID:      &clientID,
				ClientName:    "Acme Corp",
			},
		},
	}
	suite.mockLedgerService.On("CurrentMonthSummary", mock.Anything, userID).Return(report, nil)

	rec := suite.doRequest(http.MethodGet, "/api/v1/ledger/current-month", suite.generateTestToken(userID))

	suite.Equal(http.StatusOK, rec.Code)
	var body map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.JSONEq(`true`, string(body["success"]))
	suite.JSONEq(`{"income":"1750","expense":"600.25","profit":"1149.75"}`, string(body["summary"]))

	var entries []map[string]any
	suite.Require().NoError(json.Unmarshal(body["entries"], &entries))
	suite.Require().Len(entries, 1)
	suite.Equal("entry-1", entries[0]["entryID"])
	suite.Equal("Acme Corp", entries[0]["clientName"])
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetCurrentMonth_ServiceFailure() {
	userID := "user-1"
	suite.mockLedgerService.On("CurrentMonthSummary", mock.Anything, userID).
		Return(nil, fmt.Errorf("connection refused"))

	rec := suite.doRequest(http.MethodGet, "/api/v1/ledger/current-month", suite.generateTestToken(userID))

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.JSONEq(`{"success":false,"error":"Failed to fetch ledger summary"}`, rec.Body.String())
}

func (suite *LedgerHandlerTestSuite) TestGetCurrentMonth_MissingToken() {
	rec := suite.doRequest(http.MethodGet, "/api/v1/ledger/current-month", "")

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CurrentMonthSummary", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestGetYearlySummary_Success() {
	userID := "user-1"
	years := []domain.YearlySummary{
		{Year: 2020, Income: decimal.Zero, Expense: decimal.Zero, Profit: decimal.Zero},
		{Year: 2021, Income: decimal.Zero, Expense: decimal.Zero, Profit: decimal.Zero},
		{Year: 2022, Income: decimal.RequireFromString("1000"), Expense: decimal.RequireFromString("400"), Profit: decimal.RequireFromString("600")},
		{Year: 2023, Income: decimal.Zero, Expense: decimal.Zero, Profit: decimal.Zero},
		{Year: 2024, Income: decimal.RequireFromString("500"), Expense: decimal.RequireFromString("250"), Profit: decimal.RequireFromString("250")},
	}
	suite.mockLedgerService.On("YearlySummary", mock.Anything, userID).Return(years, nil)

	rec := suite.doRequest(http.MethodGet, "/api/v1/ledger/yearly-summary", suite.generateTestToken(userID))

	suite.Equal(http.StatusOK, rec.Code)
	var body struct {
		Success bool `json:"success"`
		Years   []struct {
			Year   int    `json:"year"`
			Income string `json:"income"`
			Profit string `json:"profit"`
		} `json:"years"`
	}
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.True(body.Success)
	suite.Require().Len(body.Years, 5)
	suite.Equal(2020, body.Years[0].Year)
	suite.Equal("0", body.Years[0].Income)
	suite.Equal(2022, body.Years[2].Year)
	suite.Equal("600", body.Years[2].Profit)
	suite.Equal(2024, body.Years[4].Year)
}

func (suite *LedgerHandlerTestSuite) TestGetYearlySummary_ServiceFailure() {
	userID := "user-1"
	suite.mockLedgerService.On("YearlySummary", mock.Anything, userID).
		Return(nil, fmt.Errorf("connection refused"))

	rec := suite.doRequest(http.MethodGet, "/api/v1/ledger/yearly-summary", suite.generateTestToken(userID))

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.JSONEq(`{"success":false,"error":"Failed to fetch yearly summary"}`, rec.Body.String())
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
