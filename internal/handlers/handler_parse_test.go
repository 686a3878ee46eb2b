package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/centsworth/monetize_app/internal/apperrors"
	"github.com/centsworth/monetize_app/internal/core/services"
	"github.com/centsworth/monetize_app/internal/dto"
	"github.com/centsworth/monetize_app/internal/handlers"
	"github.com/centsworth/monetize_app/internal/models"
	"github.com/centsworth/monetize_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository backing the real services ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency models.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Currency), args.Error(1)
}

// --- Test Suite ---
type ParseHandlerTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	router   *gin.Engine
}

func (suite *ParseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockRepo = new(MockCurrencyRepository)
	currencyService := services.NewCurrencyService(suite.mockRepo)
	parserService := services.NewParserService(currencyService, services.ParserDefaults{
		DefaultCurrency:  "USD",
		AssumeFromSymbol: true,
	})

	cfg := &config.Config{ParseRateLimit: "100-S"}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &handlers.ServiceContainer{
		Currency: currencyService,
		Parser:   parserService,
	})
}

func (suite *ParseHandlerTestSuite) stubCurrency(code, mark string, subunitToUnit int64, places int) {
	suite.mockRepo.On("FindCurrencyByCode", mock.Anything, code).Return(&models.Currency{
		CurrencyCode:  code,
		DecimalMark:   mark,
		SubunitToUnit: subunitToUnit,
		DecimalPlaces: places,
	}, nil)
}

func (suite *ParseHandlerTestSuite) postParse(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ParseHandlerTestSuite) TestParseAmount_OK() {
	suite.stubCurrency("USD", ".", 100, 2)

	w := suite.postParse(gin.H{"amount": "$1,234.56"})

	suite.Equal(http.StatusOK, w.Code)

	var res dto.ParseAmountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("123456", res.Subunits)
	suite.Equal("USD", res.CurrencyCode)
}

func (suite *ParseHandlerTestSuite) TestParseAmount_NumericAmount() {
	suite.stubCurrency("USD", ".", 100, 2)

	w := suite.postParse(gin.H{"amount": 12.34})

	suite.Equal(http.StatusOK, w.Code)

	var res dto.ParseAmountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("1234", res.Subunits)
}

func (suite *ParseHandlerTestSuite) TestParseAmount_InvalidAmount() {
	suite.stubCurrency("USD", ".", 100, 2)

	w := suite.postParse(gin.H{"amount": "12-34"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *ParseHandlerTestSuite) TestParseAmount_UnsupportedAmountType() {
	w := suite.postParse(gin.H{"amount": true})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ParseHandlerTestSuite) TestParseAmount_UnknownCurrency() {
	suite.mockRepo.On("FindCurrencyByCode", mock.Anything, "XYZ").Return(nil, apperrors.ErrNotFound)

	w := suite.postParse(gin.H{"amount": "100 XYZ"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *ParseHandlerTestSuite) TestParseAmount_MissingAmount() {
	w := suite.postParse(gin.H{"currency": "USD"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestParseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ParseHandlerTestSuite))
}
