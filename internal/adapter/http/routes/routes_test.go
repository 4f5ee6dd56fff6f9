package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"financier/internal/adapter/http/handlers/mocks"
	"financier/internal/domain/entities"
	"financier/internal/infrastructure/config"
	"financier/internal/infrastructure/logger"
	"financier/internal/infrastructure/payments"
	"financier/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := NewRouter(testLogger(), mocks.NewMockIBillingUseCase(ctrl), false)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get(logger.RequestIDHeader))
	})

	t.Run("request id is echoed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := NewRouter(testLogger(), mocks.NewMockIBillingUseCase(ctrl), false)

		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set(logger.RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Header().Get(logger.RequestIDHeader))
	})

	t.Run("tokens are not routed against the live gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := NewRouter(testLogger(), mocks.NewMockIBillingUseCase(ctrl), false)

		req := httptest.NewRequest(http.MethodPost, "/v1/tokens", strings.NewReader(`{"card":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("tokens are routed in mock mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBillingUseCase(ctrl)
		uc.EXPECT().CreateToken(gomock.Any(), "", gomock.Any()).Return(entities.Token{"id": "tok_1"}, nil)
		router := NewRouter(testLogger(), uc, true)

		req := httptest.NewRequest(http.MethodPost, "/v1/tokens", strings.NewReader(`{"card":{"number":"4242424242424242"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := NewRouter(testLogger(), mocks.NewMockIBillingUseCase(ctrl), false)

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "financier_http_requests_total")
	})
}

func TestNewPaymentGateway(t *testing.T) {
	t.Run("mock mode", func(t *testing.T) {
		gateway := newPaymentGateway(config.Config{GatewayMock: true}, testLogger())
		_, ok := gateway.(*payments.FakeGateway)
		assert.True(t, ok)
	})

	t.Run("stripe", func(t *testing.T) {
		gateway := newPaymentGateway(config.Config{StripeSecretKey: "sk_test_123"}, testLogger())
		_, ok := gateway.(*payments.StripeGateway)
		assert.True(t, ok)
	})

	t.Run("unconfigured", func(t *testing.T) {
		gateway := newPaymentGateway(config.Config{}, testLogger())
		assert.Nil(t, gateway)

		uc := usecase.NewBillingUseCase(nil, gateway, usecase.Attributes{}, nil)
		_, err := uc.GetCustomer(t.Context(), "user-1")
		assert.ErrorIs(t, err, usecase.ErrPaymentGatewayUnavailable)
	})
}
