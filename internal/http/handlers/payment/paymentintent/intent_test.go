package paymentintent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/buysellpoint/internal/paymentprovider"
)

// MockProvider реализует интерфейс paymentintent.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreatePaymentIntent(ctx context.Context, amountCents int64) (*paymentprovider.PaymentIntent, error) {
	args := m.Called(ctx, amountCents)
	if res := args.Get(0); res != nil {
		return res.(*paymentprovider.PaymentIntent), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestIntentHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное создание намерения, цена в центах",
			body: `{"price": 49.99}`,
			setupMock: func(m *MockProvider) {
				intent := &paymentprovider.PaymentIntent{
					ID:           "pi_12345",
					ClientSecret: "pi_12345_secret_67890",
				}
				m.On("CreatePaymentIntent", mock.Anything, int64(4999)).Return(intent, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"clientSecret":"pi_12345_secret_67890"}`,
		},
		{
			name: "доли цента отбрасываются усечением",
			body: `{"price": 19.99}`,
			setupMock: func(m *MockProvider) {
				intent := &paymentprovider.PaymentIntent{
					ID:           "pi_trunc",
					ClientSecret: "pi_trunc_secret",
				}
				m.On("CreatePaymentIntent", mock.Anything, int64(1998)).Return(intent, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"clientSecret":"pi_trunc_secret"}`,
		},
		{
			name:           "отсутствует цена",
			body:           `{}`,
			setupMock:      func(_ *MockProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"field Price is a required field"`,
		},
		{
			name:           "отрицательная цена",
			body:           `{"price": -5}`,
			setupMock:      func(_ *MockProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":true`,
		},
		{
			name: "ошибка процессинга",
			body: `{"price": 10}`,
			setupMock: func(m *MockProvider) {
				m.On("CreatePaymentIntent", mock.Anything, int64(1000)).
					Return(nil, errors.New("stripe unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"could not create payment intent"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProvider := new(MockProvider)
			tt.setupMock(mockProvider)

			handler := New(logger, mockProvider)

			req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockProvider.AssertExpectations(t)
		})
	}
}
