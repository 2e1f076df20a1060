package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/buysellpoint/internal/models"
	"github.com/magabrotheeeer/buysellpoint/internal/storage/mongodb"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, id bson.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	productID := bson.NewObjectID()

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение товара",
			id:   productID.Hex(),
			setupMock: func(m *MockService) {
				product := &models.Product{
					ID:        productID,
					Name:      "Vintage Camera",
					Price:     149.99,
					Available: 3,
				}
				m.On("Read", mock.Anything, productID).Return(product, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Vintage Camera"`,
		},
		{
			name:           "некорректный id в URL",
			id:             "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":true,"message":"invalid id"}`,
		},
		{
			name: "товар не найден",
			id:   productID.Hex(),
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, productID).Return(nil, mongodb.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":true,"message":"product not found"}`,
		},
		{
			name: "ошибка сервиса чтения",
			id:   productID.Hex(),
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, productID).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":true,"message":"could not read product"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/product/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
