package middlewarectx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtlib "github.com/magabrotheeeer/buysellpoint/internal/lib/jwt"
)

func TestJWTMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	maker := jwtlib.NewMaker("test_secret_key", time.Hour)

	validToken, err := maker.GenerateToken(map[string]any{"email": "buyer@example.com"})
	require.NoError(t, err)

	expiredToken, err := jwtlib.NewMaker("test_secret_key", -time.Hour).
		GenerateToken(map[string]any{"email": "buyer@example.com"})
	require.NoError(t, err)

	foreignToken, err := jwtlib.NewMaker("another_secret_key", time.Hour).
		GenerateToken(map[string]any{"email": "buyer@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "без заголовка Authorization",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "заголовок без префикса Bearer",
			authHeader:     validToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "просроченный токен",
			authHeader:     "Bearer " + expiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "токен с чужой подписью",
			authHeader:     "Bearer " + foreignToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "валидный токен",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotEmail string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotEmail, _ = EmailFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/selectedProduct", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			JWTMiddleware(maker, logger)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectNext {
				assert.Equal(t, "buyer@example.com", gotEmail)
			} else {
				// единое тело отказа вне зависимости от причины
				assert.JSONEq(t, `{"error":true,"message":"unauthorized access"}`, w.Body.String())
				assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			}
		})
	}
}
