package issue

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtlib "github.com/magabrotheeeer/buysellpoint/internal/lib/jwt"
)

func TestIssueHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	maker := jwtlib.NewMaker("test_secret_key", time.Hour)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "успешный выпуск токена",
			body:           `{"email":"buyer@example.com","name":"Buyer"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"`,
		},
		{
			name:           "отсутствует email",
			body:           `{"name":"Buyer"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"field email is a required field"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"email":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"invalid request body"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(logger, maker)

			req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestIssueHandler_TokenCarriesEmail(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	maker := jwtlib.NewMaker("test_secret_key", time.Hour)
	handler := New(logger, maker)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"buyer@example.com"}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := maker.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}
