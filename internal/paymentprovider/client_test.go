package paymentprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "4999", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, []string{"card"}, r.PostForm["payment_method_types[]"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "pi_12345",
			"amount": 4999,
			"currency": "usd",
			"status": "requires_payment_method",
			"client_secret": "pi_12345_secret_67890"
		}`))
	}))
	defer server.Close()

	client := NewClient("sk_test_123")
	client.apiURL = server.URL

	intent, err := client.CreatePaymentIntent(context.Background(), 4999)
	require.NoError(t, err)
	assert.Equal(t, "pi_12345", intent.ID)
	assert.Equal(t, "pi_12345_secret_67890", intent.ClientSecret)
}

func TestCreatePaymentIntent_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("sk_test_bad")
	client.apiURL = server.URL

	_, err := client.CreatePaymentIntent(context.Background(), 100)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
