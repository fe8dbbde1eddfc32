package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/velmart/storefront/internal/adapter/config"
	"github.com/velmart/storefront/internal/adapter/gateway"
	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

func newServerClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger, _ := zap.NewProduction()
	client, err := gateway.NewClient(&config.Gateway{
		BaseURL:        server.URL,
		SecretKey:      "sk_test",
		WebhookSecret:  testSecret,
		Currency:       "usd",
		TimeoutSeconds: 2,
	}, logger)
	assert.NoError(t, err)
	return client
}

func TestClient_CreateIntent(t *testing.T) {
	t.Run("creates an unconfirmed intent", func(t *testing.T) {
		client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payment_intents", r.URL.Path)
			assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "10213", r.PostForm.Get("amount"))
			assert.Equal(t, "usd", r.PostForm.Get("currency"))
			assert.Equal(t, "pm_card", r.PostForm.Get("payment_method"))
			assert.Equal(t, "false", r.PostForm.Get("confirm"))
			assert.Equal(t, "10", r.PostForm.Get("metadata[orderId]"))
			assert.Equal(t, "55", r.PostForm.Get("metadata[paymentId]"))
			assert.Equal(t, "1", r.PostForm.Get("metadata[userId]"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret","status":"requires_confirmation"}`))
		})

		intent, err := client.CreateIntent(context.Background(), 10213, "usd", "pm_card",
			port.IntentMetadata{OrderID: 10, PaymentID: 55, UserID: 1})
		assert.NoError(t, err)
		assert.Equal(t, "pi_1", intent.GatewayRef)
		assert.Equal(t, "pi_1_secret", intent.ClientSecret)
	})

	t.Run("card error maps to rejection", func(t *testing.T) {
		client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"error":{"type":"card_error","message":"Your card was declined."}}`))
		})

		_, err := client.CreateIntent(context.Background(), 100, "usd", "pm_card",
			port.IntentMetadata{OrderID: 10, PaymentID: 55, UserID: 1})
		assert.ErrorIs(t, err, domain.ErrGatewayRejected)
		assert.ErrorContains(t, err, "Your card was declined.")
	})

	t.Run("server error maps to unavailable", func(t *testing.T) {
		client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.CreateIntent(context.Background(), 100, "usd", "pm_card",
			port.IntentMetadata{OrderID: 10, PaymentID: 55, UserID: 1})
		assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	})
}

func TestClient_ConfirmIntent(t *testing.T) {
	t.Run("returns the gateway status", func(t *testing.T) {
		client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payment_intents/pi_1/confirm", r.URL.Path)
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "pm_card", r.PostForm.Get("payment_method"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_1","status":"succeeded"}`))
		})

		status, err := client.ConfirmIntent(context.Background(), "pi_1", "pm_card")
		assert.NoError(t, err)
		assert.Equal(t, domain.GatewayStatusSucceeded, status)
	})

	t.Run("rejection carries the gateway message", func(t *testing.T) {
		client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such payment_intent."}}`))
		})

		_, err := client.ConfirmIntent(context.Background(), "pi_gone", "pm_card")
		assert.ErrorIs(t, err, domain.ErrGatewayRejected)
	})
}
