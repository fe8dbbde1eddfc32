package gateway

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/velmart/storefront/internal/adapter/config"
	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

// Client talks to a Stripe-style payment processor over its REST API.
type Client struct {
	http          *resty.Client
	webhookSecret string
	logger        *zap.Logger
}

func NewClient(cfg *config.Gateway, log *zap.Logger) (*Client, error) {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetAuthToken(cfg.SecretKey)

	return &Client{
		http:          httpClient,
		webhookSecret: cfg.WebhookSecret,
		logger:        log,
	}, nil
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent creates an unconfirmed payment intent. Confirmation happens
// client-side or through ConfirmIntent.
func (c *Client) CreateIntent(ctx context.Context, amountMinor int64, currency string,
	paymentMethod string, meta port.IntentMetadata) (*port.PaymentIntent, error) {
	var result intentResponse
	var gwErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetFormData(map[string]string{
			"amount":              strconv.FormatInt(amountMinor, 10),
			"currency":            currency,
			"payment_method":      paymentMethod,
			"confirm":             "false",
			"capture_method":      "automatic",
			"metadata[orderId]":   strconv.FormatUint(meta.OrderID, 10),
			"metadata[paymentId]": strconv.FormatUint(meta.PaymentID, 10),
			"metadata[userId]":    strconv.FormatUint(meta.UserID, 10),
		}).
		SetResult(&result).
		SetError(&gwErr).
		Post("/v1/payment_intents")
	if err != nil {
		return nil, fmt.Errorf("%w: create intent: %v", domain.ErrGatewayUnavailable, err)
	}
	if resp.IsError() {
		return nil, c.responseError(resp.StatusCode(), "create intent", &gwErr)
	}

	c.logger.Debug("created payment intent",
		zap.String("intent", result.ID), zap.Int64("amount", amountMinor))

	return &port.PaymentIntent{
		GatewayRef:   result.ID,
		ClientSecret: result.ClientSecret,
	}, nil
}

func (c *Client) ConfirmIntent(ctx context.Context, gatewayRef string,
	paymentMethod string) (domain.GatewayStatus, error) {
	var result intentResponse
	var gwErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"payment_method": paymentMethod,
		}).
		SetResult(&result).
		SetError(&gwErr).
		Post("/v1/payment_intents/" + gatewayRef + "/confirm")
	if err != nil {
		return "", fmt.Errorf("%w: confirm intent: %v", domain.ErrGatewayUnavailable, err)
	}
	if resp.IsError() {
		return "", c.responseError(resp.StatusCode(), "confirm intent", &gwErr)
	}

	c.logger.Debug("confirmed payment intent",
		zap.String("intent", gatewayRef), zap.String("status", result.Status))

	return domain.GatewayStatus(result.Status), nil
}

func (c *Client) responseError(statusCode int, op string, gwErr *errorResponse) error {
	if statusCode >= 500 {
		return fmt.Errorf("%w: %s: status %d", domain.ErrGatewayUnavailable, op, statusCode)
	}
	return fmt.Errorf("%w: %s: %s", domain.ErrGatewayRejected, op, gwErr.Error.Message)
}
