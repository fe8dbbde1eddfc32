package port

import (
	"context"

	"github.com/velmart/storefront/internal/core/domain"
)

// PaymentIntent is the processor-side representation of an attempted charge.
type PaymentIntent struct {
	GatewayRef   string
	ClientSecret string
}

// IntentMetadata is attached to the intent for webhook correlation.
type IntentMetadata struct {
	OrderID   uint64
	PaymentID uint64
	UserID    uint64
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	// CreateIntent creates an unconfirmed intent for amount in minor units.
	CreateIntent(ctx context.Context, amountMinor int64, currency string,
		paymentMethod string, meta IntentMetadata) (*PaymentIntent, error)

	// ConfirmIntent confirms an existing intent and reports its status.
	ConfirmIntent(ctx context.Context, gatewayRef string, paymentMethod string) (domain.GatewayStatus, error)

	// VerifyAndParseEvent checks the webhook signature against the raw
	// request body and returns the parsed event, or ErrSignatureInvalid.
	VerifyAndParseEvent(payload []byte, signatureHeader string) (*domain.GatewayEvent, error)
}
