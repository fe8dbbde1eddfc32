package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentStatus string

const (
	PaymentStatusRequiresPaymentMethod PaymentStatus = "REQUIRES_PAYMENT_METHOD"
	PaymentStatusRequiresAction        PaymentStatus = "REQUIRES_ACTION"
	PaymentStatusProcessing            PaymentStatus = "PROCESSING"
	PaymentStatusSucceeded             PaymentStatus = "SUCCEEDED"
	PaymentStatusCanceled              PaymentStatus = "CANCELED"
	PaymentStatusFailed                PaymentStatus = "FAILED"
)

// GatewayStatus is a payment intent status as reported by the external
// processor. Unknown values are mapped to a failed transition, never rejected.
type GatewayStatus string

const (
	GatewayStatusSucceeded             GatewayStatus = "succeeded"
	GatewayStatusRequiresAction        GatewayStatus = "requires_action"
	GatewayStatusRequiresPaymentMethod GatewayStatus = "requires_payment_method"
	GatewayStatusProcessing            GatewayStatus = "processing"
	GatewayStatusCanceled              GatewayStatus = "canceled"
)

type Payment struct {
	ID         uint64
	OrderID    uint64
	UserID     uint64
	Amount     decimal.Decimal
	GatewayRef string
	Status     PaymentStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type GatewayEventType string

const (
	GatewayEventPaymentSucceeded GatewayEventType = "payment_intent.succeeded"
	GatewayEventPaymentFailed    GatewayEventType = "payment_intent.payment_failed"
)

// GatewayEvent is a signature-verified webhook notification.
type GatewayEvent struct {
	Type       GatewayEventType
	GatewayRef string
}

// CheckoutResult is returned to the client after a purchase is initiated.
type CheckoutResult struct {
	PaymentID    uint64
	ClientSecret string
	Amount       decimal.Decimal
	Discount     decimal.Decimal
	ShippingCost decimal.Decimal
	Tax          decimal.Decimal
}

// ConfirmResult reports the statuses after a server-side confirmation.
type ConfirmResult struct {
	GatewayStatus GatewayStatus
	PaymentStatus PaymentStatus
	OrderStatus   OrderStatus
}
