package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/velmart/storefront/internal/core/domain"
)

func TestResolveGatewayStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.GatewayStatus
		expPayment domain.PaymentStatus
		expOrder   domain.OrderStatus
	}{
		{"succeeded", domain.GatewayStatusSucceeded, domain.PaymentStatusSucceeded, domain.OrderStatusCompleted},
		{"requires action", domain.GatewayStatusRequiresAction, domain.PaymentStatusRequiresAction, domain.OrderStatusPending},
		{"requires payment method", domain.GatewayStatusRequiresPaymentMethod, domain.PaymentStatusRequiresPaymentMethod, domain.OrderStatusPending},
		{"processing", domain.GatewayStatusProcessing, domain.PaymentStatusProcessing, domain.OrderStatusPending},
		{"canceled", domain.GatewayStatusCanceled, domain.PaymentStatusCanceled, domain.OrderStatusCancelled},
		{"unknown maps to failed", domain.GatewayStatus("requires_capture"), domain.PaymentStatusFailed, domain.OrderStatusPending},
		{"empty maps to failed", domain.GatewayStatus(""), domain.PaymentStatusFailed, domain.OrderStatusPending},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			transition := domain.ResolveGatewayStatus(test.status)
			assert.Equal(t, test.expPayment, transition.Payment)
			assert.Equal(t, test.expOrder, transition.Order)
		})
	}
}

func TestOrderStatusPurchasable(t *testing.T) {
	tests := []struct {
		status      domain.OrderStatus
		purchasable bool
	}{
		{domain.OrderStatusPending, true},
		{domain.OrderStatusProcessing, true},
		{domain.OrderStatusCompleted, false},
		{domain.OrderStatusCancelled, false},
		{domain.OrderStatusRefunded, false},
	}

	for _, test := range tests {
		assert.Equal(t, test.purchasable, test.status.Purchasable(), string(test.status))
	}
}

func TestOrderStatusValid(t *testing.T) {
	known := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusProcessing,
		domain.OrderStatusCompleted,
		domain.OrderStatusCancelled,
		domain.OrderStatusRefunded,
	}
	for _, status := range known {
		assert.True(t, status.Valid(), string(status))
	}

	for _, status := range []domain.OrderStatus{"", "TOTALLY_BOGUS", "pending"} {
		assert.False(t, status.Valid(), string(status))
	}
}
