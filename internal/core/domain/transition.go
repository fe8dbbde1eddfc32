package domain

// StatusTransition is the pair of local statuses implied by a gateway status.
type StatusTransition struct {
	Payment PaymentStatus
	Order   OrderStatus
}

// gatewayTransitions is the single source of truth for mapping gateway
// statuses onto local Payment and Order statuses. The synchronous confirm
// path and the webhook reconciliation path both resolve through it so the
// two can not diverge.
var gatewayTransitions = map[GatewayStatus]StatusTransition{
	GatewayStatusSucceeded:             {PaymentStatusSucceeded, OrderStatusCompleted},
	GatewayStatusRequiresAction:        {PaymentStatusRequiresAction, OrderStatusPending},
	GatewayStatusRequiresPaymentMethod: {PaymentStatusRequiresPaymentMethod, OrderStatusPending},
	GatewayStatusProcessing:            {PaymentStatusProcessing, OrderStatusPending},
	GatewayStatusCanceled:              {PaymentStatusCanceled, OrderStatusCancelled},
}

// ResolveGatewayStatus maps a gateway status to local statuses. Any status
// not in the table resolves to the failed transition.
func ResolveGatewayStatus(status GatewayStatus) StatusTransition {
	if t, ok := gatewayTransitions[status]; ok {
		return t
	}
	return FailedTransition()
}

// FailedTransition marks the payment failed and leaves the order retryable.
// Used for unknown gateway statuses and for failure webhook events.
func FailedTransition() StatusTransition {
	return StatusTransition{PaymentStatusFailed, OrderStatusPending}
}
