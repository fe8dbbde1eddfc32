package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

// terminalOrderStatuses are the statuses in which an order can no longer be purchased.
var terminalOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
	OrderStatusRefunded:  {},
}

var orderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:    {},
	OrderStatusProcessing: {},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
}

func (s OrderStatus) Purchasable() bool {
	_, terminal := terminalOrderStatuses[s]
	return !terminal
}

// Valid reports whether s belongs to the closed order status set. The status
// column is plain text, so writes have to check this before persisting.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

type Order struct {
	ID                uint64
	UserID            uint64
	Items             []*OrderItem
	ShippingAddressID *uint64
	BillingAddressID  *uint64
	Total             decimal.Decimal
	Status            OrderStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItem snapshots the product price at order time. Price is never
// re-derived from the current catalog price once the order is placed.
type OrderItem struct {
	ID        uint64
	OrderID   uint64
	ProductID uint64
	Quantity  int64
	Price     decimal.Decimal
	Product   *Product
}
