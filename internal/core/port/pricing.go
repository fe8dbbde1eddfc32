package port

import (
	"context"

	"github.com/govalues/decimal"
)

//go:generate mockgen -source=pricing.go -destination=mock/pricing.go -package=mock

// DiscountResolver resolves a discount code to a monetary amount off the
// given subtotal.
type DiscountResolver interface {
	Resolve(ctx context.Context, code string, subtotal decimal.Decimal) (decimal.Decimal, error)
}

// ShippingCalculator prices delivery to a stored address.
type ShippingCalculator interface {
	Cost(ctx context.Context, addressID uint64) (decimal.Decimal, error)
}

// TaxCalculator computes tax on the taxable amount.
type TaxCalculator interface {
	Tax(ctx context.Context, taxable decimal.Decimal) (decimal.Decimal, error)
}
