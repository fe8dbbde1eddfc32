package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
)

// CodeDiscountResolver resolves discount codes against the store.
type CodeDiscountResolver struct {
	repo port.Repository
}

func NewCodeDiscountResolver(repo port.Repository) *CodeDiscountResolver {
	return &CodeDiscountResolver{repo: repo}
}

func (r *CodeDiscountResolver) Resolve(ctx context.Context, code string,
	subtotal decimal.Decimal) (decimal.Decimal, error) {
	discount, err := r.repo.GetDiscountCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return decimal.Decimal{}, domain.ErrDiscountCodeInvalid
		}
		return decimal.Decimal{}, err
	}
	if !discount.Active {
		return decimal.Decimal{}, domain.ErrDiscountCodeInvalid
	}

	switch discount.Type {
	case domain.DiscountTypePercent:
		fraction, err := discount.Value.Quo(decimal.Hundred)
		if err != nil {
			return decimal.Decimal{}, err
		}
		amount, err := subtotal.Mul(fraction)
		if err != nil {
			return decimal.Decimal{}, err
		}
		return roundHalfUp(amount)
	case domain.DiscountTypeFixed:
		return discount.Value, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unknown discount type %s", discount.Type)
	}
}

// ZoneShippingCalculator prices shipping from the destination country: a
// flat domestic rate for the home country, a flat international rate
// otherwise.
type ZoneShippingCalculator struct {
	repo          port.Repository
	homeCountry   string
	domestic      decimal.Decimal
	international decimal.Decimal
}

func NewZoneShippingCalculator(repo port.Repository, homeCountry string,
	domestic, international decimal.Decimal) *ZoneShippingCalculator {
	return &ZoneShippingCalculator{
		repo:          repo,
		homeCountry:   homeCountry,
		domestic:      domestic,
		international: international,
	}
}

func (c *ZoneShippingCalculator) Cost(ctx context.Context, addressID uint64) (decimal.Decimal, error) {
	address, err := c.repo.GetAddress(ctx, addressID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if address.Country == c.homeCountry {
		return c.domestic, nil
	}
	return c.international, nil
}

// FlatTaxCalculator applies a flat rate. The raw tax amount is returned
// unrounded; rounding happens once on the final total.
type FlatTaxCalculator struct {
	rate decimal.Decimal
}

func NewFlatTaxCalculator(rate decimal.Decimal) *FlatTaxCalculator {
	return &FlatTaxCalculator{rate: rate}
}

func (c *FlatTaxCalculator) Tax(_ context.Context, taxable decimal.Decimal) (decimal.Decimal, error) {
	return taxable.Mul(c.rate)
}
