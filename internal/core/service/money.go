package service

import (
	"fmt"

	"github.com/govalues/decimal"
)

// roundHalfUp rounds a non-negative amount half-up to the currency's two
// minor-unit decimals (102.125 rounds to 102.13).
func roundHalfUp(d decimal.Decimal) (decimal.Decimal, error) {
	half, err := decimal.New(5, 3)
	if err != nil {
		return decimal.Decimal{}, err
	}
	sum, err := d.Add(half)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return sum.Trunc(2), nil
}

// minorUnits converts a rounded amount into integer minor units for the
// gateway (dollars to cents).
func minorUnits(d decimal.Decimal) (int64, error) {
	whole, frac, ok := d.Int64(2)
	if !ok {
		return 0, fmt.Errorf("amount %s does not fit in minor units", d)
	}
	return whole*100 + frac, nil
}
