package domain

import "github.com/govalues/decimal"

type DiscountType string

const (
	DiscountTypePercent DiscountType = "PERCENT"
	DiscountTypeFixed   DiscountType = "FIXED"
)

type DiscountCode struct {
	Code   string
	Type   DiscountType
	Value  decimal.Decimal
	Active bool
}
