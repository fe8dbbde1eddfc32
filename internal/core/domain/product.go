package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type Product struct {
	ID          uint64
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int64
	InStock     bool
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Review struct {
	ID         uint64
	UserID     uint64
	ProductID  uint64
	StarRating int
	Comment    string
	CreatedAt  time.Time
}
