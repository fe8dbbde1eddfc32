package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port/mock"
	"github.com/velmart/storefront/internal/core/service"
)

func TestCodeDiscountResolver(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	subtotal := decimal.MustParse("95.50")

	type discountTest struct {
		name      string
		code      string
		mock      func(repo *mock.MockRepository)
		expError  error
		expAmount string
	}

	tests := []discountTest{
		{
			name: "percent discount rounds half up",
			code: "TEN",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetDiscountCode(gomock.Any(), "TEN").
					Return(&domain.DiscountCode{
						Code: "TEN", Type: domain.DiscountTypePercent,
						Value: decimal.MustParse("10"), Active: true,
					}, nil)
			},
			expAmount: "9.55",
		},
		{
			name: "percent discount with a fractional result",
			code: "SEVEN",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetDiscountCode(gomock.Any(), "SEVEN").
					Return(&domain.DiscountCode{
						Code: "SEVEN", Type: domain.DiscountTypePercent,
						Value: decimal.MustParse("7"), Active: true,
					}, nil)
			},
			// 95.50 * 0.07 = 6.685, rounds to 6.69.
			expAmount: "6.69",
		},
		{
			name: "fixed discount returns its value untouched",
			code: "FIVEOFF",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetDiscountCode(gomock.Any(), "FIVEOFF").
					Return(&domain.DiscountCode{
						Code: "FIVEOFF", Type: domain.DiscountTypeFixed,
						Value: decimal.MustParse("5.00"), Active: true,
					}, nil)
			},
			expAmount: "5.00",
		},
		{
			name: "unknown code",
			code: "NOPE",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetDiscountCode(gomock.Any(), "NOPE").
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDiscountCodeInvalid,
		},
		{
			name: "inactive code",
			code: "EXPIRED",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetDiscountCode(gomock.Any(), "EXPIRED").
					Return(&domain.DiscountCode{
						Code: "EXPIRED", Type: domain.DiscountTypeFixed,
						Value: decimal.MustParse("5.00"), Active: false,
					}, nil)
			},
			expError: domain.ErrDiscountCodeInvalid,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)

			resolver := service.NewCodeDiscountResolver(repo)
			amount, err := resolver.Resolve(context.Background(), test.code, subtotal)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expAmount, amount.String())
		})
	}
}

func TestZoneShippingCalculator(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	domestic := decimal.MustParse("5.00")
	international := decimal.MustParse("20.00")

	type shippingTest struct {
		name     string
		country  string
		expCost  decimal.Decimal
		expError error
	}

	tests := []shippingTest{
		{name: "home country ships at the domestic rate", country: "USA", expCost: domestic},
		{name: "any other country ships at the international rate", country: "France", expCost: international},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			repo.EXPECT().GetAddress(gomock.Any(), uint64(7)).
				Return(&domain.Address{ID: 7, Country: test.country}, nil)

			calc := service.NewZoneShippingCalculator(repo, "USA", domestic, international)
			cost, err := calc.Cost(context.Background(), 7)
			assert.NoError(t, err)
			assert.Equal(t, test.expCost, cost)
		})
	}

	t.Run("missing address", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().GetAddress(gomock.Any(), uint64(404)).
			Return(nil, domain.ErrDataNotFound)

		calc := service.NewZoneShippingCalculator(repo, "USA", domestic, international)
		_, err := calc.Cost(context.Background(), 404)
		assert.ErrorIs(t, err, domain.ErrDataNotFound)
	})
}

func TestFlatTaxCalculator(t *testing.T) {
	calc := service.NewFlatTaxCalculator(decimal.MustParse("0.075"))

	tax, err := calc.Tax(context.Background(), decimal.MustParse("95.00"))
	assert.NoError(t, err)
	assert.Equal(t, "7.125", tax.Trim(3).String())

	tax, err = calc.Tax(context.Background(), decimal.MustParse("40.00"))
	assert.NoError(t, err)
	assert.Equal(t, "3", tax.Trim(0).String())
}
