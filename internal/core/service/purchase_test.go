package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"github.com/velmart/storefront/internal/core/port/mock"
	"github.com/velmart/storefront/internal/core/service"
	"go.uber.org/zap"
)

type purchaseMocks struct {
	repo     *mock.MockRepository
	gateway  *mock.MockPaymentGateway
	discount *mock.MockDiscountResolver
	shipping *mock.MockShippingCalculator
	tax      *mock.MockTaxCalculator
}

func newPurchaseMocks(ctrl *gomock.Controller) *purchaseMocks {
	return &purchaseMocks{
		repo:     mock.NewMockRepository(ctrl),
		gateway:  mock.NewMockPaymentGateway(ctrl),
		discount: mock.NewMockDiscountResolver(ctrl),
		shipping: mock.NewMockShippingCalculator(ctrl),
		tax:      mock.NewMockTaxCalculator(ctrl),
	}
}

func newPurchaseService(t *testing.T, m *purchaseMocks) *service.PurchaseService {
	t.Helper()
	logger, _ := zap.NewProduction()
	s, err := service.NewPurchaseService(m.repo, m.gateway, m.discount,
		m.shipping, m.tax, "usd", logger)
	assert.NoError(t, err)
	return s
}

func testOrder(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:     10,
		UserID: 1,
		Status: status,
		Items: []*domain.OrderItem{
			{
				OrderID:   10,
				ProductID: 100,
				Quantity:  2,
				Price:     decimal.MustParse("25.00"),
				Product: &domain.Product{
					ID: 100, Name: "keyboard", Quantity: 5, InStock: true,
					Price: decimal.MustParse("30.00"),
				},
			},
			{
				OrderID:   10,
				ProductID: 101,
				Quantity:  1,
				Price:     decimal.MustParse("50.00"),
				Product: &domain.Product{
					ID: 101, Name: "monitor", Quantity: 1, InStock: true,
					Price: decimal.MustParse("50.00"),
				},
			},
		},
	}
}

func TestPurchaseService_InitiatePurchase(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	addressID := uint64(7)

	type purchaseTest struct {
		name      string
		req       port.PurchaseRequest
		mock      func(m *purchaseMocks)
		expError  error
		expResult *domain.CheckoutResult
	}

	tests := []purchaseTest{
		{
			// Items total 100.00, code takes 10.00 off, shipping adds 5.00,
			// tax is 7.125 on the 95.00 taxable base. 102.125 rounds up.
			name: "full breakdown rounds half up",
			req: port.PurchaseRequest{
				OrderID: 10, UserID: 1, PaymentMethod: "pm_card",
				DiscountCode: "SAVE10", ShippingAddressID: &addressID,
			},
			mock: func(m *purchaseMocks) {
				order := testOrder("")
				m.repo.EXPECT().GetOrder(gomock.Any(), uint64(10)).Return(order, nil)
				m.discount.EXPECT().Resolve(gomock.Any(), "SAVE10", decimal.MustParse("100.00")).
					Return(decimal.MustParse("10.00"), nil)
				m.shipping.EXPECT().Cost(gomock.Any(), addressID).
					Return(decimal.MustParse("5.00"), nil)
				m.tax.EXPECT().Tax(gomock.Any(), decimal.MustParse("95.00")).
					Return(decimal.MustParse("7.125"), nil)
				m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						assert.Equal(t, domain.PaymentStatusRequiresPaymentMethod, p.Status)
						assert.Equal(t, "102.13", p.Amount.String())
						p.ID = 55
						return p, nil
					})
				m.gateway.EXPECT().CreateIntent(gomock.Any(), int64(10213), "usd", "pm_card",
					port.IntentMetadata{OrderID: 10, PaymentID: 55, UserID: 1}).
					Return(&port.PaymentIntent{GatewayRef: "pi_1", ClientSecret: "pi_1_secret"}, nil)
				m.repo.EXPECT().UpdatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						assert.Equal(t, "pi_1", p.GatewayRef)
						assert.Equal(t, domain.PaymentStatusRequiresAction, p.Status)
						return p, nil
					})
				m.repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						assert.Equal(t, domain.OrderStatusPending, o.Status)
						assert.Equal(t, "102.13", o.Total.String())
						return o, nil
					})
			},
			expResult: &domain.CheckoutResult{
				PaymentID:    55,
				ClientSecret: "pi_1_secret",
				Amount:       decimal.MustParse("102.13"),
				Discount:     decimal.MustParse("10.00"),
				ShippingCost: decimal.MustParse("5.00"),
				Tax:          decimal.MustParse("7.125"),
			},
		},
		{
			name: "no discount and no shipping",
			req:  port.PurchaseRequest{OrderID: 10, UserID: 1, PaymentMethod: "pm_card"},
			mock: func(m *purchaseMocks) {
				order := testOrder("")
				order.Items = order.Items[1:2] // 50.00 only
				m.repo.EXPECT().GetOrder(gomock.Any(), uint64(10)).Return(order, nil)
				m.tax.EXPECT().Tax(gomock.Any(), decimal.MustParse("50.00")).
					Return(decimal.MustParse("3.75"), nil)
				m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						p.ID = 56
						return p, nil
					})
				m.gateway.EXPECT().CreateIntent(gomock.Any(), int64(5375), "usd", "pm_card",
					port.IntentMetadata{OrderID: 10, PaymentID: 56, UserID: 1}).
					Return(&port.PaymentIntent{GatewayRef: "pi_2", ClientSecret: "pi_2_secret"}, nil)
				m.repo.EXPECT().UpdatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						return p, nil
					})
				m.repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						return o, nil
					})
			},
			expResult: &domain.CheckoutResult{
				PaymentID:    56,
				ClientSecret: "pi_2_secret",
				Amount:       decimal.MustParse("53.75"),
				Discount:     decimal.Zero,
				ShippingCost: decimal.Zero,
				Tax:          decimal.MustParse("3.75"),
			},
		},
		{
			name: "discount larger than subtotal clamps to zero",
			req: port.PurchaseRequest{
				OrderID: 10, UserID: 1, PaymentMethod: "pm_card", DiscountCode: "BIG",
			},
			mock: func(m *purchaseMocks) {
				order := testOrder("")
				order.Items = order.Items[1:2] // 50.00 only
				m.repo.EXPECT().GetOrder(gomock.Any(), uint64(10)).Return(order, nil)
				m.discount.EXPECT().Resolve(gomock.Any(), "BIG", decimal.MustParse("50.00")).
					Return(decimal.MustParse("80.00"), nil)
				m.tax.EXPECT().Tax(gomock.Any(), decimal.Zero).
					Return(decimal.Zero, nil)
				m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						p.ID = 57
						return p, nil
					})
				m.gateway.EXPECT().CreateIntent(gomock.Any(), int64(0), "usd", "pm_card",
					port.IntentMetadata{OrderID: 10, PaymentID: 57, UserID: 1}).
					Return(&port.PaymentIntent{GatewayRef: "pi_3", ClientSecret: "pi_3_secret"}, nil)
				m.repo.EXPECT().UpdatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						return p, nil
					})
				m.repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) {
						return o, nil
					})
			},
			expResult: &domain.CheckoutResult{
				PaymentID:    57,
				ClientSecret: "pi_3_secret",
				Amount:       decimal.MustParse("0.00"),
				Discount:     decimal.MustParse("80.00"),
				ShippingCost: decimal.Zero,
				Tax:          decimal.Zero,
			},
		},
		{
			name: "order not found",
			req:  port.PurchaseRequest{OrderID: 404, UserID: 1, PaymentMethod: "pm_card"},
			mock: func(m *purchaseMocks) {
				m.repo.EXPECT().GetOrder(gomock.Any(), uint64(404)).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
		{
			name: "order owned by someone else",
			req:  port.PurchaseRequest{OrderID: 10, UserID: 2, PaymentMethod: "pm_card"},
			mock: func(m *purchaseMocks) {
				m.repo.EXPECT().GetOrder(gomock.Any(), uint64(10)).
					Return(testOrder(""), nil)
			},
			expError: domain.ErrForbidden,
		},
		{
			name: "completed order can not be purchased again",
			req:  port.PurchaseRequest{OrderID: 10, UserID: 1, PaymentMethod: "pm_card"},
			mock: func(m *purchaseMocks) {
				m.repo.EXPECT().GetOrder(gomock.Any(), uint64(10)).
					Return(testOrder(domain.OrderStatusCompleted), nil)
			},
			expError: domain.ErrOrderNotPurchasable,
		},
		{
			name: "refunded order can not be purchased again",
			req:  port.PurchaseRequest{OrderID: 10, UserID: 1, PaymentMethod: "pm_card"},
			mock: func(m *purchaseMocks) {
				m.repo.EXPECT().GetOrder(gomock.Any(), uint64(10)).
					Return(testOrder(domain.OrderStatusRefunded), nil)
			},
			expError: domain.ErrOrderNotPurchasable,
		},
		{
			name: "not enough stock",
			req:  port.PurchaseRequest{OrderID: 10, UserID: 1, PaymentMethod: "pm_card"},
			mock: func(m *purchaseMocks) {
				order := testOrder("")
				order.Items[1].Quantity = 3 // only 1 monitor in stock
				m.repo.EXPECT().GetOrder(gomock.Any(), uint64(10)).Return(order, nil)
			},
			expError: domain.ErrInsufficientStock,
		},
		{
			name: "invalid discount code stops the purchase",
			req: port.PurchaseRequest{
				OrderID: 10, UserID: 1, PaymentMethod: "pm_card", DiscountCode: "NOPE",
			},
			mock: func(m *purchaseMocks) {
				m.repo.EXPECT().GetOrder(gomock.Any(), uint64(10)).Return(testOrder(""), nil)
				m.discount.EXPECT().Resolve(gomock.Any(), "NOPE", decimal.MustParse("100.00")).
					Return(decimal.Decimal{}, domain.ErrDiscountCodeInvalid)
			},
			expError: domain.ErrDiscountCodeInvalid,
		},
		{
			name: "gateway failure leaves payment without reference",
			req:  port.PurchaseRequest{OrderID: 10, UserID: 1, PaymentMethod: "pm_card"},
			mock: func(m *purchaseMocks) {
				m.repo.EXPECT().GetOrder(gomock.Any(), uint64(10)).Return(testOrder(""), nil)
				m.tax.EXPECT().Tax(gomock.Any(), decimal.MustParse("100.00")).
					Return(decimal.MustParse("7.50"), nil)
				m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						p.ID = 58
						return p, nil
					})
				m.gateway.EXPECT().CreateIntent(gomock.Any(), int64(10750), "usd", "pm_card",
					port.IntentMetadata{OrderID: 10, PaymentID: 58, UserID: 1}).
					Return(nil, domain.ErrGatewayUnavailable)
				// No UpdatePayment and no UpdateOrder after the failure.
			},
			expError: domain.ErrGatewayUnavailable,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newPurchaseMocks(mockCtrl)
			test.mock(m)

			s := newPurchaseService(t, m)

			result, err := s.InitiatePurchase(context.Background(), test.req)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expResult, result)
		})
	}
}

func TestPurchaseService_ConfirmPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	payment := &domain.Payment{
		ID:         55,
		OrderID:    10,
		UserID:     1,
		GatewayRef: "pi_1",
		Status:     domain.PaymentStatusRequiresAction,
	}

	type confirmTest struct {
		name          string
		gatewayStatus domain.GatewayStatus
		expPayment    domain.PaymentStatus
		expOrder      domain.OrderStatus
	}

	tests := []confirmTest{
		{
			name:          "succeeded completes the order",
			gatewayStatus: domain.GatewayStatusSucceeded,
			expPayment:    domain.PaymentStatusSucceeded,
			expOrder:      domain.OrderStatusCompleted,
		},
		{
			name:          "requires action keeps the order pending",
			gatewayStatus: domain.GatewayStatusRequiresAction,
			expPayment:    domain.PaymentStatusRequiresAction,
			expOrder:      domain.OrderStatusPending,
		},
		{
			name:          "processing keeps the order pending",
			gatewayStatus: domain.GatewayStatusProcessing,
			expPayment:    domain.PaymentStatusProcessing,
			expOrder:      domain.OrderStatusPending,
		},
		{
			name:          "canceled cancels the order",
			gatewayStatus: domain.GatewayStatusCanceled,
			expPayment:    domain.PaymentStatusCanceled,
			expOrder:      domain.OrderStatusCancelled,
		},
		{
			name:          "unknown status fails the payment only",
			gatewayStatus: domain.GatewayStatus("requires_capture"),
			expPayment:    domain.PaymentStatusFailed,
			expOrder:      domain.OrderStatusPending,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newPurchaseMocks(mockCtrl)

			m.repo.EXPECT().GetPayment(gomock.Any(), payment.ID).Return(payment, nil)
			m.gateway.EXPECT().ConfirmIntent(gomock.Any(), "pi_1", "pm_card").
				Return(test.gatewayStatus, nil)
			m.repo.EXPECT().UpdatePaymentAndOrder(gomock.Any(), payment.ID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uint64, fn port.UpdatePaymentOrderFn) (*domain.Payment, error) {
					p := &domain.Payment{ID: payment.ID}
					o := &domain.Order{ID: payment.OrderID}
					err := fn(p, o)
					assert.NoError(t, err)
					assert.Equal(t, test.expPayment, p.Status)
					assert.Equal(t, test.expOrder, o.Status)
					return p, nil
				})

			s := newPurchaseService(t, m)

			result, err := s.ConfirmPayment(context.Background(), payment.ID, "pm_card")
			assert.NoError(t, err)
			assert.Equal(t, &domain.ConfirmResult{
				GatewayStatus: test.gatewayStatus,
				PaymentStatus: test.expPayment,
				OrderStatus:   test.expOrder,
			}, result)
		})
	}

	t.Run("payment without gateway reference", func(t *testing.T) {
		m := newPurchaseMocks(mockCtrl)
		m.repo.EXPECT().GetPayment(gomock.Any(), uint64(60)).
			Return(&domain.Payment{ID: 60, Status: domain.PaymentStatusRequiresPaymentMethod}, nil)

		s := newPurchaseService(t, m)

		result, err := s.ConfirmPayment(context.Background(), 60, "pm_card")
		assert.ErrorIs(t, err, domain.ErrNoGatewayIntent)
		assert.Nil(t, result)
	})

	t.Run("gateway rejects the confirmation", func(t *testing.T) {
		m := newPurchaseMocks(mockCtrl)
		m.repo.EXPECT().GetPayment(gomock.Any(), payment.ID).Return(payment, nil)
		m.gateway.EXPECT().ConfirmIntent(gomock.Any(), "pi_1", "pm_card").
			Return(domain.GatewayStatus(""), domain.ErrGatewayRejected)

		s := newPurchaseService(t, m)

		result, err := s.ConfirmPayment(context.Background(), payment.ID, "pm_card")
		assert.ErrorIs(t, err, domain.ErrGatewayRejected)
		assert.Nil(t, result)
	})
}

func TestPurchaseService_HandleGatewayEvent(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	payload := []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`)
	header := "t=123,v1=deadbeef"

	payment := &domain.Payment{
		ID:         55,
		OrderID:    10,
		GatewayRef: "pi_1",
		Status:     domain.PaymentStatusRequiresAction,
	}

	t.Run("succeeded event completes payment and order", func(t *testing.T) {
		m := newPurchaseMocks(mockCtrl)
		m.gateway.EXPECT().VerifyAndParseEvent(payload, header).
			Return(&domain.GatewayEvent{
				Type: domain.GatewayEventPaymentSucceeded, GatewayRef: "pi_1",
			}, nil)
		m.repo.EXPECT().GetPaymentByGatewayRef(gomock.Any(), "pi_1").Return(payment, nil)
		m.repo.EXPECT().UpdatePaymentAndOrder(gomock.Any(), payment.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint64, fn port.UpdatePaymentOrderFn) (*domain.Payment, error) {
				p := &domain.Payment{ID: payment.ID}
				o := &domain.Order{ID: payment.OrderID}
				assert.NoError(t, fn(p, o))
				assert.Equal(t, domain.PaymentStatusSucceeded, p.Status)
				assert.Equal(t, domain.OrderStatusCompleted, o.Status)
				return p, nil
			})

		s := newPurchaseService(t, m)
		assert.NoError(t, s.HandleGatewayEvent(context.Background(), payload, header))
	})

	t.Run("failed event fails payment but keeps order pending", func(t *testing.T) {
		m := newPurchaseMocks(mockCtrl)
		m.gateway.EXPECT().VerifyAndParseEvent(payload, header).
			Return(&domain.GatewayEvent{
				Type: domain.GatewayEventPaymentFailed, GatewayRef: "pi_1",
			}, nil)
		m.repo.EXPECT().GetPaymentByGatewayRef(gomock.Any(), "pi_1").Return(payment, nil)
		m.repo.EXPECT().UpdatePaymentAndOrder(gomock.Any(), payment.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint64, fn port.UpdatePaymentOrderFn) (*domain.Payment, error) {
				p := &domain.Payment{ID: payment.ID}
				o := &domain.Order{ID: payment.OrderID}
				assert.NoError(t, fn(p, o))
				assert.Equal(t, domain.PaymentStatusFailed, p.Status)
				assert.Equal(t, domain.OrderStatusPending, o.Status)
				return p, nil
			})

		s := newPurchaseService(t, m)
		assert.NoError(t, s.HandleGatewayEvent(context.Background(), payload, header))
	})

	t.Run("invalid signature is rejected", func(t *testing.T) {
		m := newPurchaseMocks(mockCtrl)
		m.gateway.EXPECT().VerifyAndParseEvent(payload, "t=123,v1=bad").
			Return(nil, domain.ErrSignatureInvalid)

		s := newPurchaseService(t, m)
		err := s.HandleGatewayEvent(context.Background(), payload, "t=123,v1=bad")
		assert.ErrorIs(t, err, domain.ErrSignatureInvalid)
	})

	t.Run("unknown event type is acknowledged without changes", func(t *testing.T) {
		m := newPurchaseMocks(mockCtrl)
		m.gateway.EXPECT().VerifyAndParseEvent(payload, header).
			Return(&domain.GatewayEvent{
				Type: domain.GatewayEventType("charge.refunded"), GatewayRef: "pi_1",
			}, nil)

		s := newPurchaseService(t, m)
		assert.NoError(t, s.HandleGatewayEvent(context.Background(), payload, header))
	})

	t.Run("unknown gateway reference is acknowledged without changes", func(t *testing.T) {
		m := newPurchaseMocks(mockCtrl)
		m.gateway.EXPECT().VerifyAndParseEvent(payload, header).
			Return(&domain.GatewayEvent{
				Type: domain.GatewayEventPaymentSucceeded, GatewayRef: "pi_gone",
			}, nil)
		m.repo.EXPECT().GetPaymentByGatewayRef(gomock.Any(), "pi_gone").
			Return(nil, domain.ErrDataNotFound)

		s := newPurchaseService(t, m)
		assert.NoError(t, s.HandleGatewayEvent(context.Background(), payload, header))
	})
}

// The confirm path and the webhook path can race for the same payment. Both
// apply the same transition table through the locked repository update, so
// whichever runs second must land on the same end state.
func TestPurchaseService_ConfirmWebhookOrdering(t *testing.T) {
	payload := []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`)
	header := "t=123,v1=deadbeef"

	tests := []struct {
		name  string
		apply func(t *testing.T, s *service.PurchaseService)
	}{
		{
			name: "confirm then webhook",
			apply: func(t *testing.T, s *service.PurchaseService) {
				_, err := s.ConfirmPayment(context.Background(), 55, "pm_1")
				assert.NoError(t, err)
				assert.NoError(t, s.HandleGatewayEvent(context.Background(), payload, header))
			},
		},
		{
			name: "webhook then confirm",
			apply: func(t *testing.T, s *service.PurchaseService) {
				assert.NoError(t, s.HandleGatewayEvent(context.Background(), payload, header))
				_, err := s.ConfirmPayment(context.Background(), 55, "pm_1")
				assert.NoError(t, err)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			payment := &domain.Payment{
				ID:         55,
				OrderID:    10,
				GatewayRef: "pi_1",
				Status:     domain.PaymentStatusProcessing,
			}
			order := &domain.Order{ID: 10, UserID: 1, Status: domain.OrderStatusPending}

			m := newPurchaseMocks(mockCtrl)
			m.repo.EXPECT().GetPayment(gomock.Any(), payment.ID).Return(payment, nil)
			m.repo.EXPECT().GetPaymentByGatewayRef(gomock.Any(), "pi_1").Return(payment, nil)
			m.repo.EXPECT().UpdatePaymentAndOrder(gomock.Any(), payment.ID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uint64, fn port.UpdatePaymentOrderFn) (*domain.Payment, error) {
					if err := fn(payment, order); err != nil {
						return nil, err
					}
					return payment, nil
				}).Times(2)
			m.gateway.EXPECT().ConfirmIntent(gomock.Any(), "pi_1", "pm_1").
				Return(domain.GatewayStatusSucceeded, nil)
			m.gateway.EXPECT().VerifyAndParseEvent(payload, header).
				Return(&domain.GatewayEvent{
					Type: domain.GatewayEventPaymentSucceeded, GatewayRef: "pi_1",
				}, nil)

			test.apply(t, newPurchaseService(t, m))

			assert.Equal(t, domain.PaymentStatusSucceeded, payment.Status)
			assert.Equal(t, domain.OrderStatusCompleted, order.Status)
		})
	}
}
