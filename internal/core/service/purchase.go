package service

import (
	"context"
	"errors"

	"github.com/govalues/decimal"
	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

// PurchaseService orchestrates the checkout flow: it validates the order,
// prices it, creates the payment row and the gateway intent, and later
// reconciles gateway outcomes back onto the Payment and Order rows, either
// through the synchronous confirm call or through webhook notifications.
type PurchaseService struct {
	repo     port.Repository
	gateway  port.PaymentGateway
	discount port.DiscountResolver
	shipping port.ShippingCalculator
	tax      port.TaxCalculator
	currency string
	logger   *zap.Logger
}

func NewPurchaseService(repo port.Repository, gateway port.PaymentGateway,
	discount port.DiscountResolver, shipping port.ShippingCalculator,
	tax port.TaxCalculator, currency string, logger *zap.Logger) (*PurchaseService, error) {
	return &PurchaseService{
		repo:     repo,
		gateway:  gateway,
		discount: discount,
		shipping: shipping,
		tax:      tax,
		currency: currency,
		logger:   logger,
	}, nil
}

// InitiatePurchase runs the purchase attempt for an order. All validation
// and pricing happens before any row is written; the Payment row is created
// only once the total is final. If the gateway call then fails, the Payment
// stays in REQUIRES_PAYMENT_METHOD with no gateway reference and the caller
// may retry or abandon it.
func (s *PurchaseService) InitiatePurchase(ctx context.Context,
	req port.PurchaseRequest) (*domain.CheckoutResult, error) {
	order, err := s.repo.GetOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != req.UserID {
		return nil, domain.ErrForbidden
	}

	if !order.Status.Purchasable() {
		return nil, domain.OrderStateError(order.Status)
	}

	// Point-in-time stock check only. Stock is not reserved or decremented
	// here; under concurrent purchases of the last unit this can double-sell.
	for _, item := range order.Items {
		product := item.Product
		if !product.InStock || product.Quantity < item.Quantity {
			return nil, domain.StockError(product.Name, item.Quantity, product.Quantity)
		}
	}

	// Subtotal over the captured item prices, never the current catalog ones.
	subtotal := decimal.Zero
	for _, item := range order.Items {
		qty, err := decimal.New(item.Quantity, 0)
		if err != nil {
			return nil, err
		}
		line, err := item.Price.Mul(qty)
		if err != nil {
			return nil, err
		}
		subtotal, err = subtotal.Add(line)
		if err != nil {
			return nil, err
		}
	}

	discount := decimal.Zero
	if req.DiscountCode != "" {
		discount, err = s.discount.Resolve(ctx, req.DiscountCode, subtotal)
		if err != nil {
			return nil, err
		}
		subtotal, err = subtotal.Sub(discount)
		if err != nil {
			return nil, err
		}
		// A discount larger than the subtotal must not drive it negative.
		if subtotal.IsNeg() {
			subtotal = decimal.Zero
		}
	}

	shippingCost := decimal.Zero
	if req.ShippingAddressID != nil {
		shippingCost, err = s.shipping.Cost(ctx, *req.ShippingAddressID)
		if err != nil {
			return nil, err
		}
	}

	taxable, err := subtotal.Add(shippingCost)
	if err != nil {
		return nil, err
	}
	tax, err := s.tax.Tax(ctx, taxable)
	if err != nil {
		return nil, err
	}

	total, err := taxable.Add(tax)
	if err != nil {
		return nil, err
	}
	total, err = roundHalfUp(total)
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.CreatePayment(ctx, &domain.Payment{
		OrderID: order.ID,
		UserID:  order.UserID,
		Amount:  total,
		Status:  domain.PaymentStatusRequiresPaymentMethod,
	})
	if err != nil {
		s.logger.Error("create payment", zap.Error(err))
		return nil, domain.ErrInternal
	}

	amountMinor, err := minorUnits(total)
	if err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreateIntent(ctx, amountMinor, s.currency,
		req.PaymentMethod, port.IntentMetadata{
			OrderID:   order.ID,
			PaymentID: payment.ID,
			UserID:    order.UserID,
		})
	if err != nil {
		// The payment row stays behind without a gateway reference.
		s.logger.Error("create intent", zap.Error(err),
			zap.Uint64("payment", payment.ID), zap.Uint64("order", order.ID))
		return nil, err
	}

	payment.GatewayRef = intent.GatewayRef
	payment.Status = domain.PaymentStatusRequiresAction
	_, err = s.repo.UpdatePayment(ctx, payment)
	if err != nil {
		s.logger.Error("update payment with intent", zap.Error(err),
			zap.Uint64("payment", payment.ID))
		return nil, domain.ErrInternal
	}

	order.Total = total
	order.Status = domain.OrderStatusPending
	_, err = s.repo.UpdateOrder(ctx, order)
	if err != nil {
		s.logger.Error("update order total", zap.Error(err),
			zap.Uint64("order", order.ID))
		return nil, domain.ErrInternal
	}

	return &domain.CheckoutResult{
		PaymentID:    payment.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       total,
		Discount:     discount,
		ShippingCost: shippingCost,
		Tax:          tax,
	}, nil
}

// ConfirmPayment confirms the intent server-side and applies the resulting
// statuses to the Payment and Order rows atomically.
func (s *PurchaseService) ConfirmPayment(ctx context.Context, paymentID uint64,
	paymentMethod string) (*domain.ConfirmResult, error) {
	payment, err := s.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.GatewayRef == "" {
		return nil, domain.ErrNoGatewayIntent
	}

	gatewayStatus, err := s.gateway.ConfirmIntent(ctx, payment.GatewayRef, paymentMethod)
	if err != nil {
		return nil, err
	}

	transition := domain.ResolveGatewayStatus(gatewayStatus)

	_, err = s.repo.UpdatePaymentAndOrder(ctx, payment.ID,
		func(p *domain.Payment, o *domain.Order) error {
			p.Status = transition.Payment
			o.Status = transition.Order
			return nil
		})
	if err != nil {
		s.logger.Error("apply confirm transition", zap.Error(err),
			zap.Uint64("payment", payment.ID))
		return nil, domain.ErrInternal
	}

	return &domain.ConfirmResult{
		GatewayStatus: gatewayStatus,
		PaymentStatus: transition.Payment,
		OrderStatus:   transition.Order,
	}, nil
}

// HandleGatewayEvent reconciles an asynchronous gateway notification. After
// the signature verifies, the event is always acknowledged: an unknown event
// type or an unmatched gateway reference is logged and ignored so the
// gateway does not retry undeliverable events forever.
func (s *PurchaseService) HandleGatewayEvent(ctx context.Context, payload []byte,
	signatureHeader string) error {
	event, err := s.gateway.VerifyAndParseEvent(payload, signatureHeader)
	if err != nil {
		return err
	}

	switch event.Type {
	case domain.GatewayEventPaymentSucceeded:
		return s.reconcile(ctx, event.GatewayRef,
			domain.ResolveGatewayStatus(domain.GatewayStatusSucceeded))
	case domain.GatewayEventPaymentFailed:
		// The order stays retryable, not auto-cancelled.
		return s.reconcile(ctx, event.GatewayRef, domain.FailedTransition())
	default:
		s.logger.Debug("unhandled gateway event type", zap.String("type", string(event.Type)))
		return nil
	}
}

func (s *PurchaseService) reconcile(ctx context.Context, gatewayRef string,
	transition domain.StatusTransition) error {
	payment, err := s.repo.GetPaymentByGatewayRef(ctx, gatewayRef)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Warn("gateway event for unknown payment",
				zap.String("intent", gatewayRef))
			return nil
		}
		return err
	}

	_, err = s.repo.UpdatePaymentAndOrder(ctx, payment.ID,
		func(p *domain.Payment, o *domain.Order) error {
			p.Status = transition.Payment
			o.Status = transition.Order
			return nil
		})
	if err != nil {
		s.logger.Error("apply webhook transition", zap.Error(err),
			zap.Uint64("payment", payment.ID), zap.String("intent", gatewayRef))
		return err
	}

	s.logger.Info("reconciled gateway event",
		zap.String("intent", gatewayRef),
		zap.String("payment_status", string(transition.Payment)),
		zap.String("order_status", string(transition.Order)))
	return nil
}
