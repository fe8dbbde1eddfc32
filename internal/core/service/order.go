package service

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

type OrderService struct {
	repo   port.Repository
	logger *zap.Logger
}

func NewOrderService(repo port.Repository, logger *zap.Logger) (*OrderService, error) {
	return &OrderService{repo: repo, logger: logger}, nil
}

// CreateOrder places a new order, snapshotting each product's price at order
// time. The order and its items are written in one transaction.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint64,
	items []port.NewOrderItem, shippingAddressID, billingAddressID *uint64) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrBadRequest
	}

	total := decimal.Zero
	orderItems := make([]*domain.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domain.ErrBadRequest
		}

		product, err := s.repo.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		qty, err := decimal.New(item.Quantity, 0)
		if err != nil {
			return nil, err
		}
		line, err := product.Price.Mul(qty)
		if err != nil {
			return nil, err
		}
		total, err = total.Add(line)
		if err != nil {
			return nil, err
		}

		orderItems = append(orderItems, &domain.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}

	order := &domain.Order{
		UserID:            userID,
		Items:             orderItems,
		ShippingAddressID: shippingAddressID,
		BillingAddressID:  billingAddressID,
		Total:             total,
		Status:            domain.OrderStatusPending,
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newOrder, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint64, userID uint64,
	role domain.UserRole) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID && role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uint64,
	role domain.UserRole) ([]*domain.Order, error) {
	if role == domain.RoleAdmin {
		return s.repo.ListOrders(ctx)
	}
	return s.repo.ListOrdersByUser(ctx, userID)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint64,
	status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.ErrBadRequest
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return order, nil
	}

	order.Status = status
	return s.repo.UpdateOrder(ctx, order)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint64) error {
	return s.repo.DeleteOrder(ctx, id)
}
