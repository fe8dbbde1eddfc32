package service

import (
	"context"

	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

// PaymentService is the read side of payments. All payment writes go through
// the purchase orchestrator and the webhook reconciler.
type PaymentService struct {
	repo   port.Repository
	logger *zap.Logger
}

func NewPaymentService(repo port.Repository, logger *zap.Logger) (*PaymentService, error) {
	return &PaymentService{repo: repo, logger: logger}, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id uint64, userID uint64,
	role domain.UserRole) (*domain.Payment, error) {
	payment, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.UserID != userID && role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return payment, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, userID uint64,
	role domain.UserRole) ([]*domain.Payment, error) {
	if role == domain.RoleAdmin {
		return s.repo.ListPayments(ctx)
	}
	return s.repo.ListPaymentsByUser(ctx, userID)
}
