package service

import (
	"context"

	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

type AddressService struct {
	repo   port.Repository
	logger *zap.Logger
}

func NewAddressService(repo port.Repository, logger *zap.Logger) (*AddressService, error) {
	return &AddressService{repo: repo, logger: logger}, nil
}

func (s *AddressService) CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	if address.Address1 == "" || address.City == "" ||
		address.Zipcode == "" || address.Country == "" {
		return nil, domain.ErrBadRequest
	}

	newAddress, err := s.repo.CreateAddress(ctx, address)
	if err != nil {
		s.logger.Error("Create address", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return newAddress, nil
}

func (s *AddressService) GetAddress(ctx context.Context, id uint64, userID uint64,
	role domain.UserRole) (*domain.Address, error) {
	address, err := s.repo.GetAddress(ctx, id)
	if err != nil {
		return nil, err
	}
	if address.UserID != userID && role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return address, nil
}

func (s *AddressService) ListAddressesByUser(ctx context.Context, userID uint64) ([]*domain.Address, error) {
	return s.repo.ListAddressesByUser(ctx, userID)
}

func (s *AddressService) UpdateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	current, err := s.repo.GetAddress(ctx, address.ID)
	if err != nil {
		return nil, err
	}
	if current.UserID != address.UserID {
		return nil, domain.ErrForbidden
	}
	return s.repo.UpdateAddress(ctx, address)
}

func (s *AddressService) DeleteAddress(ctx context.Context, id uint64, userID uint64) error {
	current, err := s.repo.GetAddress(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		return domain.ErrForbidden
	}
	return s.repo.DeleteAddress(ctx, id)
}
