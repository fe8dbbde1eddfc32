package service

import (
	"context"
	"errors"

	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"github.com/velmart/storefront/internal/core/utils"
	"go.uber.org/zap"
)

type UserService struct {
	repo         port.Repository
	tokenService port.TokenService
	logger       *zap.Logger
}

func NewUserService(repo port.Repository, tokenService port.TokenService,
	logger *zap.Logger) (*UserService, error) {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		logger:       logger,
	}, nil
}

func (s *UserService) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		s.logger.Error("Hash password", zap.Error(err))
		return nil, domain.ErrInternal
	}
	user.Password = hashed
	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *UserService) LoginUser(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint64) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	list, err := s.repo.ListUsers(ctx)
	if err != nil {
		s.logger.Error("List users", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	current, err := s.repo.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if user.Password != "" {
		hashed, err := utils.HashPassword(user.Password)
		if err != nil {
			s.logger.Error("Hash password", zap.Error(err))
			return nil, domain.ErrInternal
		}
		user.Password = hashed
	} else {
		user.Password = current.Password
	}
	if user.Role == "" {
		user.Role = current.Role
	}

	return s.repo.UpdateUser(ctx, user)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	return s.repo.DeleteUser(ctx, id)
}
