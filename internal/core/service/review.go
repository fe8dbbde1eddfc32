package service

import (
	"context"
	"errors"

	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

type ReviewService struct {
	repo   port.Repository
	logger *zap.Logger
}

func NewReviewService(repo port.Repository, logger *zap.Logger) (*ReviewService, error) {
	return &ReviewService{repo: repo, logger: logger}, nil
}

func (s *ReviewService) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if review.StarRating < 1 || review.StarRating > 5 {
		return nil, domain.ErrBadRequest
	}

	// The product must exist; the unique index catches duplicates.
	_, err := s.repo.GetProduct(ctx, review.ProductID)
	if err != nil {
		return nil, err
	}

	newReview, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrReviewDuplicate
		}
		s.logger.Error("Create review", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return newReview, nil
}

func (s *ReviewService) ListReviewsByProduct(ctx context.Context, productID uint64) ([]*domain.Review, error) {
	return s.repo.ListReviewsByProduct(ctx, productID)
}

func (s *ReviewService) ListReviewsByUser(ctx context.Context, userID uint64) ([]*domain.Review, error) {
	return s.repo.ListReviewsByUser(ctx, userID)
}

func (s *ReviewService) UpdateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if review.StarRating < 1 || review.StarRating > 5 {
		return nil, domain.ErrBadRequest
	}

	current, err := s.repo.GetReview(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	if current.UserID != review.UserID {
		return nil, domain.ErrForbidden
	}
	return s.repo.UpdateReview(ctx, review)
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uint64, userID uint64) error {
	current, err := s.repo.GetReview(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		return domain.ErrForbidden
	}
	return s.repo.DeleteReview(ctx, id)
}
