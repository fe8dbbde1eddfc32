package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	Handler
	service port.ReviewService
}

func NewReviewHandler(service port.ReviewService, logger *zap.Logger) (*ReviewHandler, error) {
	return &ReviewHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type reviewRequest struct {
	ProductID  uint64 `json:"productId" binding:"required"`
	StarRating int    `json:"starRating" binding:"required"`
	Comment    string `json:"comment"`
}

type reviewResponse struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"userId"`
	ProductID  uint64    `json:"productId"`
	StarRating int       `json:"starRating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func newReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		ProductID:  r.ProductID,
		StarRating: r.StarRating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func (rh *ReviewHandler) CreateReview(ctx *gin.Context) {
	req := reviewRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	review := &domain.Review{
		UserID:     getAuthPayload(ctx).UserID,
		ProductID:  req.ProductID,
		StarRating: req.StarRating,
		Comment:    req.Comment,
	}

	newReview, err := rh.service.CreateReview(ctx, review)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}
	rh.handleSuccessWithStatus(ctx, newReviewResponse(newReview), http.StatusCreated)
}

func (rh *ReviewHandler) ListReviewsByProduct(ctx *gin.Context) {
	productID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	list, err := rh.service.ListReviewsByProduct(ctx, productID)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	result := make([]reviewResponse, 0, len(list))
	for _, r := range list {
		result = append(result, newReviewResponse(r))
	}
	rh.handleSuccess(ctx, result)
}

func (rh *ReviewHandler) ListMyReviews(ctx *gin.Context) {
	list, err := rh.service.ListReviewsByUser(ctx, getAuthPayload(ctx).UserID)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	result := make([]reviewResponse, 0, len(list))
	for _, r := range list {
		result = append(result, newReviewResponse(r))
	}
	rh.handleSuccess(ctx, result)
}

type updateReviewRequest struct {
	StarRating int    `json:"starRating" binding:"required"`
	Comment    string `json:"comment"`
}

func (rh *ReviewHandler) UpdateReview(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	req := updateReviewRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	review := &domain.Review{
		ID:         id,
		UserID:     getAuthPayload(ctx).UserID,
		StarRating: req.StarRating,
		Comment:    req.Comment,
	}

	updated, err := rh.service.UpdateReview(ctx, review)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}
	rh.handleSuccess(ctx, newReviewResponse(updated))
}

func (rh *ReviewHandler) DeleteReview(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	err = rh.service.DeleteReview(ctx, id, getAuthPayload(ctx).UserID)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}
	rh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
