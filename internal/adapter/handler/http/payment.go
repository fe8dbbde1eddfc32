package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/velmart/storefront/internal/core/domain"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.PaymentService
}

func NewPaymentHandler(service port.PaymentService, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type paymentResponse struct {
	ID         uint64          `json:"id"`
	OrderID    uint64          `json:"orderId"`
	UserID     uint64          `json:"userId"`
	Amount     decimal.Decimal `json:"amount"`
	GatewayRef string          `json:"gatewayRef,omitempty"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func newPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:         p.ID,
		OrderID:    p.OrderID,
		UserID:     p.UserID,
		Amount:     p.Amount,
		GatewayRef: p.GatewayRef,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (ph *PaymentHandler) GetPayment(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	payload := getAuthPayload(ctx)
	payment, err := ph.service.GetPayment(ctx, id, payload.UserID, payload.Role)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newPaymentResponse(payment))
}

func (ph *PaymentHandler) ListPayments(ctx *gin.Context) {
	payload := getAuthPayload(ctx)
	list, err := ph.service.ListPayments(ctx, payload.UserID, payload.Role)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]paymentResponse, 0, len(list))
	for _, p := range list {
		result = append(result, newPaymentResponse(p))
	}
	ph.handleSuccess(ctx, result)
}
