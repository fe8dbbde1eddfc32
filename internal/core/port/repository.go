package port

import (
	"context"

	"github.com/velmart/storefront/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, id uint64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id uint64) error

	// Product
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, id uint64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error

	// Address
	CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error)
	GetAddress(ctx context.Context, id uint64) (*domain.Address, error)
	ListAddressesByUser(ctx context.Context, userID uint64) ([]*domain.Address, error)
	UpdateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error)
	DeleteAddress(ctx context.Context, id uint64) error

	// Review
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetReview(ctx context.Context, id uint64) (*domain.Review, error)
	ListReviewsByProduct(ctx context.Context, productID uint64) ([]*domain.Review, error)
	ListReviewsByUser(ctx context.Context, userID uint64) ([]*domain.Review, error)
	UpdateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	DeleteReview(ctx context.Context, id uint64) error

	// Order. GetOrder loads line items with their product records.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id uint64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id uint64) error

	// Payment
	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetPayment(ctx context.Context, id uint64) (*domain.Payment, error)
	GetPaymentByGatewayRef(ctx context.Context, ref string) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]*domain.Payment, error)
	ListPaymentsByUser(ctx context.Context, userID uint64) ([]*domain.Payment, error)
	UpdatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)

	// UpdatePaymentAndOrder applies updateFn to the payment and its order
	// inside a single transaction. Either both rows are updated or neither is.
	UpdatePaymentAndOrder(ctx context.Context, paymentID uint64, updateFn UpdatePaymentOrderFn) (*domain.Payment, error)

	// Discount
	GetDiscountCode(ctx context.Context, code string) (*domain.DiscountCode, error)
}

type UpdatePaymentOrderFn func(*domain.Payment, *domain.Order) error
