package port

import (
	"context"

	"github.com/velmart/storefront/internal/core/domain"
)

type UserService interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, email string, password string) (string, error)
	GetUser(ctx context.Context, id uint64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type CatalogService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, id uint64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type AddressService interface {
	CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error)
	GetAddress(ctx context.Context, id uint64, userID uint64, role domain.UserRole) (*domain.Address, error)
	ListAddressesByUser(ctx context.Context, userID uint64) ([]*domain.Address, error)
	UpdateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error)
	DeleteAddress(ctx context.Context, id uint64, userID uint64) error
}

type ReviewService interface {
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListReviewsByProduct(ctx context.Context, productID uint64) ([]*domain.Review, error)
	ListReviewsByUser(ctx context.Context, userID uint64) ([]*domain.Review, error)
	UpdateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	DeleteReview(ctx context.Context, id uint64, userID uint64) error
}

// NewOrderItem is an item requested at order creation time, before the
// product price is snapshotted.
type NewOrderItem struct {
	ProductID uint64
	Quantity  int64
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID uint64, items []NewOrderItem,
		shippingAddressID, billingAddressID *uint64) (*domain.Order, error)
	GetOrder(ctx context.Context, id uint64, userID uint64, role domain.UserRole) (*domain.Order, error)
	ListOrders(ctx context.Context, userID uint64, role domain.UserRole) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id uint64) error
}

type PaymentService interface {
	GetPayment(ctx context.Context, id uint64, userID uint64, role domain.UserRole) (*domain.Payment, error)
	ListPayments(ctx context.Context, userID uint64, role domain.UserRole) ([]*domain.Payment, error)
}

// PurchaseRequest carries the inputs of a purchase attempt.
type PurchaseRequest struct {
	OrderID           uint64
	UserID            uint64
	PaymentMethod     string
	DiscountCode      string
	ShippingAddressID *uint64
}

type PurchaseService interface {
	InitiatePurchase(ctx context.Context, req PurchaseRequest) (*domain.CheckoutResult, error)
	ConfirmPayment(ctx context.Context, paymentID uint64, paymentMethod string) (*domain.ConfirmResult, error)
	HandleGatewayEvent(ctx context.Context, payload []byte, signatureHeader string) error
}
