package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/velmart/storefront/internal/adapter/config"
	"github.com/velmart/storefront/internal/core/port"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	logger *zap.Logger,
	userHandler *UserHandler,
	productHandler *ProductHandler,
	reviewHandler *ReviewHandler,
	addressHandler *AddressHandler,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	purchaseHandler *PurchaseHandler,
	webhookHandler *WebhookHandler) (*Router, error) {

	router := gin.New()

	base := NewHandler(logger)

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.RegisterUser)
			users.POST("/login", userHandler.LoginUser)

			authed := users.Group("")
			{
				authed.Use(authCheck(tokenService, base))
				authed.GET("/:id", userHandler.GetUser)
				authed.PUT("/:id", userHandler.UpdateUser)

				admin := authed.Group("")
				{
					admin.Use(adminCheck(base))
					admin.GET("", userHandler.ListUsers)
					admin.DELETE("/:id", userHandler.DeleteUser)
				}
			}
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/reviews", reviewHandler.ListReviewsByProduct)

			admin := products.Group("")
			{
				admin.Use(authCheck(tokenService, base), adminCheck(base))
				admin.POST("", productHandler.CreateProduct)
				admin.PUT("/:id", productHandler.UpdateProduct)
				admin.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		reviews := api.Group("/reviews")
		{
			reviews.Use(authCheck(tokenService, base))
			reviews.POST("", reviewHandler.CreateReview)
			reviews.GET("", reviewHandler.ListMyReviews)
			reviews.PUT("/:id", reviewHandler.UpdateReview)
			reviews.DELETE("/:id", reviewHandler.DeleteReview)
		}

		addresses := api.Group("/addresses")
		{
			addresses.Use(authCheck(tokenService, base))
			addresses.POST("", addressHandler.CreateAddress)
			addresses.GET("", addressHandler.ListAddresses)
			addresses.GET("/:id", addressHandler.GetAddress)
			addresses.PUT("/:id", addressHandler.UpdateAddress)
			addresses.DELETE("/:id", addressHandler.DeleteAddress)
		}

		orders := api.Group("/orders")
		{
			orders.Use(authCheck(tokenService, base))
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)

			admin := orders.Group("")
			{
				admin.Use(adminCheck(base))
				admin.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
				admin.DELETE("/:id", orderHandler.DeleteOrder)
			}
		}

		payments := api.Group("/payments")
		{
			payments.Use(authCheck(tokenService, base))
			payments.GET("", paymentHandler.ListPayments)
			payments.GET("/:id", paymentHandler.GetPayment)
		}

		purchase := api.Group("/purchase")
		{
			purchase.Use(authCheck(tokenService, base))
			purchase.POST("/confirm", purchaseHandler.ConfirmPayment)
			purchase.POST("/:orderID", purchaseHandler.InitiatePurchase)
		}

		// The gateway signs its requests; no bearer auth here.
		api.POST("/webhooks/gateway", webhookHandler.HandleGatewayEvent)
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
