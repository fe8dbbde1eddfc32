package main

import (
	"context"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/velmart/storefront/internal/adapter/auth"
	"github.com/velmart/storefront/internal/adapter/config"
	"github.com/velmart/storefront/internal/adapter/gateway"
	"github.com/velmart/storefront/internal/adapter/handler/http"
	"github.com/velmart/storefront/internal/adapter/logger"
	"github.com/velmart/storefront/internal/adapter/storage"
	"github.com/velmart/storefront/internal/adapter/storage/repository"
	"github.com/velmart/storefront/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	gatewayClient, err := gateway.NewClient(conf.Gateway, log.Named("Gateway"))
	if err != nil {
		log.Error("gateway client creating error", zap.Error(err))
		return
	}

	taxRate, err := decimal.Parse(conf.Pricing.TaxRate)
	if err != nil {
		log.Error("tax rate parse error", zap.Error(err))
		return
	}
	domesticRate, err := decimal.Parse(conf.Pricing.DomesticRate)
	if err != nil {
		log.Error("domestic shipping rate parse error", zap.Error(err))
		return
	}
	internationalRate, err := decimal.Parse(conf.Pricing.InternationalRate)
	if err != nil {
		log.Error("international shipping rate parse error", zap.Error(err))
		return
	}

	userService, err := service.NewUserService(repo, tokenService, log.Named("UserService"))
	if err != nil {
		log.Error("user service creating error", zap.Error(err))
		return
	}
	catalogService, err := service.NewCatalogService(repo, log.Named("CatalogService"))
	if err != nil {
		log.Error("catalog service creating error", zap.Error(err))
		return
	}
	reviewService, err := service.NewReviewService(repo, log.Named("ReviewService"))
	if err != nil {
		log.Error("review service creating error", zap.Error(err))
		return
	}
	addressService, err := service.NewAddressService(repo, log.Named("AddressService"))
	if err != nil {
		log.Error("address service creating error", zap.Error(err))
		return
	}
	orderService, err := service.NewOrderService(repo, log.Named("OrderService"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}
	paymentService, err := service.NewPaymentService(repo, log.Named("PaymentService"))
	if err != nil {
		log.Error("payment service creating error", zap.Error(err))
		return
	}

	purchaseService, err := service.NewPurchaseService(
		repo,
		gatewayClient,
		service.NewCodeDiscountResolver(repo),
		service.NewZoneShippingCalculator(repo, conf.Pricing.HomeCountry, domesticRate, internationalRate),
		service.NewFlatTaxCalculator(taxRate),
		conf.Gateway.Currency,
		log.Named("PurchaseService"),
	)
	if err != nil {
		log.Error("purchase service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(userService, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	productHandler, err := http.NewProductHandler(catalogService, log.Named("Product handler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}
	reviewHandler, err := http.NewReviewHandler(reviewService, log.Named("Review handler"))
	if err != nil {
		log.Error("review handler creating error", zap.Error(err))
		return
	}
	addressHandler, err := http.NewAddressHandler(addressService, log.Named("Address handler"))
	if err != nil {
		log.Error("address handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(orderService, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(paymentService, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	purchaseHandler, err := http.NewPurchaseHandler(purchaseService, log.Named("Purchase handler"))
	if err != nil {
		log.Error("purchase handler creating error", zap.Error(err))
		return
	}
	webhookHandler, err := http.NewWebhookHandler(purchaseService, log.Named("Webhook handler"))
	if err != nil {
		log.Error("webhook handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, log.Named("Router"),
		userHandler, productHandler, reviewHandler, addressHandler,
		orderHandler, paymentHandler, purchaseHandler, webhookHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
