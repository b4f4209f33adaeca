package app

import (
	"context"

	"go-storefront/internal/admin"
	"go-storefront/internal/auth"
	"go-storefront/internal/cart"
	"go-storefront/internal/catalog"
	"go-storefront/internal/checkout"
	"go-storefront/internal/config"
	"go-storefront/internal/kv"
	"go-storefront/internal/product"
	"go-storefront/internal/toast"
	"go-storefront/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, cfg config.Config, slots kv.Store, logger *zap.Logger) {
	// --- Shared State ---
	toasts := toast.NewChannel(cfg.ToastTTL)

	cartStore := cart.NewStore(slots, toasts, logger)
	cartStore.Restore(context.Background())

	// --- Service Clients ---
	tokenSource := auth.NewKVSource(slots)
	httpClient := auth.NewHTTPClient(tokenSource)
	productClient := product.NewClient(cfg.ProductAPIURL, httpClient)
	userClient := user.NewClient(cfg.ProductAPIURL, httpClient)

	// --- Models & Services ---
	catalogModel := catalog.NewModel(productClient, nil, toasts, logger)
	checkoutService := checkout.NewService(cartStore, toasts, cfg.CheckoutDelay, logger)

	// --- Handlers ---
	cartHandler := cart.NewHandler(cartStore, productClient)
	catalogHandler := catalog.NewHandler(catalogModel)
	productHandler := product.NewHandler(productClient)
	checkoutHandler := checkout.NewHandler(checkoutService)
	toastHandler := toast.NewHandler(toasts)
	adminHandler := admin.NewHandler(productClient, userClient)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		product.RegisterRoutes(api, productHandler)
		cart.RegisterRoutes(api, cartHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
		toast.RegisterRoutes(api, toastHandler)
		admin.RegisterRoutes(api, adminHandler)
	}
}
