// Package app provides router configuration.
package app

import (
	"context"
	"errors"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/http"
	"github.com/guttosm/catering-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Storefront    *http.StorefrontHandler
	Admin         *http.AdminHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig

	// DeliveryService is exposed so shutdown can cancel pending timers.
	DeliveryService service.DeliveryService
}

// InitializeRouter wires the business services into HTTP handlers and the
// router configuration. The database components are required: the ordering
// core has no in-memory fallback for carts and orders.
func InitializeRouter(
	dbComponents *DatabaseComponents,
	geoComponents *GeoComponents,
	notifyComponents *NotifyComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if dbComponents == nil {
		// Health endpoints only; readiness reports the missing database.
		healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
			return errors.New("database not configured")
		}))
		return &RouterComponents{
			HealthHandler: healthHandler,
			Config:        routerConfig(cfg, nil, nil),
		}
	}

	healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
		return dbComponents.DB.HealthCheck(context.Background())
	}))
	healthHandler.RegisterCircuitBreaker("mongodb_config", dbComponents.ConfigCircuitBreaker)
	healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	if geoComponents.CircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("geocoder", geoComponents.CircuitBreaker)
	}

	suggester := service.NewSuggestionService(
		dbComponents.MenuRepo,
		dbComponents.RatiosRepo,
		dbComponents.SettingsRepo,
		service.WithDefaultTrayCapacity(cfg.Ordering.DefaultTrayCapacity),
	)
	menuService := service.NewMenuService(dbComponents.MenuRepo)
	cartService := service.NewCartService(dbComponents.CartRepo, dbComponents.MenuRepo)
	deliveryService := service.NewDeliveryService(
		dbComponents.CartRepo,
		geoComponents.Resolver,
		service.WithDebounce(cfg.Ordering.Debounce),
	)
	checkoutService := service.NewCheckoutService(
		dbComponents.CartRepo,
		dbComponents.OrderRepo,
		service.NewEligibilityService(dbComponents.SettingsRepo),
		notifyComponents.WhatsApp,
		notifyComponents.Publisher,
		notifyComponents.Emails,
	)
	authService := service.NewAuthService(dbComponents.AdminRepo, service.AuthConfig{
		SecretKey:      cfg.Auth.JWTSecretKey,
		AccessTokenTTL: cfg.Auth.AccessTokenTTL,
	})
	configService := service.NewConfigurationService(dbComponents.RatiosRepo, dbComponents.SettingsRepo)

	storefront := http.NewStorefrontHandler(menuService, suggester, cartService, deliveryService, checkoutService)
	admin := http.NewAdminHandler(
		authService,
		menuService,
		configService,
		service.NewOrderBrowser(dbComponents.OrderRepo),
		dbComponents.LoggingService,
	)

	return &RouterComponents{
		Storefront:      storefront,
		Admin:           admin,
		HealthHandler:   healthHandler,
		Config:          routerConfig(cfg, dbComponents.LoggingService, authService),
		DeliveryService: deliveryService,
	}
}

// routerConfig maps application configuration onto the router options.
func routerConfig(cfg config.Config, logging service.LoggingService, auth service.AuthService) http.RouterConfig {
	return http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LoggingService: logging,
		AuthService:    auth,
	}
}
