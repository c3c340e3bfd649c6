// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/http"
	"github.com/guttosm/catering-service/internal/middleware"
)

// InitializeApp creates and wires all application dependencies. The
// returned cleanup stops background workers and closes connections; call
// it after the server has shut down.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	dbComponents := InitializeDatabase(cfg)
	geoComponents := InitializeGeo(cfg.Geo)
	notifyComponents := InitializeNotify(cfg.Notify)

	routerComponents := InitializeRouter(dbComponents, geoComponents, notifyComponents, cfg)

	// Batch request-log writes once a logging service exists.
	if dbComponents != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	router := http.NewRouter(
		routerComponents.Storefront,
		routerComponents.Admin,
		routerComponents.HealthHandler,
		routerComponents.Config,
	)

	cleanup := func() {
		if routerComponents.DeliveryService != nil {
			routerComponents.DeliveryService.Stop()
		}
		middleware.StopAsyncLogger()
		if err := notifyComponents.Publisher.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close order publisher")
		}
		if dbComponents != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := dbComponents.DB.Close(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to close MongoDB connection")
			}
		}
	}

	return router, cleanup
}
