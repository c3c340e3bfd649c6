//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/mocks"
)

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Ordering: config.OrderingConfig{
			MinOrderAmount:        500,
			FreeDeliveryThreshold: 1500,
			ServiceRadiusKm:       30,
			DefaultTrayCapacity:   10,
			Debounce:              800 * time.Millisecond,
		},
		Auth: config.AuthConfig{
			JWTSecretKey:   "test-secret",
			AccessTokenTTL: 15 * time.Minute,
		},
	}
}

func TestInitializeRouter_WithoutDatabase(t *testing.T) {
	components := InitializeRouter(nil, nil, nil, testConfig())

	assert.NotNil(t, components)
	assert.NotNil(t, components.HealthHandler)
	assert.Nil(t, components.Storefront)
	assert.Nil(t, components.Admin)
	assert.Nil(t, components.DeliveryService)
	assert.Equal(t, 100, components.Config.RateLimit)
	assert.Nil(t, components.Config.LoggingService)
}

func TestInitializeRouter_WithDatabase(t *testing.T) {
	dbComponents := &DatabaseComponents{
		MenuRepo:       new(mocks.MockMenuRepositoryInterface),
		RatiosRepo:     new(mocks.MockRatiosRepositoryInterface),
		SettingsRepo:   new(mocks.MockSettingsRepositoryInterface),
		CartRepo:       new(mocks.MockCartRepositoryInterface),
		OrderRepo:      new(mocks.MockOrderRepositoryInterface),
		AdminRepo:      new(mocks.MockAdminRepositoryInterface),
		LoggingService: new(mocks.MockLoggingService),
	}
	geoComponents := InitializeGeo(config.GeoConfig{
		BaseURL:         "https://nominatim.openstreetmap.org",
		RoutingOverhead: 1.25,
		Timeout:         time.Second,
	})
	notifyComponents := InitializeNotify(config.NotifyConfig{
		WhatsAppBusinessPhone: "972501234567",
	})

	components := InitializeRouter(dbComponents, geoComponents, notifyComponents, testConfig())
	defer components.DeliveryService.Stop()

	assert.NotNil(t, components.Storefront)
	assert.NotNil(t, components.Admin)
	assert.NotNil(t, components.HealthHandler)
	assert.NotNil(t, components.DeliveryService)
	assert.NotNil(t, components.Config.LoggingService)
	assert.NotNil(t, components.Config.AuthService)
	assert.Equal(t, 100, components.Config.RateLimit)
	assert.Equal(t, time.Minute, components.Config.RateWindow)
}
