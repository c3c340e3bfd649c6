package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 500.0, cfg.Ordering.MinOrderAmount)
		assert.Equal(t, 1500.0, cfg.Ordering.FreeDeliveryThreshold)
		assert.Equal(t, 30.0, cfg.Ordering.ServiceRadiusKm)
		assert.Equal(t, 10, cfg.Ordering.DefaultTrayCapacity)
		assert.Equal(t, 800*time.Millisecond, cfg.Ordering.Debounce)
		assert.Equal(t, 1.25, cfg.Geo.RoutingOverhead)
		assert.Equal(t, "catering_service", cfg.Database.DatabaseName)
		assert.True(t, cfg.Database.Enabled)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("MIN_ORDER_AMOUNT", "750")
		_ = os.Setenv("SERVICE_RADIUS_KM", "45.5")
		_ = os.Setenv("ADDRESS_DEBOUNCE", "250ms")
		_ = os.Setenv("API_KEYS", "key1,key2")
		_ = os.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 750.0, cfg.Ordering.MinOrderAmount)
		assert.Equal(t, 45.5, cfg.Ordering.ServiceRadiusKm)
		assert.Equal(t, 250*time.Millisecond, cfg.Ordering.Debounce)
		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.Notify.KafkaBrokers)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("MIN_ORDER_AMOUNT", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("MONGODB_ENABLED", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, 500.0, cfg.Ordering.MinOrderAmount)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.True(t, cfg.Database.Enabled)
	})

	t.Run("parses API keys with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEYS", " key1 , key2 , key3 ")
		defer os.Clearenv()

		cfg := Load()

		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.True(t, cfg.Auth.APIKeys["key3"])
	})

	t.Run("returns nil for empty API keys and brokers", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Auth.APIKeys)
		assert.Nil(t, cfg.Notify.KafkaBrokers)
	})

	t.Run("appends custom CORS origins to defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://shop.example.com")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://shop.example.com")
	})
}
