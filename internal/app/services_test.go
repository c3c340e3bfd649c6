//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/notify"
)

func TestInitializeGeo(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.GeoConfig
	}{
		{
			name: "with cache",
			cfg: config.GeoConfig{
				BaseURL:         "https://nominatim.openstreetmap.org",
				OriginLat:       32.794,
				OriginLng:       34.989,
				RoutingOverhead: 1.25,
				Timeout:         5 * time.Second,
				CacheSize:       256,
				CacheTTL:        15 * time.Minute,
			},
		},
		{
			name: "cache disabled",
			cfg: config.GeoConfig{
				BaseURL:         "https://nominatim.openstreetmap.org",
				RoutingOverhead: 1.25,
				Timeout:         5 * time.Second,
				CacheSize:       0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeGeo(tt.cfg)

			assert.NotNil(t, components)
			assert.NotNil(t, components.Resolver)
			assert.NotNil(t, components.CircuitBreaker)
			assert.Equal(t, "closed", components.CircuitBreaker.GetStats().State)
		})
	}
}

func TestInitializeNotify(t *testing.T) {
	t.Run("unconfigured channels fall back to no-ops", func(t *testing.T) {
		components := InitializeNotify(config.NotifyConfig{
			WhatsAppBusinessPhone: "972501234567",
		})

		assert.NotNil(t, components.WhatsApp)
		assert.IsType(t, notify.NoopPublisher{}, components.Publisher)
		assert.IsType(t, notify.NoopEmailSender{}, components.Emails)
	})

	t.Run("sendgrid sender when key and from are set", func(t *testing.T) {
		components := InitializeNotify(config.NotifyConfig{
			WhatsAppBusinessPhone: "972501234567",
			SendGridAPIKey:        "SG.test",
			EmailFrom:             "orders@example.com",
			EmailFromName:         "Catering Orders",
		})

		assert.NotNil(t, components.Emails)
		assert.IsType(t, &notify.SendGridSender{}, components.Emails)
	})

	t.Run("sendgrid requires a from address", func(t *testing.T) {
		components := InitializeNotify(config.NotifyConfig{
			SendGridAPIKey: "SG.test",
		})

		assert.IsType(t, notify.NoopEmailSender{}, components.Emails)
	})
}
