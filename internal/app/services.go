// Package app provides service initialization.
package app

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/circuitbreaker"
	"github.com/guttosm/catering-service/internal/geo"
	"github.com/guttosm/catering-service/internal/notify"
)

// GeoComponents holds the distance resolution stack.
type GeoComponents struct {
	Resolver       geo.Resolver
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeGeo builds the geocoding resolver: an HTTP client behind a
// circuit breaker, wrapped with a TTL cache so repeated address lookups
// stay off the network.
func InitializeGeo(cfg config.GeoConfig) *GeoComponents {
	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "geocoder",
	})

	resolver := geo.NewGeocodeResolver(geo.Config{
		BaseURL:         cfg.BaseURL,
		Origin:          geo.LatLng{Lat: cfg.OriginLat, Lng: cfg.OriginLng},
		RoutingOverhead: cfg.RoutingOverhead,
		Timeout:         cfg.Timeout,
	}, breaker)

	return &GeoComponents{
		Resolver:       geo.NewCachedResolver(resolver, cfg.CacheSize, cfg.CacheTTL),
		CircuitBreaker: breaker,
	}
}

// NotifyComponents holds the order handoff channels. Unconfigured channels
// fall back to no-ops so checkout never depends on them.
type NotifyComponents struct {
	WhatsApp  *notify.WhatsAppBuilder
	Publisher notify.OrderPublisher
	Emails    notify.EmailSender
}

// InitializeNotify builds the WhatsApp message builder, the Kafka order
// publisher, and the SendGrid confirmation sender.
func InitializeNotify(cfg config.NotifyConfig) *NotifyComponents {
	whatsapp := notify.NewWhatsAppBuilder(notify.WhatsAppConfig{
		BusinessPhone: cfg.WhatsAppBusinessPhone,
	})

	var publisher notify.OrderPublisher = notify.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := notify.NewKafkaOrderPublisher(notify.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect Kafka producer - order events disabled")
		} else {
			publisher = kafkaPublisher
			log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("Kafka order publisher ready")
		}
	}

	var emails notify.EmailSender = notify.NoopEmailSender{}
	if cfg.SendGridAPIKey != "" && cfg.EmailFrom != "" {
		emails = notify.NewSendGridSender(notify.EmailConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.EmailFrom,
			FromName:  cfg.EmailFromName,
		}, whatsapp)
	}

	return &NotifyComponents{
		WhatsApp:  whatsapp,
		Publisher: publisher,
		Emails:    emails,
	}
}
