// Package config provides configuration management for the catering service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Ordering OrderingConfig
	Geo      GeoConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Notify   NotifyConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// OrderingConfig holds the ordering defaults used until an admin stores
// settings of their own.
type OrderingConfig struct {
	MinOrderAmount        float64
	FreeDeliveryThreshold float64
	ServiceRadiusKm       float64
	DefaultTrayCapacity   int
	Debounce              time.Duration
}

// GeoConfig holds geocoding and distance resolution configuration.
type GeoConfig struct {
	BaseURL         string
	OriginLat       float64
	OriginLng       float64
	RoutingOverhead float64
	Timeout         time.Duration
	CacheSize       int
	CacheTTL        time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKeys        map[string]bool
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	// Seed admin, created on first start when the collection is empty.
	SeedAdminEmail    string
	SeedAdminPassword string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// NotifyConfig holds the order handoff channels.
type NotifyConfig struct {
	WhatsAppBusinessPhone string
	KafkaBrokers          []string
	KafkaTopic            string
	SendGridAPIKey        string
	EmailFrom             string
	EmailFromName         string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Ordering: OrderingConfig{
			MinOrderAmount:        getEnvFloat("MIN_ORDER_AMOUNT", 500),
			FreeDeliveryThreshold: getEnvFloat("FREE_DELIVERY_THRESHOLD", 1500),
			ServiceRadiusKm:       getEnvFloat("SERVICE_RADIUS_KM", 30),
			DefaultTrayCapacity:   getEnvInt("DEFAULT_TRAY_CAPACITY", 10),
			Debounce:              getEnvDuration("ADDRESS_DEBOUNCE", 800*time.Millisecond),
		},
		Geo: GeoConfig{
			BaseURL:         getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
			OriginLat:       getEnvFloat("SERVICE_ORIGIN_LAT", 32.794),
			OriginLng:       getEnvFloat("SERVICE_ORIGIN_LNG", 34.989),
			RoutingOverhead: getEnvFloat("ROUTING_OVERHEAD", 1.25),
			Timeout:         getEnvDuration("GEOCODER_TIMEOUT", 5*time.Second),
			CacheSize:       getEnvInt("GEOCODER_CACHE_SIZE", 256),
			CacheTTL:        getEnvDuration("GEOCODER_CACHE_TTL", 15*time.Minute),
		},
		Auth: AuthConfig{
			APIKeys:           parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey:      getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			AccessTokenTTL:    getEnvDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute),
			SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
			SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "catering_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", true),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Notify: NotifyConfig{
			WhatsAppBusinessPhone: getEnv("WHATSAPP_BUSINESS_PHONE", ""),
			KafkaBrokers:          parseStringSlice(os.Getenv("KAFKA_BROKERS")),
			KafkaTopic:            getEnv("KAFKA_ORDERS_TOPIC", "catering.orders.submitted"),
			SendGridAPIKey:        getEnv("SENDGRID_API_KEY", ""),
			EmailFrom:             getEnv("EMAIL_FROM", ""),
			EmailFromName:         getEnv("EMAIL_FROM_NAME", "Catering Orders"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseStringSlice(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	return result
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
