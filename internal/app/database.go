// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/config"
	"github.com/guttosm/catering-service/internal/circuitbreaker"
	"github.com/guttosm/catering-service/internal/domain/model"
	"github.com/guttosm/catering-service/internal/repository"
	"github.com/guttosm/catering-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	MenuRepo       repository.MenuRepositoryInterface
	RatiosRepo     repository.RatiosRepositoryInterface
	SettingsRepo   repository.SettingsRepositoryInterface
	CartRepo       repository.CartRepositoryInterface
	OrderRepo      repository.OrderRepositoryInterface
	AdminRepo      repository.AdminRepositoryInterface
	LoggingService service.LoggingService

	ConfigCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker   *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories and circuit breakers. Returns nil if the database is
// disabled or the connection fails: the service then runs with compiled-in
// configuration defaults and in-memory carts are not available, so most
// deployments keep it enabled.
func InitializeDatabase(cfg config.Config) *DatabaseComponents {
	dbCfg := cfg.Database
	if !dbCfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(dbCfg.URI, dbCfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(dbCfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	configCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: dbCfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: dbCfg.CircuitBreakerSuccessThreshold,
		Timeout:          dbCfg.CircuitBreakerTimeout,
		Name:             "mongodb-config",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: dbCfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: dbCfg.CircuitBreakerSuccessThreshold,
		Timeout:          dbCfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories. Configuration reads degrade to compiled-in
	// defaults behind an open circuit; log writes are dropped.
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	loggingService := service.NewLoggingService(logsRepo)

	ratiosRepo := repository.NewRatiosRepositoryWithCircuitBreaker(repository.NewRatiosRepository(db), configCB)
	settingsRepo := repository.NewSettingsRepositoryWithCircuitBreaker(repository.NewSettingsRepository(db), configCB)
	adminRepo := repository.NewAdminRepository(db)

	if err := seedConfiguration(ratiosRepo, settingsRepo, cfg.Ordering); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default configuration")
	}
	if err := seedAdminUser(adminRepo, cfg.Auth); err != nil {
		log.Warn().Err(err).Msg("Failed to seed admin user")
	}

	return &DatabaseComponents{
		DB:                   db,
		MenuRepo:             repository.NewMenuRepository(db),
		RatiosRepo:           ratiosRepo,
		SettingsRepo:         settingsRepo,
		CartRepo:             repository.NewCartRepository(db),
		OrderRepo:            repository.NewOrderRepository(db),
		AdminRepo:            adminRepo,
		LoggingService:       loggingService,
		ConfigCircuitBreaker: configCB,
		LogsCircuitBreaker:   logsCB,
	}
}

// seedConfiguration stores the default ratio table and ordering thresholds
// when none exist yet, so the admin surface always has something to edit.
func seedConfiguration(
	ratios repository.RatiosRepositoryInterface,
	settings repository.SettingsRepositoryInterface,
	ordering config.OrderingConfig,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	activeTable, err := ratios.GetActive(ctx)
	if err != nil {
		return err
	}
	if activeTable == nil {
		table := model.DefaultRatioTable()
		table.UpdatedAt = time.Now()
		table.UpdatedBy = "system"
		if err := ratios.Save(ctx, &table); err != nil {
			return err
		}
		log.Info().Msg("Created default ratio table")
	}

	activeSettings, err := settings.GetActive(ctx)
	if err != nil {
		return err
	}
	if activeSettings == nil {
		s := model.OrderSettings{
			MinOrderAmount:        ordering.MinOrderAmount,
			FreeDeliveryThreshold: ordering.FreeDeliveryThreshold,
			ServiceRadiusKm:       ordering.ServiceRadiusKm,
			DefaultTrayCapacity:   ordering.DefaultTrayCapacity,
			UpdatedAt:             time.Now(),
			UpdatedBy:             "system",
		}
		if err := settings.Save(ctx, &s); err != nil {
			return err
		}
		log.Info().
			Float64("min_order", s.MinOrderAmount).
			Float64("free_delivery", s.FreeDeliveryThreshold).
			Msg("Created default order settings")
	}

	return nil
}

// seedAdminUser creates the configured seed admin when the email is not
// taken yet. No-op when no seed credentials are configured.
func seedAdminUser(admins repository.AdminRepositoryInterface, auth config.AuthConfig) error {
	if auth.SeedAdminEmail == "" || auth.SeedAdminPassword == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := admins.FindByEmail(ctx, auth.SeedAdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := service.HashPassword(auth.SeedAdminPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	user := &model.AdminUser{
		Email:     auth.SeedAdminEmail,
		Password:  hash,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := admins.Create(ctx, user); err != nil {
		return err
	}

	log.Info().Str("email", auth.SeedAdminEmail).Msg("Created seed admin user")
	return nil
}
