// Package setup bootstraps the shared application dependencies for every
// binary.
package setup

import (
	"context"
	"fmt"
	"log"

	"github.com/arbiterhq/arbiter/internal/content"
	"github.com/arbiterhq/arbiter/internal/database"
	"github.com/arbiterhq/arbiter/internal/database/migrations"
	"github.com/arbiterhq/arbiter/internal/notify"
	"github.com/arbiterhq/arbiter/internal/redis"
	"github.com/arbiterhq/arbiter/internal/setup/config"
	"github.com/arbiterhq/arbiter/internal/setup/telemetry"
	"github.com/arbiterhq/arbiter/internal/tally"
	"github.com/redis/rueidis"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"
)

// App bundles all core dependencies needed by the binaries. Each field is a
// subsystem that needs initialization and cleanup.
type App struct {
	Config       *config.Config    // Application configuration
	Logger       *zap.Logger       // Main application logger
	DBLogger     *zap.Logger       // Database-specific logger
	DB           database.Client   // Database connection pool
	Service      *database.Service // Business logic services
	RedisManager *redis.Manager    // Redis connection manager
	StatusClient rueidis.Client    // Redis client for worker status reporting
	LogManager   *telemetry.Manager
}

// Options tweak the bootstrap for individual binaries.
type Options struct {
	// Content overrides the content snapshot provider. Binaries that never
	// act on live content leave it nil and get an empty static provider.
	Content content.Provider
	// Notifier overrides the outbound event sink. Nil means log-only.
	Notifier notify.Notifier
}

// InitializeApp bootstraps all application dependencies in order, ensuring
// each component has its requirements available.
func InitializeApp(ctx context.Context, serviceType telemetry.ServiceType, logDir string, opts Options) (*App, error) {
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging comes up first to capture setup issues.
	logManager := telemetry.NewManager(serviceType, logDir, &cfg.Common.Debug)

	logger, dbLogger, err := logManager.GetLoggers()
	if err != nil {
		return nil, err
	}

	redisManager := redis.NewManager(&cfg.Common.Redis, logger)

	db, err := checkAndRunMigrations(ctx, &cfg.Common.PostgreSQL, dbLogger)
	if err != nil {
		return nil, err
	}

	tallyClient, err := redisManager.GetClient(redis.TallyDBIndex)
	if err != nil {
		return nil, err
	}

	statusClient, err := redisManager.GetClient(redis.WorkerStatusDBIndex)
	if err != nil {
		return nil, err
	}

	provider := opts.Content
	if provider == nil {
		provider = &content.StaticProvider{}
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}

	service := database.NewService(db.DB(), db.Model(), database.ServiceDependencies{
		Tally:    tally.NewTracker(tallyClient, logger),
		Content:  provider,
		Notifier: notifier,
		Config:   &cfg.Common.Moderation,
	}, logger)

	return &App{
		Config:       cfg,
		Logger:       logger,
		DBLogger:     dbLogger.Named("database"),
		DB:           db,
		Service:      service,
		RedisManager: redisManager,
		StatusClient: statusClient,
		LogManager:   logManager,
	}, nil
}

// Cleanup shuts down all components in reverse initialization order. Cleanup
// errors are logged, never fatal, so every component gets its attempt.
func (s *App) Cleanup(_ context.Context) {
	if err := s.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	if err := s.DBLogger.Sync(); err != nil {
		log.Printf("Failed to sync DB logger: %v", err)
	}

	if err := s.DB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}

	// Redis goes last as other components might still need it above.
	s.RedisManager.Close()
}

// checkAndRunMigrations refuses to start on a stale schema. Migrations only
// ever run through the db tool, so a long-lived worker cannot mutate the
// schema on boot.
func checkAndRunMigrations(ctx context.Context, cfg *config.PostgreSQL, dbLogger *zap.Logger) (database.Client, error) {
	db, err := database.NewConnection(ctx, cfg, dbLogger, false)
	if err != nil {
		return nil, err
	}

	migrator := migrate.NewMigrator(db.DB(), migrations.Migrations)

	ms, err := migrator.MigrationsWithStatus(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to check migration status: %w", err)
	}

	if unapplied := ms.Unapplied(); len(unapplied) > 0 {
		db.Close()
		return nil, fmt.Errorf("database has %d unapplied migrations, run the db tool first", len(unapplied))
	}

	return db, nil
}
