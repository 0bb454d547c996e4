package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/arbiterhq/arbiter/internal/database"
	"github.com/arbiterhq/arbiter/internal/database/migrations"
	"github.com/arbiterhq/arbiter/internal/setup/config"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var errMigrationName = errors.New("migration name argument is required")

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.NewConnection(ctx, &cfg.Common.PostgreSQL, logger, false)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	migrator := migrate.NewMigrator(db.DB(), migrations.Migrations)

	app := &cli.Command{
		Name:  "db",
		Usage: "Manage the schema of the moderation database",
		Commands: []*cli.Command{
			initCommand(migrator),
			migrateCommand(migrator, logger),
			rollbackCommand(migrator, logger),
			statusCommand(migrator, logger),
			createCommand(migrator, logger),
		},
	}

	return app.Run(ctx, os.Args)
}

// withLock runs fn while holding the migrator lock so concurrent invocations
// cannot interleave schema changes.
func withLock(ctx context.Context, migrator *migrate.Migrator, fn func() error) error {
	if err := migrator.Lock(ctx); err != nil {
		return err
	}
	defer migrator.Unlock(ctx) //nolint:errcheck

	return fn()
}

func initCommand(migrator *migrate.Migrator) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create the migration bookkeeping tables",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return migrator.Init(ctx)
		},
	}
}

func migrateCommand(migrator *migrate.Migrator, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply all unapplied migrations",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return withLock(ctx, migrator, func() error {
				group, err := migrator.Migrate(ctx)
				if err != nil {
					return err
				}

				if group.IsZero() {
					logger.Info("Schema is up to date")
					return nil
				}

				logger.Info("Applied migration group", zap.String("group", group.String()))

				return nil
			})
		},
	}
}

func rollbackCommand(migrator *migrate.Migrator, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "rollback",
		Usage: "Revert the most recent migration group",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return withLock(ctx, migrator, func() error {
				group, err := migrator.Rollback(ctx)
				if err != nil {
					return err
				}

				if group.IsZero() {
					logger.Info("Nothing to roll back")
					return nil
				}

				logger.Info("Reverted migration group", zap.String("group", group.String()))

				return nil
			})
		},
	}
}

func statusCommand(migrator *migrate.Migrator, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Print applied and unapplied migrations",
		Action: func(ctx context.Context, _ *cli.Command) error {
			ms, err := migrator.MigrationsWithStatus(ctx)
			if err != nil {
				return err
			}

			logger.Info("Migration status",
				zap.String("applied", ms.Applied().String()),
				zap.String("unapplied", ms.Unapplied().String()),
				zap.String("last_group", ms.LastGroup().String()))

			return nil
		},
	}
}

func createCommand(migrator *migrate.Migrator, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Generate a new Go migration file",
		ArgsUsage: "NAME",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return errMigrationName
			}

			mf, err := migrator.CreateGoMigration(ctx, c.Args().First())
			if err != nil {
				return err
			}

			logger.Info("Created migration",
				zap.String("name", mf.Name),
				zap.String("path", mf.Path))

			return nil
		},
	}
}
