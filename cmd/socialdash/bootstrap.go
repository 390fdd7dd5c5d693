// AngelaMos | 2026
// bootstrap.go

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/carterperez-dev/socialdash/internal/config"
	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/storage"
)

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, nil, err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// openSQLStore connects to the configured relational database.
func openSQLStore(
	ctx context.Context,
	cfg *config.Config,
) (*storage.SQLStore, error) {
	var (
		db      *core.Database
		dialect storage.Dialect
		err     error
	)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err = core.NewDatabase(ctx, cfg.Database)
		dialect = storage.DialectPostgres
	case config.DriverSQLite:
		db, err = core.NewSQLiteDatabase(ctx, cfg.Storage.SQLitePath)
		dialect = storage.DialectSQLite
	default:
		return nil, fmt.Errorf(
			"storage driver %q has no database",
			cfg.Storage.Driver,
		)
	}
	if err != nil {
		return nil, err
	}

	return storage.NewSQLStore(
		db.DB,
		dialect,
		storage.WithSQLLocation(cfg.Location()),
	), nil
}

// seedSQLStore loads the demo account. A store that already holds it is
// left untouched.
func seedSQLStore(
	ctx context.Context,
	store *storage.SQLStore,
	loc *time.Location,
	logger *slog.Logger,
) error {
	fx, err := storage.DemoFixtures(time.Now(), loc)
	if err != nil {
		return err
	}

	if err := store.LoadFixtures(ctx, fx); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			logger.Info("demo data already present", "username", storage.DemoUsername)
			return nil
		}
		return fmt.Errorf("seed demo data: %w", err)
	}

	logger.Info("demo data loaded",
		"username", storage.DemoUsername,
		"posts", len(fx.Posts),
		"templates", len(fx.Templates),
	)
	return nil
}

func openStore(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (storage.Storage, error) {
	loc := cfg.Location()

	if cfg.Storage.Driver == config.DriverMemory {
		if !cfg.Storage.SeedDemo {
			return storage.NewMemoryStore(storage.WithLocation(loc)), nil
		}
		return storage.NewSeededMemoryStore(
			ctx,
			time.Now(),
			storage.WithLocation(loc),
		)
	}

	store, err := openSQLStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Storage.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close() //nolint:errcheck // cleanup on startup failure
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("database schema applied", "driver", cfg.Storage.Driver)
	}

	if cfg.Storage.SeedDemo {
		if err := seedSQLStore(ctx, store, loc, logger); err != nil {
			_ = store.Close() //nolint:errcheck // cleanup on startup failure
			return nil, err
		}
	}

	return store, nil
}
