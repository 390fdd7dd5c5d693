// AngelaMos | 2026
// serve.go

package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/carterperez-dev/socialdash/internal/analytics"
	"github.com/carterperez-dev/socialdash/internal/brand"
	"github.com/carterperez-dev/socialdash/internal/connection"
	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/health"
	"github.com/carterperez-dev/socialdash/internal/middleware"
	"github.com/carterperez-dev/socialdash/internal/post"
	"github.com/carterperez-dev/socialdash/internal/posttemplate"
	"github.com/carterperez-dev/socialdash/internal/server"
	"github.com/carterperez-dev/socialdash/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  serveCommand,
	}
}

func serveCommand(cmd *cobra.Command, _ []string) error {
	return run(cmd.Context())
}

//nolint:funlen // bootstrap code is inherently verbose
func run(parent context.Context) error {
	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
		"storage", cfg.Storage.Driver,
	)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("failed to initialize telemetry", "error", err)
	} else if telemetry != nil {
		logger.Info("OpenTelemetry tracer initialized",
			"endpoint", cfg.Otel.Endpoint,
		)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), drainDelay)
		defer cancel()
		if err := telemetry.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck
	logger.Info("storage ready", "driver", cfg.Storage.Driver)

	if _, err := store.GetUser(ctx, cfg.App.DemoUserID); err != nil {
		if !errors.Is(err, core.ErrNotFound) {
			return err
		}
		logger.Warn("demo user does not exist; run the seed command",
			"user_id", cfg.App.DemoUserID,
		)
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redis.Close() //nolint:errcheck
	if redis != nil {
		logger.Info("redis connected",
			"pool_size", cfg.Redis.PoolSize,
		)
	}

	loc := cfg.Location()

	userHandler := user.NewHandler(user.NewService(store))
	brandHandler := brand.NewHandler(brand.NewService(store))
	connectionHandler := connection.NewHandler(connection.NewService(store))
	templateHandler := posttemplate.NewHandler(posttemplate.NewService(store))
	postHandler := post.NewHandler(post.NewService(store, loc))
	analyticsHandler := analytics.NewHandler(store, loc)

	healthHandler := health.NewHandler(store, redis.Checker())

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing(telemetry.Tracer(cfg.Otel.ServiceName)))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.DemoUser(cfg.App.DemoUserID))

		if cfg.RateLimit.Enabled {
			keyFunc := middleware.KeyByUser
			if cfg.RateLimit.PerEndpoint {
				keyFunc = middleware.KeyByUserAndEndpoint
			}

			limiter := middleware.NewRateLimiter(redis.Client(), middleware.RateLimitConfig{
				Limit: middleware.PerWindow(
					cfg.RateLimit.Requests,
					cfg.RateLimit.Burst,
					cfg.RateLimit.Window,
				),
				KeyFunc:  keyFunc,
				FailOpen: true,
			})
			r.Use(limiter.Handler)
		}

		userHandler.RegisterRoutes(r)
		brandHandler.RegisterRoutes(r)
		connectionHandler.RegisterRoutes(r)
		templateHandler.RegisterRoutes(r)
		postHandler.RegisterRoutes(r)
		analyticsHandler.RegisterRoutes(r)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}
