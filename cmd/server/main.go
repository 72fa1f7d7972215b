package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"storefront_backend/internal/app/di"
	"storefront_backend/internal/platform/config"
	"storefront_backend/internal/platform/db"
	"storefront_backend/internal/platform/logging"
	"storefront_backend/internal/platform/redis"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stdout, cfg.LogLevel)
	ctx := context.Background()

	// db
	store, err := db.OpenDB(cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if cfg.RunMigrations {
		if err := db.Migrate(ctx, store); err != nil {
			logger.Error("migration failed", "error", err)
			os.Exit(1)
		}
		if err := db.Seed(ctx, store); err != nil {
			logger.Error("seed failed", "error", err)
			os.Exit(1)
		}
		logger.Info("schema migrated and menu seeded")
	}

	// Redis is optional; without it logins are not throttled.
	var rdb *goredis.Client
	if c, err := redis.NewRedisClient(ctx, cfg.Redis); err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Warn("redis unavailable, login throttle disabled", "error", err)
		}
	} else {
		rdb = c
		defer func() {
			if err := rdb.Close(); err != nil {
				logger.Error("failed to close redis client", "error", err)
			}
		}()
	}

	router, err := di.NewRouter(ctx, store, rdb, cfg, logger)
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	logger.Info("storefront listening", "port", cfg.Port, "price_source", cfg.OrderPriceSource)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
