// Command bootstrap creates the storefront schema and seeds the menu.
// It is safe to run repeatedly.
package main

import (
	"context"
	"os"
	"time"

	"storefront_backend/internal/platform/config"
	"storefront_backend/internal/platform/db"
	"storefront_backend/internal/platform/logging"
)

func main() {
	config.LoadDotEnv()
	logger := logging.New(os.Stdout, os.Getenv("LOG_LEVEL"))

	store, err := db.OpenDB(db.LoadConfigFromEnv())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.Migrate(ctx, store); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := db.Seed(ctx, store); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
	logger.Info("bootstrap ok", "products", len(db.Menu()))
}
