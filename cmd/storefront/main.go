// Command storefront is the terminal storefront client.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"storefront_backend/internal/platform/config"
	platformhttp "storefront_backend/internal/platform/http"
	"storefront_backend/internal/platform/logging"
	"storefront_backend/internal/storefront"
	"storefront_backend/internal/storefront/cli"
)

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "storefront.json"
	}
	return filepath.Join(dir, "storefront", "state.json")
}

func main() {
	config.LoadDotEnv()
	cfg := storefront.LoadConfig()

	flag.StringVar(&cfg.BaseURL, "api", cfg.BaseURL, "storefront server address")
	statePath := flag.String("state", defaultStatePath(), "file holding cart and session")
	ephemeral := flag.Bool("ephemeral", false, "keep cart and session in memory only")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logging.New(os.Stderr, *logLevel)

	var store storefront.Storage
	if *ephemeral {
		store = storefront.NewMemoryStorage()
	} else {
		fs, err := storefront.NewFileStorage(*statePath)
		if err != nil {
			slog.Error("failed to open state file", "path", *statePath, "error", err)
			os.Exit(1)
		}
		store = fs
	}

	state, err := storefront.Load(store)
	if err != nil {
		slog.Error("failed to load state", "error", err)
		os.Exit(1)
	}

	api := storefront.NewAPIClient(cfg, platformhttp.NewHTTPClient(cfg.Timeout))
	app := storefront.NewApp(api, store, storefront.NewTextView(os.Stdout, api.BaseURL()), state)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A failed menu load is already reported; the cart and session still work.
	_ = app.Start(ctx)

	if err := cli.NewREPL(app, os.Stdin, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("storefront stopped", "error", err)
		os.Exit(1)
	}
}
