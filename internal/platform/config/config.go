// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"storefront_backend/internal/platform/db"
	"storefront_backend/internal/platform/redis"
	"storefront_backend/internal/platform/storage"
)

// Order price sources.
const (
	PriceSourceClient  = "client"
	PriceSourceCatalog = "catalog"
)

// Config is the full service configuration.
type Config struct {
	Port     string
	LogLevel string

	DB    db.Config
	Redis redis.Config

	// RunMigrations migrates and seeds the store at start-up.
	RunMigrations bool

	UploadDir string
	StaticDir string

	// PublicBaseURL, when set, prefixes every asset URL in responses.
	PublicBaseURL string
	// TrustedProxies may set X-Forwarded-For/Proto/Host. Empty trusts none.
	TrustedProxies []string
	// S3 is used for profile photos when S3.Bucket is set.
	S3 storage.S3Config

	// OrderPriceSource selects whose unit prices are recorded: "client" or "catalog".
	OrderPriceSource string

	LoginThrottleMax    int
	LoginThrottleWindow time.Duration
}

// LoadDotEnv loads .env files when present. Variables already set win.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:             getenv("PORT", "3000"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		DB:               db.LoadConfigFromEnv(),
		Redis:            redis.LoadConfigFromEnv(),
		RunMigrations:    os.Getenv("RUN_MIGRATIONS") == "true",
		UploadDir:        getenv("UPLOAD_DIR", "uploads"),
		StaticDir:        getenv("STATIC_DIR", "public"),
		PublicBaseURL:    os.Getenv("PUBLIC_BASE_URL"),
		TrustedProxies:   getList("TRUSTED_PROXIES"),
		OrderPriceSource: strings.ToLower(getenv("ORDER_PRICE_SOURCE", PriceSourceClient)),
		S3: storage.S3Config{
			Bucket:        os.Getenv("S3_BUCKET"),
			Region:        getenv("S3_REGION", "us-east-1"),
			Endpoint:      os.Getenv("S3_ENDPOINT"),
			AccessKey:     os.Getenv("S3_ACCESS_KEY"),
			SecretKey:     os.Getenv("S3_SECRET_KEY"),
			PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
		},
	}

	switch cfg.OrderPriceSource {
	case PriceSourceClient, PriceSourceCatalog:
	default:
		return Config{}, fmt.Errorf("ORDER_PRICE_SOURCE must be %q or %q, got %q",
			PriceSourceClient, PriceSourceCatalog, cfg.OrderPriceSource)
	}

	var err error
	if cfg.LoginThrottleMax, err = getInt("LOGIN_THROTTLE_MAX", 5); err != nil {
		return Config{}, err
	}
	if cfg.LoginThrottleWindow, err = getDuration("LOGIN_THROTTLE_WINDOW", 15*time.Minute); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, v)
	}
	return d, nil
}
