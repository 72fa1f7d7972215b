// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"storefront_backend/internal/app/router"
	accountadapters "storefront_backend/internal/feature/account/adapters"
	accounthandler "storefront_backend/internal/feature/account/transport/handler"
	accountusecase "storefront_backend/internal/feature/account/usecase"
	catalogadapters "storefront_backend/internal/feature/catalog/adapters"
	cataloghandler "storefront_backend/internal/feature/catalog/transport/handler"
	catalogusecase "storefront_backend/internal/feature/catalog/usecase"
	orderadapters "storefront_backend/internal/feature/orders/adapters"
	orderhandler "storefront_backend/internal/feature/orders/transport/handler"
	orderusecase "storefront_backend/internal/feature/orders/usecase"
	"storefront_backend/internal/platform/config"
	"storefront_backend/internal/platform/http/handler"
	"storefront_backend/internal/platform/storage"
	"storefront_backend/internal/platform/throttle"
	"storefront_backend/internal/shared/publicurl"
)

// NewPhotoStorage returns S3 storage when a bucket is configured, local disk otherwise.
func NewPhotoStorage(ctx context.Context, cfg config.Config) (accountusecase.PhotoStorage, error) {
	if cfg.S3.Bucket == "" {
		return storage.NewDiskStorage(cfg.UploadDir, "uploads"), nil
	}
	client, err := storage.NewS3Client(ctx, cfg.S3)
	if err != nil {
		return nil, err
	}
	slog.Info("profile photos stored in S3", "bucket", cfg.S3.Bucket)
	return storage.NewS3Storage(client, cfg.S3), nil
}

// NewLoginThrottle returns a Redis-backed throttle, or nil when Redis is unavailable.
func NewLoginThrottle(rdb *redis.Client, cfg config.Config) accountusecase.LoginThrottle {
	if rdb == nil {
		return nil
	}
	return throttle.NewLoginThrottleRedis(rdb, "login_fail", cfg.LoginThrottleMax, cfg.LoginThrottleWindow)
}

// NewPriceCatalog returns the catalog when orders are priced from it, nil otherwise.
func NewPriceCatalog(cfg config.Config, catalog *catalogusecase.CatalogUsecase) orderusecase.PriceCatalog {
	if cfg.OrderPriceSource != config.PriceSourceCatalog {
		return nil
	}
	return catalog
}

// NewRouter wires repositories, usecases and handlers into the HTTP router.
// rdb may be nil.
func NewRouter(ctx context.Context, db *gorm.DB, rdb *redis.Client, cfg config.Config, logger *slog.Logger) (*gin.Engine, error) {
	photos, err := NewPhotoStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Repository
	productRepo := catalogadapters.NewProductRepository(db)
	userRepo := accountadapters.NewUserMySQL(db)
	orderRepo := orderadapters.NewOrderMySQL(db)

	// Usecase
	catalogUC := catalogusecase.NewCatalogUsecase(productRepo)
	accountUC := accountusecase.NewAccountUsecase(userRepo, photos, NewLoginThrottle(rdb, cfg))
	orderUC := orderusecase.NewOrderUsecase(orderRepo, NewPriceCatalog(cfg, catalogUC))

	// Handler
	handlers := router.Handlers{
		Catalog: cataloghandler.NewProductHandler(catalogUC),
		Account: accounthandler.NewAccountHandler(accountUC),
		Orders:  orderhandler.NewOrderHandler(orderUC),
		Ready: handler.Ready(func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
	}

	urls, err := publicurl.NewSource(cfg.PublicBaseURL, cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}

	return router.NewRouter(handlers, router.StaticDirs{Uploads: cfg.UploadDir, Root: cfg.StaticDir}, urls, logger), nil
}
