// Package router assembles the gin engine.
package router

import (
	"log/slog"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	accounthandler "storefront_backend/internal/feature/account/transport/handler"
	cataloghandler "storefront_backend/internal/feature/catalog/transport/handler"
	orderhandler "storefront_backend/internal/feature/orders/transport/handler"
	"storefront_backend/internal/platform/http/handler"
	"storefront_backend/internal/platform/http/middleware"
	"storefront_backend/internal/shared/publicurl"
)

// CategoryFolders are the image folders mounted from the static root.
var CategoryFolders = []string{"Tacos", "PlatillosFuertes", "Antojitos", "Postres", "Bebidas", "imagenes"}

// Handlers groups the feature handlers.
type Handlers struct {
	Catalog *cataloghandler.ProductHandler
	Account *accounthandler.AccountHandler
	Orders  *orderhandler.OrderHandler
	// Ready is optional.
	Ready gin.HandlerFunc
}

// StaticDirs holds the directories served as-is.
type StaticDirs struct {
	Uploads string
	Root    string
}

// NewRouter registers middleware, static mounts and all API routes.
// Only the proxies trusted by urls may set the client IP or forwarded host.
func NewRouter(h Handlers, dirs StaticDirs, urls *publicurl.Source, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(urls.TrustedProxies()); err != nil {
		logger.Warn("trusted proxies rejected, trusting none", "error", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(logger), middleware.PublicBaseURL(urls))
	// the browser client is served from another origin
	r.Use(cors.Default())

	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	if h.Ready != nil {
		r.GET("/readyz", h.Ready)
	}

	r.Static("/uploads", dirs.Uploads)
	for _, f := range CategoryFolders {
		r.Static("/"+f, filepath.Join(dirs.Root, f))
	}

	// catalog
	r.GET("/productos", h.Catalog.List)

	// account: no token, the client keeps the returned profile
	r.POST("/registrar", h.Account.Register)
	r.POST("/login", h.Account.Login)
	r.PUT("/actualizar-perfil", h.Account.UpdateProfile)
	r.POST("/subir-foto", h.Account.UploadPhoto)

	// orders
	r.POST("/crear-pedido", h.Orders.Place)
	r.GET("/mis-pedidos/:id_usuario", h.Orders.History)

	return r
}
