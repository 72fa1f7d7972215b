// Package handler provides the HTTP handlers of the catalog feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront_backend/internal/api"
	"storefront_backend/internal/feature/catalog/domain/entity"
	"storefront_backend/internal/feature/catalog/transport/http/dto"
	"storefront_backend/internal/shared/publicurl"
)

// CatalogUsecase is the catalog read interface used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
}

// ProductHandler serves the menu.
type ProductHandler struct {
	uc CatalogUsecase
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(uc CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List handles GET /productos.
// Image paths are turned into URLs on the host the client used to reach us.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.uc.ListProducts(c.Request.Context())
	if err != nil {
		slog.Error("list products failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "Error al cargar menú."})
		return
	}

	base := publicurl.FromRequest(c.Request)
	out := make([]dto.ProductItem, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.InexactFloat64(),
			Category:    p.Category,
			ImageURL:    publicurl.Join(base, p.ImagePath),
			Emoji:       p.Emoji,
		})
	}
	c.JSON(http.StatusOK, out)
}
