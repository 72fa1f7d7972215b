// Package usecase implements the business logic for the catalog feature.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"storefront_backend/internal/feature/catalog/domain/entity"
)

// folderAliases maps category folder names as they appear in stored image
// paths to the folder actually mounted by the server.
var folderAliases = map[string]string{
	"Platillos Fuertes": "PlatillosFuertes",
}

// ProductRepository abstracts the persistence layer for products.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProductRepository interface {
	// ListAll returns every product in the catalog.
	ListAll(ctx context.Context) ([]entity.Product, error)

	// FindByIDs returns the products whose id is in ids. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]entity.Product, error)
}

// CatalogUsecase provides read access to the menu.
type CatalogUsecase struct {
	repo ProductRepository
}

// NewCatalogUsecase creates a new CatalogUsecase with the given repository.
func NewCatalogUsecase(r ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{repo: r}
}

// ListProducts returns all products with their image paths normalized to the
// folders the server actually mounts.
func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	for i := range products {
		products[i].ImagePath = NormalizeImagePath(products[i].ImagePath)
	}
	return products, nil
}

// PricesFor returns the current catalog price of each known product id.
func (u *CatalogUsecase) PricesFor(ctx context.Context, ids []string) (map[string]decimal.Decimal, error) {
	products, err := u.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	prices := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	return prices, nil
}

// NormalizeImagePath converts Windows separators to slashes and rewrites
// folder aliases to their mounted name.
func NormalizeImagePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	for from, to := range folderAliases {
		p = strings.ReplaceAll(p, from, to)
	}
	return p
}
