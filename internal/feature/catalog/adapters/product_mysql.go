// Package adapters provides repository implementations for the catalog feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"storefront_backend/internal/feature/catalog/domain/entity"
	"storefront_backend/internal/feature/catalog/usecase"
)

// productMySQL is the GORM implementation of usecase.ProductRepository.
type productMySQL struct {
	db *gorm.DB
}

var _ usecase.ProductRepository = (*productMySQL)(nil)

// NewProductRepository creates a productMySQL repository on the given connection.
func NewProductRepository(db *gorm.DB) *productMySQL {
	return &productMySQL{db: db}
}

// ListAll returns every product ordered by id.
func (r *productMySQL) ListAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Order("id_producto ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByIDs returns the products matching ids.
func (r *productMySQL) FindByIDs(ctx context.Context, ids []string) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var products []entity.Product
	if err := r.db.WithContext(ctx).Where("id_producto IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
