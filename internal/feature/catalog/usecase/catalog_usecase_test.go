package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront_backend/internal/feature/catalog/domain/entity"
)

// mockProductRepository is a mock implementation of ProductRepository.
type mockProductRepository struct {
	ListAllFunc   func(ctx context.Context) ([]entity.Product, error)
	FindByIDsFunc func(ctx context.Context, ids []string) ([]entity.Product, error)
}

// ListAll is the mock implementation of the ListAll method.
func (m *mockProductRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

// FindByIDs is the mock implementation of the FindByIDs method.
func (m *mockProductRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Product, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func TestCatalogUsecase_ListProducts(t *testing.T) {
	t.Parallel()

	t.Run("normalizes image paths", func(t *testing.T) {
		repo := &mockProductRepository{
			ListAllFunc: func(ctx context.Context) ([]entity.Product, error) {
				return []entity.Product{
					{ID: "f1", ImagePath: `Platillos Fuertes\mole.jpg`},
					{ID: "t1", ImagePath: "Tacos/pastor.jpg"},
				}, nil
			},
		}

		products, err := NewCatalogUsecase(repo).ListProducts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "PlatillosFuertes/mole.jpg", products[0].ImagePath)
		assert.Equal(t, "Tacos/pastor.jpg", products[1].ImagePath)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		repo := &mockProductRepository{
			ListAllFunc: func(ctx context.Context) ([]entity.Product, error) { return nil, dbErr },
		}

		_, err := NewCatalogUsecase(repo).ListProducts(context.Background())

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCatalogUsecase_PricesFor(t *testing.T) {
	t.Parallel()

	repo := &mockProductRepository{
		FindByIDsFunc: func(ctx context.Context, ids []string) ([]entity.Product, error) {
			assert.Equal(t, []string{"t1", "b1"}, ids)
			return []entity.Product{
				{ID: "t1", Price: decimal.RequireFromString("85.00")},
				{ID: "b1", Price: decimal.RequireFromString("35.50")},
			}, nil
		},
	}

	prices, err := NewCatalogUsecase(repo).PricesFor(context.Background(), []string{"t1", "b1"})

	require.NoError(t, err)
	assert.True(t, prices["t1"].Equal(decimal.NewFromInt(85)))
	assert.True(t, prices["b1"].Equal(decimal.RequireFromString("35.5")))
}

func TestNormalizeImagePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Tacos/pastor.jpg", "Tacos/pastor.jpg"},
		{`Bebidas\horchata.jpg`, "Bebidas/horchata.jpg"},
		{"Platillos Fuertes/mole.jpg", "PlatillosFuertes/mole.jpg"},
		{`Platillos Fuertes\enchiladas suizas.jpg`, "PlatillosFuertes/enchiladas suizas.jpg"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeImagePath(tt.in), tt.in)
	}
}
