package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront_backend/internal/feature/orders/domain/entity"
)

// OrderRepository persists orders.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type OrderRepository interface {
	// CreateWithLines stores the header and all lines atomically and sets order.ID.
	// On any failure nothing is stored.
	CreateWithLines(ctx context.Context, order *entity.Order) error

	// ListByUser returns the user's orders newest first, lines included.
	ListByUser(ctx context.Context, userID uint) ([]entity.Order, error)
}

// PriceCatalog looks up current catalog prices.
type PriceCatalog interface {
	PricesFor(ctx context.Context, ids []string) (map[string]decimal.Decimal, error)
}

// orderUsecase places orders and reads order history.
type orderUsecase struct {
	orders OrderRepository
	// prices is nil when the client-submitted prices are trusted.
	prices PriceCatalog
	now    func() time.Time
}

// NewOrderUsecase creates a new orderUsecase.
// With a nil prices catalog the unit prices sent by the client are recorded as is.
func NewOrderUsecase(orders OrderRepository, prices PriceCatalog) *orderUsecase {
	return &orderUsecase{orders: orders, prices: prices, now: time.Now}
}

// PlaceOrder records an order with one line per item and returns its id.
func (u *orderUsecase) PlaceOrder(ctx context.Context, userID uint, items []entity.Item) (uint, error) {
	if userID == 0 || len(items) == 0 {
		return 0, ErrEmptyOrder
	}

	lines := make([]entity.OrderLine, 0, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.ProductID)
		if id == "" || it.Quantity < 1 {
			return 0, fmt.Errorf("%w: product %q quantity %d", ErrInvalidItem, it.ProductID, it.Quantity)
		}
		// line and total columns hold whole cents
		if it.Price.IsNegative() || !it.Price.Equal(it.Price.Round(2)) {
			return 0, fmt.Errorf("%w: product %q price %s", ErrInvalidPrice, id, it.Price)
		}
		lines = append(lines, entity.OrderLine{ProductID: id, Quantity: it.Quantity, UnitPrice: it.Price})
	}

	if u.prices != nil {
		if err := u.reprice(ctx, lines); err != nil {
			return 0, err
		}
	}

	order := &entity.Order{
		UserID:    userID,
		CreatedAt: u.now(),
		Status:    entity.StatusInPreparation,
		Total:     entity.TotalOf(lines),
		Lines:     lines,
	}
	if err := u.orders.CreateWithLines(ctx, order); err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}
	return order.ID, nil
}

// reprice replaces every unit price with the current catalog price.
func (u *orderUsecase) reprice(ctx context.Context, lines []entity.OrderLine) error {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	current, err := u.prices.PricesFor(ctx, ids)
	if err != nil {
		return fmt.Errorf("load catalog prices: %w", err)
	}
	for i := range lines {
		p, ok := current[lines[i].ProductID]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownProduct, lines[i].ProductID)
		}
		lines[i].UnitPrice = p
	}
	return nil
}

// History returns the user's orders, newest first. It never returns nil on success.
func (u *orderUsecase) History(ctx context.Context, userID uint) ([]entity.Order, error) {
	if userID == 0 {
		return nil, ErrMissingUserID
	}
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	return orders, nil
}
