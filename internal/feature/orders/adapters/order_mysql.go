// Package adapters provides repository implementations for the orders feature.
package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"storefront_backend/internal/feature/orders/domain/entity"
	"storefront_backend/internal/feature/orders/usecase"
)

// orderMySQL is the GORM implementation of usecase.OrderRepository.
type orderMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure orderMySQL implements OrderRepository.
var _ usecase.OrderRepository = (*orderMySQL)(nil)

// NewOrderMySQL creates a new instance of orderMySQL.
func NewOrderMySQL(db *gorm.DB) *orderMySQL {
	return &orderMySQL{db: db}
}

// CreateWithLines inserts the header and then all lines in one transaction.
// The transaction holds a single pooled connection from begin to commit or rollback.
func (r *orderMySQL) CreateWithLines(ctx context.Context, order *entity.Order) error {
	header := OrderModel{
		UserID:    order.UserID,
		CreatedAt: order.CreatedAt,
		Total:     order.Total,
		Status:    order.Status,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&header).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		lines := make([]OrderLineModel, 0, len(order.Lines))
		for _, l := range order.Lines {
			lines = append(lines, OrderLineModel{
				OrderID:   header.ID,
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
			})
		}
		if err := tx.Create(&lines).Error; err != nil {
			return fmt.Errorf("insert order lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	order.ID = header.ID
	return nil
}

// ListByUser reads the user's orders newest first, then the lines of all of
// them in a single query.
func (r *orderMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	var headers []OrderModel
	if err := r.db.WithContext(ctx).
		Where("id_usuario = ?", userID).
		Order("fecha_pedido DESC").
		Order("id_pedido DESC").
		Find(&headers).Error; err != nil {
		return nil, err
	}

	orders := make([]entity.Order, len(headers))
	if len(headers) == 0 {
		return orders, nil
	}

	ids := make([]uint, len(headers))
	index := make(map[uint]int, len(headers))
	for i, h := range headers {
		orders[i] = h.ToEntity()
		ids[i] = h.ID
		index[h.ID] = i
	}

	var rows []lineRow
	if err := r.db.WithContext(ctx).
		Table("detalles_pedido AS d").
		Select("d.id_pedido AS order_id, d.id_producto AS product_id, p.nombre AS product_name, " +
			"d.cantidad AS quantity, d.precio_unitario AS unit_price").
		Joins("JOIN productos p ON p.id_producto = d.id_producto").
		Where("d.id_pedido IN ?", ids).
		Order("d.id_detalle ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		i := index[row.OrderID]
		orders[i].Lines = append(orders[i].Lines, entity.OrderLine{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
		})
	}
	return orders, nil
}
