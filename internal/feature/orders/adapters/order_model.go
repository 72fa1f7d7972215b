package adapters

import (
	"time"

	"github.com/shopspring/decimal"

	"storefront_backend/internal/feature/orders/domain/entity"
)

// OrderModel is the GORM model for the pedidos table.
type OrderModel struct {
	ID        uint            `gorm:"column:id_pedido;primaryKey"`
	UserID    uint            `gorm:"column:id_usuario;index;not null"`
	CreatedAt time.Time       `gorm:"column:fecha_pedido;not null"`
	Total     decimal.Decimal `gorm:"column:total_pedido;type:decimal(10,2);not null"`
	Status    string          `gorm:"column:estado;size:50;not null"`
}

// TableName returns the table name for GORM.
func (OrderModel) TableName() string {
	return "pedidos"
}

// ToEntity converts the GORM model to a domain entity without lines.
func (m *OrderModel) ToEntity() entity.Order {
	return entity.Order{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		Total:     m.Total,
		Status:    m.Status,
		Lines:     []entity.OrderLine{},
	}
}

// OrderLineModel is the GORM model for the detalles_pedido table.
type OrderLineModel struct {
	ID        uint            `gorm:"column:id_detalle;primaryKey"`
	OrderID   uint            `gorm:"column:id_pedido;index;not null"`
	ProductID string          `gorm:"column:id_producto;size:16;not null"`
	Quantity  int             `gorm:"column:cantidad;not null"`
	UnitPrice decimal.Decimal `gorm:"column:precio_unitario;type:decimal(10,2);not null"`
}

// TableName returns the table name for GORM.
func (OrderLineModel) TableName() string {
	return "detalles_pedido"
}

// lineRow is one history line joined with its product name.
type lineRow struct {
	OrderID     uint
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	ProductID   string
}
