// Package dto defines data transfer objects for the orders feature's HTTP transport layer.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderReq represents the request body for POST /crear-pedido.
type PlaceOrderReq struct {
	UserID uint          `json:"id_usuario"`
	Items  []CartItemReq `json:"items"`
}

// CartItemReq is one cart entry as the storefront client sends it.
// Name and Emoji are display fields and are not stored.
type CartItemReq struct {
	ID       string          `json:"id"`
	Name     string          `json:"name,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Emoji    string          `json:"emoji,omitempty"`
}

// OrderCreatedRes represents the response body of a placed order.
type OrderCreatedRes struct {
	Message string `json:"mensaje"`
	OrderID uint   `json:"id_pedido"`
}

// OrderRes is one order of the history.
type OrderRes struct {
	ID        uint           `json:"id_pedido"`
	UserID    uint           `json:"id_usuario"`
	CreatedAt time.Time      `json:"fecha_pedido"`
	Total     float64        `json:"total_pedido"`
	Status    string         `json:"estado"`
	Items     []OrderLineRes `json:"items"`
}

// OrderLineRes is one line of a history order.
type OrderLineRes struct {
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precio_unitario"`
	Name      string  `json:"nombre"`
}
