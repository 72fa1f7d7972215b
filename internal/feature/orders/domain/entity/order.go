// Package entity defines the domain entities for the orders feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusInPreparation is the status every new order starts in.
const StatusInPreparation = "En preparación"

// Order is a placed order with its lines.
// Total equals the sum of quantity x unit price over Lines at creation.
type Order struct {
	ID        uint
	UserID    uint
	CreatedAt time.Time
	Total     decimal.Decimal
	Status    string
	Lines     []OrderLine
}

// OrderLine is one product of an order.
// UnitPrice is a snapshot: later catalog changes never alter it.
type OrderLine struct {
	ProductID string
	// ProductName is filled when reading history.
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal returns quantity x unit price.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Item is one cart entry submitted by the client.
type Item struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// TotalOf sums the subtotals of lines.
func TotalOf(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
