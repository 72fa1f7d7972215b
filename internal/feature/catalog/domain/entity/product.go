// Package entity defines the domain models for the catalog feature.
package entity

import "github.com/shopspring/decimal"

// Product is a menu item. Products are seeded once and read-only afterwards.
type Product struct {
	// ID is a short human-readable code such as "t1".
	ID          string          `gorm:"column:id_producto;primaryKey;size:16"`
	Name        string          `gorm:"column:nombre;size:120;not null"`
	Description string          `gorm:"column:descripcion;size:500"`
	Price       decimal.Decimal `gorm:"column:precio;type:decimal(10,2);not null"`
	Category    string          `gorm:"column:categoria;size:60;not null;index"`
	// ImagePath is relative to the static root, e.g. "Tacos/pastor.jpg".
	ImagePath string `gorm:"column:imagen_url;size:255"`
	Emoji     string `gorm:"column:emoji;size:16"`
}

// TableName returns the table name for GORM.
func (Product) TableName() string {
	return "productos"
}
