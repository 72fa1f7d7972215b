package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	account "storefront_backend/internal/feature/account/domain/entity"
	catalog "storefront_backend/internal/feature/catalog/domain/entity"
	orderadapters "storefront_backend/internal/feature/orders/adapters"
)

// Migrate creates or updates the storefront tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&account.User{},
		&catalog.Product{},
		&orderadapters.OrderModel{},
		&orderadapters.OrderLineModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Seed inserts the menu. Products that already exist are left untouched, so
// running it again is harmless.
func Seed(ctx context.Context, db *gorm.DB) error {
	menu := Menu()
	res := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&menu)
	if res.Error != nil {
		return fmt.Errorf("failed to seed menu: %w", res.Error)
	}
	slog.Info("menu seeded", "inserted", res.RowsAffected, "total", len(menu))
	return nil
}

// Menu returns the initial catalog.
func Menu() []catalog.Product {
	p := func(id, name, desc, price, category, image, emoji string) catalog.Product {
		return catalog.Product{
			ID:          id,
			Name:        name,
			Description: desc,
			Price:       decimal.RequireFromString(price),
			Category:    category,
			ImagePath:   image,
			Emoji:       emoji,
		}
	}
	return []catalog.Product{
		p("t1", "Tacos al Pastor", "Cerdo marinado con piña, cebolla y cilantro", "85.00", "Tacos", "Tacos/pastor.jpg", "🌮"),
		p("t2", "Tacos de Suadero", "Suadero dorado con salsa verde", "80.00", "Tacos", "Tacos/suadero.jpg", "🌮"),
		p("t3", "Tacos de Carnitas", "Carnitas estilo Michoacán", "90.00", "Tacos", "Tacos/carnitas.jpg", "🌮"),
		p("p1", "Mole Poblano", "Pollo bañado en mole con arroz", "145.00", "Platillos Fuertes", "Platillos Fuertes/mole.jpg", "🍛"),
		p("p2", "Enchiladas Suizas", "Enchiladas de pollo gratinadas", "125.00", "Platillos Fuertes", "Platillos Fuertes/enchiladas.jpg", "🍽️"),
		p("p3", "Chiles en Nogada", "Chile poblano relleno con nogada", "160.00", "Platillos Fuertes", "Platillos Fuertes/nogada.jpg", "🌶️"),
		p("a1", "Guacamole con Totopos", "Aguacate fresco con totopos", "70.00", "Antojitos", "Antojitos/guacamole.jpg", "🥑"),
		p("a2", "Quesadillas", "Tortilla de maíz con queso Oaxaca", "60.00", "Antojitos", "Antojitos/quesadillas.jpg", "🧀"),
		p("a3", "Elote Preparado", "Elote con mayonesa, queso y chile", "45.00", "Antojitos", "Antojitos/elote.jpg", "🌽"),
		p("d1", "Flan Napolitano", "Flan casero con caramelo", "55.00", "Postres", "Postres/flan.jpg", "🍮"),
		p("d2", "Churros", "Churros con chocolate caliente", "50.00", "Postres", "Postres/churros.jpg", "🍩"),
		p("b1", "Agua de Horchata", "Bebida de arroz con canela", "30.00", "Bebidas", "Bebidas/horchata.jpg", "🥛"),
		p("b2", "Agua de Jamaica", "Infusión fría de flor de jamaica", "30.00", "Bebidas", "Bebidas/jamaica.jpg", "🍹"),
		p("b3", "Refresco", "Refresco de 355 ml", "25.00", "Bebidas", "Bebidas/refresco.jpg", "🥤"),
	}
}
