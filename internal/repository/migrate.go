package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/storefront/internal/domain"
)

// Models lists every table in foreign key dependency order
func Models() []any {
	return []any{
		&domain.User{},
		&domain.Category{},
		&domain.Product{},
		&domain.Image{},
		&domain.CustomerOrder{},
		&domain.OrderProduct{},
		&domain.Wishlist{},
	}
}

// AutoMigrate creates or updates the storefront schema
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
