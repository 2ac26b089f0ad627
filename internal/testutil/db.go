// Package testutil opens throwaway storefront databases for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/internal/repository"
	"github.com/tair/storefront/pkg/database"
)

// NewDB returns a migrated SQLite database with foreign keys enforced,
// removed when the test ends
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "storefront.db") + "?_pragma=foreign_keys(1)"
	db, err := database.OpenGorm(sqlite.Open(dsn))
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// Category inserts a category named name
func Category(t testing.TB, db *gorm.DB, name string) *domain.Category {
	t.Helper()
	category := &domain.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

// Product inserts a product in category with the given slug and price
func Product(t testing.TB, db *gorm.DB, categoryID, slug, price string) *domain.Product {
	t.Helper()
	product := &domain.Product{
		Title:        slug,
		Slug:         slug,
		Price:        decimal.RequireFromString(price),
		Manufacturer: "Samsung",
		Description:  "test product " + slug,
		MainImage:    "product1.webp",
		InStock:      10,
		Rating:       4,
		CategoryID:   categoryID,
	}
	require.NoError(t, db.Omit("Category", "Images").Create(product).Error)
	return product
}

// User inserts a regular user with an already hashed password
func User(t testing.TB, db *gorm.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, Password: "$2a$10$hash", Role: domain.RoleUser}
	require.NoError(t, db.Create(user).Error)
	return user
}

// Count returns the number of rows of model matching the optional condition
func Count(t testing.TB, db *gorm.DB, model any, conds ...any) int64 {
	t.Helper()
	query := db.Model(model)
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}
	var n int64
	require.NoError(t, query.Count(&n).Error)
	return n
}
