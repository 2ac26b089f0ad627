//go:build integration
// +build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/internal/repository"
	"github.com/tair/storefront/internal/seed"
	"github.com/tair/storefront/internal/storefront"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/database"
)

// setupPostgres starts a PostgreSQL container and returns a migrated connection
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("storefront"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := database.NewGormConnection(database.Config{
		Host:     host,
		Port:     port.Port(),
		User:     "testuser",
		Password: "testpass",
		DBName:   "storefront",
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, repository.AutoMigrate(db))
	return db
}

func TestPostgresIntegration(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	t.Run("generated orders match their lines", func(t *testing.T) {
		gen, err := storefront.InitializeGenerator(db, domain.NopPublisher{})
		require.NoError(t, err)

		summary, err := gen.Run(ctx, seed.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, 50, summary.Products)

		var mismatched int64
		require.NoError(t, db.Raw(`
			SELECT COUNT(*) FROM customer_order o
			WHERE o.total <> (
				SELECT COALESCE(SUM(p.price * l.quantity), 0)
				FROM customer_order_product l JOIN product p ON p.id = l.product_id
				WHERE l.customer_order_id = o.id
			)`).Scan(&mismatched).Error)
		assert.Zero(t, mismatched)
	})

	t.Run("unique index violation is a conflict", func(t *testing.T) {
		category := &domain.Category{Name: "integration"}
		require.NoError(t, db.Create(category).Error)

		first := &domain.Product{
			Title: "Dup", Slug: "dup-slug", Price: decimal.NewFromInt(1), Manufacturer: "Acme",
			Description: "d", MainImage: "x.webp", InStock: 1, Rating: 1, CategoryID: category.ID,
		}
		require.NoError(t, db.Omit("Category", "Images").Create(first).Error)

		second := *first
		second.ID = ""
		err := db.Omit("Category", "Images").Create(&second).Error
		require.Error(t, err)
		assert.True(t, apperr.IsConflict(apperr.FromDB("product.Create", "product", err)))
	})

	t.Run("foreign key violation is a constraint error", func(t *testing.T) {
		err := db.Create(&domain.Image{ProductID: "00000000-0000-0000-0000-000000000000", Image: "x.webp"}).Error
		require.Error(t, err)
		assert.True(t, apperr.IsConstraint(apperr.FromDB("image.Create", "image", err)))
	})

	t.Run("referenced product cannot be deleted", func(t *testing.T) {
		products := repository.NewGormProductRepository(db)
		var line domain.OrderProduct
		require.NoError(t, db.First(&line).Error)

		err := products.Delete(ctx, line.ProductID)
		assert.True(t, apperr.IsConstraint(err))
	})
}
