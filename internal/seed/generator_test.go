package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/internal/repository"
	"github.com/tair/storefront/internal/seed"
	"github.com/tair/storefront/internal/testutil"
	"github.com/tair/storefront/internal/usecase/command"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/auth"
)

func newGenerator(t *testing.T) (*seed.Generator, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	build := func(tx *gorm.DB) (*repository.Purger, *command.Handlers) {
		return repository.NewPurger(tx), command.NewHandlers(
			repository.NewGormUserRepository(tx),
			repository.NewGormCategoryRepository(tx),
			repository.NewGormProductRepository(tx),
			repository.NewGormOrderRepository(tx),
			repository.NewGormWishlistRepository(tx),
			domain.NopPublisher{},
		)
	}
	return seed.NewGenerator(db, build), db
}

func orphans(t *testing.T, db *gorm.DB, child, fk, parent string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Raw(
		`SELECT COUNT(*) FROM "`+child+`" c LEFT JOIN "`+parent+`" p ON p.id = c.`+fk+` WHERE p.id IS NULL`,
	).Scan(&n).Error)
	return n
}

func TestGeneratorRun(t *testing.T) {
	gen, db := newGenerator(t)
	cfg := seed.Config{Users: 3, Products: 6, Orders: 4, Wishlists: 5, Seed: 42}

	summary, err := gen.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Users)
	assert.Equal(t, len(seed.Categories), summary.Categories)
	assert.Equal(t, 6, summary.Products)
	assert.Equal(t, 4, summary.Orders)
	assert.Equal(t, 5, summary.Wishlists)

	assert.EqualValues(t, 4, testutil.Count(t, db, &domain.User{}))
	assert.EqualValues(t, 15, testutil.Count(t, db, &domain.Category{}))
	assert.EqualValues(t, 6, testutil.Count(t, db, &domain.Product{}))
	assert.EqualValues(t, summary.Images, testutil.Count(t, db, &domain.Image{}))
	assert.EqualValues(t, 4, testutil.Count(t, db, &domain.CustomerOrder{}))
	assert.EqualValues(t, summary.OrderLines, testutil.Count(t, db, &domain.OrderProduct{}))
	assert.EqualValues(t, 5, testutil.Count(t, db, &domain.Wishlist{}))

	assert.Zero(t, orphans(t, db, "product", "category_id", "category"))
	assert.Zero(t, orphans(t, db, "image", "product_id", "product"))
	assert.Zero(t, orphans(t, db, "customer_order_product", "product_id", "product"))
	assert.Zero(t, orphans(t, db, "customer_order_product", "customer_order_id", "customer_order"))
	assert.Zero(t, orphans(t, db, "wishlist", "user_id", "user"))

	var orders []domain.CustomerOrder
	require.NoError(t, db.Preload("Products.Product").Find(&orders).Error)
	for _, order := range orders {
		require.NotEmpty(t, order.Products)
		assert.LessOrEqual(t, len(order.Products), 5)

		want := decimal.Zero
		seen := map[string]bool{}
		for _, line := range order.Products {
			assert.False(t, seen[line.ProductID], "duplicate product in order %s", order.ID)
			seen[line.ProductID] = true
			assert.GreaterOrEqual(t, line.Quantity, 1)
			assert.LessOrEqual(t, line.Quantity, 3)
			want = want.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		assert.True(t, want.Equal(order.Total), "order %s total %s, want %s", order.ID, order.Total, want)
	}

	var products []domain.Product
	require.NoError(t, db.Preload("Images").Find(&products).Error)
	for _, p := range products {
		assert.Regexp(t, `-[a-z0-9]{5}$`, p.Slug)
		assert.True(t, p.Price.GreaterThanOrEqual(decimal.NewFromInt(10)))
		assert.True(t, p.Price.LessThanOrEqual(decimal.NewFromInt(1000)))
		assert.Contains(t, seed.Manufacturers, p.Manufacturer)
		assert.LessOrEqual(t, len(p.Images), 4)
		for _, img := range p.Images {
			assert.Contains(t, img.Image, p.Slug+"-image-")
		}
	}

	var admin domain.User
	require.NoError(t, db.Where("email = ?", seed.AdminEmail).First(&admin).Error)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.True(t, auth.CheckPassword(admin.Password, seed.AdminPassword))
}

func TestGeneratorReplacesPreviousData(t *testing.T) {
	gen, db := newGenerator(t)
	cfg := seed.Config{Users: 2, Products: 3, Orders: 2, Wishlists: 2, Seed: 7}

	_, err := gen.Run(context.Background(), cfg)
	require.NoError(t, err)

	summary, err := gen.Run(context.Background(), cfg)
	require.NoError(t, err)

	purged := map[string]int64{}
	for _, p := range summary.Purged {
		purged[p.Table] = p.Deleted
	}
	assert.EqualValues(t, 3, purged["product"])
	assert.EqualValues(t, 3, purged["user"])
	assert.EqualValues(t, 15, purged["category"])

	assert.EqualValues(t, 3, testutil.Count(t, db, &domain.Product{}))
	assert.EqualValues(t, 2, testutil.Count(t, db, &domain.CustomerOrder{}))
}

func TestGeneratorFailureKeepsPreviousData(t *testing.T) {
	gen, db := newGenerator(t)
	cfg := seed.Config{Users: 2, Products: 3, Orders: 2, Wishlists: 2, Seed: 11}

	_, err := gen.Run(context.Background(), cfg)
	require.NoError(t, err)

	var userIDs, orderIDs []string
	require.NoError(t, db.Model(&domain.User{}).Order("id").Pluck("id", &userIDs).Error)
	require.NoError(t, db.Model(&domain.CustomerOrder{}).Order("id").Pluck("id", &orderIDs).Error)
	lines := testutil.Count(t, db, &domain.OrderProduct{})

	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_orders", func(tx *gorm.DB) {
		if tx.Statement.Table == "customer_order" {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))
	t.Cleanup(func() { _ = db.Callback().Create().Remove("test:fail_orders") })

	cfg.Seed = 12
	_, err = gen.Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed orders")

	var userIDsAfter, orderIDsAfter []string
	require.NoError(t, db.Model(&domain.User{}).Order("id").Pluck("id", &userIDsAfter).Error)
	require.NoError(t, db.Model(&domain.CustomerOrder{}).Order("id").Pluck("id", &orderIDsAfter).Error)
	assert.Equal(t, userIDs, userIDsAfter)
	assert.Equal(t, orderIDs, orderIDsAfter)
	assert.Equal(t, lines, testutil.Count(t, db, &domain.OrderProduct{}))
	assert.EqualValues(t, 3, testutil.Count(t, db, &domain.Product{}))
	assert.EqualValues(t, 15, testutil.Count(t, db, &domain.Category{}))
	assert.EqualValues(t, 2, testutil.Count(t, db, &domain.Wishlist{}))
}

func TestGeneratorCapsWishlists(t *testing.T) {
	gen, db := newGenerator(t)

	summary, err := gen.Run(context.Background(), seed.Config{Users: 2, Products: 2, Wishlists: 10, Seed: 1})
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Wishlists)
	assert.EqualValues(t, 4, testutil.Count(t, db, &domain.Wishlist{}))
	assert.Zero(t, summary.Orders)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, seed.DefaultConfig().Validate())
	assert.True(t, apperr.IsValidation(seed.Config{Users: -1}.Validate()))
	assert.True(t, apperr.IsValidation(seed.Config{Orders: 1}.Validate()))

	gen, _ := newGenerator(t)
	_, err := gen.Run(context.Background(), seed.Config{Orders: 3})
	assert.True(t, apperr.IsValidation(err))
}
