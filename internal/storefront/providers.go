// Package storefront assembles the storefront service from its parts.
package storefront

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/tair/storefront/internal/delivery/http"
	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/internal/repository"
	"github.com/tair/storefront/internal/seed"
	"github.com/tair/storefront/internal/usecase/command"
	"github.com/tair/storefront/internal/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// ProvideCategoryRepository provides the category repository
func ProvideCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return repository.NewGormCategoryRepository(db)
}

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// ProvideWishlistRepository provides the wishlist repository
func ProvideWishlistRepository(db *gorm.DB) domain.WishlistRepository {
	return repository.NewGormWishlistRepository(db)
}

// ProvidePinger exposes the connection pool for health checks
func ProvidePinger(db *gorm.DB) (httpDelivery.Pinger, error) {
	return db.DB()
}

// ProvideSeedBuilder builds the generator's purger and command handlers on
// the transaction each run executes in
func ProvideSeedBuilder(events domain.EventPublisher) seed.Builder {
	return func(tx *gorm.DB) (*repository.Purger, *command.Handlers) {
		commands := command.NewHandlers(
			ProvideUserRepository(tx),
			ProvideCategoryRepository(tx),
			ProvideProductRepository(tx),
			ProvideOrderRepository(tx),
			ProvideWishlistRepository(tx),
			events,
		)
		return repository.NewPurger(tx), commands
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideCategoryRepository,
	ProvideProductRepository,
	ProvideOrderRepository,
	ProvideWishlistRepository,
)

var HandlerSet = wire.NewSet(
	RepositorySet,
	command.NewHandlers,
	query.NewHandlers,
)
