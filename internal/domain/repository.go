package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter UserFilter) ([]User, error)
	Update(ctx context.Context, user *User) error
	// Delete removes the user together with its wishlist rows
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id string) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, category *Category) error
	// Delete removes the category and every product in it. It fails with a
	// constraint error, deleting nothing, when one of those products is
	// referenced by an order line.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	// Create inserts the product and its Images in one transaction
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	// Delete fails with a constraint error while order lines reference the
	// product; otherwise images, wishlist rows and the product are removed.
	Delete(ctx context.Context, id string) error
	FindImages(ctx context.Context, productID string) ([]Image, error)
	Count(ctx context.Context) (int64, error)
}

// OrderRepository defines the contract for customer order data access
type OrderRepository interface {
	// Create computes the total from current product prices and inserts the
	// order followed by its lines in one transaction
	Create(ctx context.Context, order *CustomerOrder, lines []OrderLine) error
	FindByID(ctx context.Context, id string) (*CustomerOrder, error)
	FindAll(ctx context.Context, filter OrderFilter) ([]CustomerOrder, error)
	Update(ctx context.Context, order *CustomerOrder) error
	// Delete removes the order lines and then the order, atomically
	Delete(ctx context.Context, id string) error
	FindLines(ctx context.Context, orderID string) ([]OrderProduct, error)
	AddLine(ctx context.Context, orderID string, line OrderLine) (*OrderProduct, error)
	DeleteLines(ctx context.Context, orderID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
}

// WishlistRepository defines the contract for wishlist data access
type WishlistRepository interface {
	// Create fails with a conflict error if the (user, product) pair exists
	Create(ctx context.Context, item *Wishlist) error
	FindAll(ctx context.Context) ([]Wishlist, error)
	FindByUser(ctx context.Context, userID string) ([]Wishlist, error)
	FindOne(ctx context.Context, userID, productID string) (*Wishlist, error)
	Delete(ctx context.Context, userID, productID string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// EventPublisher announces committed order changes to other systems
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *CustomerOrder) error
	PublishOrderDeleted(ctx context.Context, orderID string) error
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, *CustomerOrder) error { return nil }
func (NopPublisher) PublishOrderDeleted(context.Context, string) error       { return nil }
