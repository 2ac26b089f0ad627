package query

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/domain"
)

// GetStatsQuery represents the query to get dashboard statistics
type GetStatsQuery struct{}

// Stats represents dashboard statistics
type Stats struct {
	Products   int64           `json:"products"`
	Categories int64           `json:"categories"`
	Users      int64           `json:"users"`
	Orders     int64           `json:"orders"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
	users      domain.UserRepository
	orders     domain.OrderRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	users domain.UserRepository,
	orders domain.OrderRepository,
) *GetStatsHandler {
	return &GetStatsHandler{products: products, categories: categories, users: users, orders: orders}
}

// Handle executes the get stats query. Revenue excludes canceled orders.
func (h *GetStatsHandler) Handle(ctx context.Context, _ GetStatsQuery) (*Stats, error) {
	var (
		stats Stats
		err   error
	)

	if stats.Products, err = h.products.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to get product count: %w", err)
	}
	if stats.Categories, err = h.categories.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to get category count: %w", err)
	}
	if stats.Users, err = h.users.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to get user count: %w", err)
	}
	if stats.Orders, err = h.orders.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to get order count: %w", err)
	}
	if stats.Revenue, err = h.orders.Revenue(ctx); err != nil {
		return nil, fmt.Errorf("failed to get revenue: %w", err)
	}

	return &stats, nil
}
