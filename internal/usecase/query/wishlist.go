package query

import (
	"context"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// ListWishlistQuery lists every wishlist row, or those of UserID when set
type ListWishlistQuery struct {
	UserID string
}

// ListWishlistHandler handles list wishlist query
type ListWishlistHandler struct {
	repo domain.WishlistRepository
}

// NewListWishlistHandler creates a new list wishlist handler
func NewListWishlistHandler(repo domain.WishlistRepository) *ListWishlistHandler {
	return &ListWishlistHandler{repo: repo}
}

// Handle executes the list wishlist query
func (h *ListWishlistHandler) Handle(ctx context.Context, query ListWishlistQuery) ([]domain.Wishlist, error) {
	if query.UserID != "" {
		return h.repo.FindByUser(ctx, query.UserID)
	}
	return h.repo.FindAll(ctx)
}

// GetWishlistItemQuery represents the query to get one (user, product) pair
type GetWishlistItemQuery struct {
	UserID    string
	ProductID string
}

// GetWishlistItemHandler handles get wishlist item query
type GetWishlistItemHandler struct {
	repo domain.WishlistRepository
}

// NewGetWishlistItemHandler creates a new get wishlist item handler
func NewGetWishlistItemHandler(repo domain.WishlistRepository) *GetWishlistItemHandler {
	return &GetWishlistItemHandler{repo: repo}
}

// Handle executes the get wishlist item query
func (h *GetWishlistItemHandler) Handle(ctx context.Context, query GetWishlistItemQuery) (*domain.Wishlist, error) {
	if query.UserID == "" || query.ProductID == "" {
		return nil, apperr.Validationf("user id and product id are required")
	}
	return h.repo.FindOne(ctx, query.UserID, query.ProductID)
}
