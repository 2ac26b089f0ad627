package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/domain"
)

// AddWishlistItemCommand represents the command to wish a product
type AddWishlistItemCommand struct {
	UserID    string
	ProductID string
}

// AddWishlistItemHandler handles wishlist insert command
type AddWishlistItemHandler struct {
	repo domain.WishlistRepository
}

// NewAddWishlistItemHandler creates a new add wishlist item handler
func NewAddWishlistItemHandler(repo domain.WishlistRepository) *AddWishlistItemHandler {
	return &AddWishlistItemHandler{repo: repo}
}

// Handle executes the add wishlist item command. An existing pair is a conflict.
func (h *AddWishlistItemHandler) Handle(ctx context.Context, cmd AddWishlistItemCommand) (*domain.Wishlist, error) {
	if err := requireFields(field{"user id", cmd.UserID}, field{"product id", cmd.ProductID}); err != nil {
		return nil, err
	}

	item := &domain.Wishlist{UserID: cmd.UserID, ProductID: cmd.ProductID}
	if err := h.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return item, nil
}

// RemoveWishlistItemCommand represents the command to unwish a product
type RemoveWishlistItemCommand struct {
	UserID    string
	ProductID string
}

// RemoveWishlistItemHandler handles wishlist delete command
type RemoveWishlistItemHandler struct {
	repo domain.WishlistRepository
}

// NewRemoveWishlistItemHandler creates a new remove wishlist item handler
func NewRemoveWishlistItemHandler(repo domain.WishlistRepository) *RemoveWishlistItemHandler {
	return &RemoveWishlistItemHandler{repo: repo}
}

// Handle executes the remove wishlist item command
func (h *RemoveWishlistItemHandler) Handle(ctx context.Context, cmd RemoveWishlistItemCommand) error {
	if err := requireFields(field{"user id", cmd.UserID}, field{"product id", cmd.ProductID}); err != nil {
		return err
	}

	if err := h.repo.Delete(ctx, cmd.UserID, cmd.ProductID); err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}

	return nil
}

// ClearWishlistCommand represents the command to empty a user's wishlist
type ClearWishlistCommand struct {
	UserID string
}

// ClearWishlistHandler handles wishlist clear command
type ClearWishlistHandler struct {
	repo domain.WishlistRepository
}

// NewClearWishlistHandler creates a new clear wishlist handler
func NewClearWishlistHandler(repo domain.WishlistRepository) *ClearWishlistHandler {
	return &ClearWishlistHandler{repo: repo}
}

// Handle executes the clear wishlist command and returns the number of removed items
func (h *ClearWishlistHandler) Handle(ctx context.Context, cmd ClearWishlistCommand) (int64, error) {
	if err := requireFields(field{"user id", cmd.UserID}); err != nil {
		return 0, err
	}

	n, err := h.repo.DeleteByUser(ctx, cmd.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear wishlist: %w", err)
	}

	return n, nil
}
