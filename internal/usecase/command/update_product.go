package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// UpdateProductCommand represents the command to update a product. Nil fields are left unchanged.
type UpdateProductCommand struct {
	ID           string
	Title        *string
	Slug         *string
	Price        *decimal.Decimal
	Manufacturer *string
	Description  *string
	MainImage    *string
	InStock      *int
	Rating       *int
	CategoryID   *string
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == "" {
		return nil, apperr.Validationf("product id is required")
	}

	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		product.Title = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Slug != nil {
		product.Slug = strings.TrimSpace(*cmd.Slug)
	}
	if cmd.Price != nil {
		product.Price = *cmd.Price
	}
	if cmd.Manufacturer != nil {
		product.Manufacturer = strings.TrimSpace(*cmd.Manufacturer)
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.MainImage != nil {
		product.MainImage = *cmd.MainImage
	}
	if cmd.InStock != nil {
		product.InStock = *cmd.InStock
	}
	if cmd.Rating != nil {
		product.Rating = *cmd.Rating
	}
	if cmd.CategoryID != nil && *cmd.CategoryID != product.CategoryID {
		product.CategoryID = *cmd.CategoryID
		product.Category = nil
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
