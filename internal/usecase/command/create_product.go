package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Title        string
	Slug         string
	Price        decimal.Decimal
	Manufacturer string
	Description  string
	MainImage    string
	InStock      int
	Rating       int
	CategoryID   string
	Images       []string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	product := &domain.Product{
		Title:        strings.TrimSpace(cmd.Title),
		Slug:         strings.TrimSpace(cmd.Slug),
		Price:        cmd.Price,
		Manufacturer: strings.TrimSpace(cmd.Manufacturer),
		Description:  cmd.Description,
		MainImage:    cmd.MainImage,
		InStock:      cmd.InStock,
		Rating:       cmd.Rating,
		CategoryID:   cmd.CategoryID,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	for _, image := range cmd.Images {
		if strings.TrimSpace(image) == "" {
			return nil, apperr.Validationf("image name is required")
		}
		product.Images = append(product.Images, domain.Image{Image: image})
	}

	if err := h.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func validateProduct(p *domain.Product) error {
	if err := requireFields(
		field{"title", p.Title},
		field{"slug", p.Slug},
		field{"manufacturer", p.Manufacturer},
		field{"description", p.Description},
		field{"category id", p.CategoryID},
	); err != nil {
		return err
	}
	if !slug.IsSlug(p.Slug) {
		return apperr.Validationf("slug %q must contain only lowercase letters, digits and hyphens", p.Slug)
	}
	if p.Price.IsNegative() {
		return apperr.Validationf("price cannot be negative")
	}
	if p.InStock < 0 {
		return apperr.Validationf("stock cannot be negative")
	}
	if p.Rating < domain.MinRating || p.Rating > domain.MaxRating {
		return apperr.Validationf("rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}
	return nil
}
