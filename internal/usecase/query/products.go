package query

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// GetProductQuery looks a product up by id or, when ID is empty, by slug
type GetProductQuery struct {
	ID   string
	Slug string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, query GetProductQuery) (*domain.Product, error) {
	switch {
	case query.ID != "":
		return h.repo.FindByID(ctx, query.ID)
	case query.Slug != "":
		return h.repo.FindBySlug(ctx, query.Slug)
	default:
		return nil, apperr.Validationf("product id or slug is required")
	}
}

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Search     string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Admin      bool
	Limit      int
	Offset     int
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) ([]domain.Product, error) {
	if query.MinPrice != nil && query.MaxPrice != nil && query.MinPrice.GreaterThan(*query.MaxPrice) {
		return nil, apperr.Validationf("minPrice cannot exceed maxPrice")
	}
	limit, offset, err := page(query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}
	return h.repo.FindAll(ctx, domain.ProductFilter{
		Search:     query.Search,
		CategoryID: query.CategoryID,
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		Admin:      query.Admin,
		Limit:      limit,
		Offset:     offset,
	})
}

// ListImagesQuery represents the query to list the gallery of a product
type ListImagesQuery struct {
	ProductID string
}

// ListImagesHandler handles list images query
type ListImagesHandler struct {
	repo domain.ProductRepository
}

// NewListImagesHandler creates a new list images handler
func NewListImagesHandler(repo domain.ProductRepository) *ListImagesHandler {
	return &ListImagesHandler{repo: repo}
}

// Handle executes the list images query
func (h *ListImagesHandler) Handle(ctx context.Context, query ListImagesQuery) ([]domain.Image, error) {
	if query.ProductID == "" {
		return nil, apperr.Validationf("product id is required")
	}
	return h.repo.FindImages(ctx, query.ProductID)
}
