package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/usecase/command"
	"github.com/tair/storefront/internal/usecase/query"
)

// ProductHandler handles HTTP requests for products and their images
type ProductHandler struct {
	commands *command.Handlers
	queries  *query.Handlers
	metrics  *Metrics
}

// NewProductHandler creates a new product handler
func NewProductHandler(commands *command.Handlers, queries *query.Handlers, metrics *Metrics) *ProductHandler {
	return &ProductHandler{commands: commands, queries: queries, metrics: metrics}
}

func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metrics.middleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products", h.metrics.middleware("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.metrics.middleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metrics.middleware("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metrics.middleware("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")
	router.HandleFunc("/api/slugs/{slug}", h.metrics.middleware("/api/slugs/{slug}", h.GetProductBySlug)).Methods("GET")
	router.HandleFunc("/api/images/{productId}", h.metrics.middleware("/api/images/{productId}", h.ListImages)).Methods("GET")
}

type createProductRequest struct {
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Price        decimal.Decimal `json:"price"`
	Manufacturer string          `json:"manufacturer"`
	Description  string          `json:"description"`
	MainImage    string          `json:"mainImage"`
	InStock      int             `json:"inStock"`
	Rating       int             `json:"rating"`
	CategoryID   string          `json:"categoryId"`
	Images       []string        `json:"images"`
}

type updateProductRequest struct {
	Title        *string          `json:"title"`
	Slug         *string          `json:"slug"`
	Price        *decimal.Decimal `json:"price"`
	Manufacturer *string          `json:"manufacturer"`
	Description  *string          `json:"description"`
	MainImage    *string          `json:"mainImage"`
	InStock      *int             `json:"inStock"`
	Rating       *int             `json:"rating"`
	CategoryID   *string          `json:"categoryId"`
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	product, err := h.commands.CreateProduct.Handle(r.Context(), command.CreateProductCommand{
		Title:        req.Title,
		Slug:         req.Slug,
		Price:        req.Price,
		Manufacturer: req.Manufacturer,
		Description:  req.Description,
		MainImage:    req.MainImage,
		InStock:      req.InStock,
		Rating:       req.Rating,
		CategoryID:   req.CategoryID,
		Images:       req.Images,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.refresh(r.Context(), h.queries.Stats)
	respondData(w, http.StatusCreated, "Product created successfully", product)
}

// ListProducts handles GET /api/products. mode=admin includes products out of stock.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := queryPage(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	minPrice, err := queryDecimal(r, "minPrice")
	if err != nil {
		respondError(w, r, err)
		return
	}
	maxPrice, err := queryDecimal(r, "maxPrice")
	if err != nil {
		respondError(w, r, err)
		return
	}

	q := r.URL.Query()
	products, err := h.queries.ListProducts.Handle(r.Context(), query.ListProductsQuery{
		Search:     q.Get("q"),
		CategoryID: q.Get("category"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Admin:      q.Get("mode") == "admin",
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, "", products)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.queries.GetProduct.Handle(r.Context(), query.GetProductQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", product)
}

// GetProductBySlug handles GET /api/slugs/{slug}
func (h *ProductHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.queries.GetProduct.Handle(r.Context(), query.GetProductQuery{Slug: mux.Vars(r)["slug"]})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", product)
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	product, err := h.commands.UpdateProduct.Handle(r.Context(), command.UpdateProductCommand{
		ID:           mux.Vars(r)["id"],
		Title:        req.Title,
		Slug:         req.Slug,
		Price:        req.Price,
		Manufacturer: req.Manufacturer,
		Description:  req.Description,
		MainImage:    req.MainImage,
		InStock:      req.InStock,
		Rating:       req.Rating,
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.commands.DeleteProduct.Handle(r.Context(), command.DeleteProductCommand{ID: mux.Vars(r)["id"]}); err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.refresh(r.Context(), h.queries.Stats)
	respondNoContent(w)
}

// ListImages handles GET /api/images/{productId}
func (h *ProductHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.queries.ListImages.Handle(r.Context(), query.ListImagesQuery{ProductID: mux.Vars(r)["productId"]})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", images)
}
