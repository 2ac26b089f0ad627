package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/usecase/command"
	"github.com/tair/storefront/internal/usecase/query"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	commands *command.Handlers
	queries  *query.Handlers
	metrics  *Metrics
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(commands *command.Handlers, queries *query.Handlers, metrics *Metrics) *CategoryHandler {
	return &CategoryHandler{commands: commands, queries: queries, metrics: metrics}
}

func (h *CategoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/categories", h.metrics.middleware("/api/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/categories", h.metrics.middleware("/api/categories", h.CreateCategory)).Methods("POST")
	router.HandleFunc("/api/categories/{id}", h.metrics.middleware("/api/categories/{id}", h.GetCategory)).Methods("GET")
	router.HandleFunc("/api/categories/{id}", h.metrics.middleware("/api/categories/{id}", h.UpdateCategory)).Methods("PUT")
	router.HandleFunc("/api/categories/{id}", h.metrics.middleware("/api/categories/{id}", h.DeleteCategory)).Methods("DELETE")
}

type categoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	category, err := h.commands.CreateCategory.Handle(r.Context(), command.CreateCategoryCommand{Name: req.Name})
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.refresh(r.Context(), h.queries.Stats)
	respondData(w, http.StatusCreated, "Category created successfully", category)
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.queries.ListCategories.Handle(r.Context(), query.ListCategoriesQuery{})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", categories)
}

// GetCategory handles GET /api/categories/{id}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.queries.GetCategory.Handle(r.Context(), query.GetCategoryQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", category)
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	category, err := h.commands.UpdateCategory.Handle(r.Context(), command.UpdateCategoryCommand{
		ID:   mux.Vars(r)["id"],
		Name: req.Name,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /api/categories/{id}. Products of the
// category go with it unless an order references one of them.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.commands.DeleteCategory.Handle(r.Context(), command.DeleteCategoryCommand{ID: mux.Vars(r)["id"]}); err != nil {
		respondError(w, r, err)
		return
	}

	h.metrics.refresh(r.Context(), h.queries.Stats)
	respondNoContent(w)
}
