package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/usecase/command"
	"github.com/tair/storefront/internal/usecase/query"
)

// WishlistHandler handles HTTP requests for wishlists
type WishlistHandler struct {
	commands *command.Handlers
	queries  *query.Handlers
	metrics  *Metrics
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(commands *command.Handlers, queries *query.Handlers, metrics *Metrics) *WishlistHandler {
	return &WishlistHandler{commands: commands, queries: queries, metrics: metrics}
}

func (h *WishlistHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/wishlist", h.metrics.middleware("/api/wishlist", h.ListWishlist)).Methods("GET")
	router.HandleFunc("/api/wishlist", h.metrics.middleware("/api/wishlist", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/wishlist/{userId}", h.metrics.middleware("/api/wishlist/{userId}", h.ListUserWishlist)).Methods("GET")
	router.HandleFunc("/api/wishlist/{userId}", h.metrics.middleware("/api/wishlist/{userId}", h.ClearWishlist)).Methods("DELETE")
	router.HandleFunc("/api/wishlist/{userId}/{productId}", h.metrics.middleware("/api/wishlist/{userId}/{productId}", h.GetItem)).Methods("GET")
	router.HandleFunc("/api/wishlist/{userId}/{productId}", h.metrics.middleware("/api/wishlist/{userId}/{productId}", h.RemoveItem)).Methods("DELETE")
}

type wishlistRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
}

// AddItem handles POST /api/wishlist
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req wishlistRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	item, err := h.commands.AddWishlistItem.Handle(r.Context(), command.AddWishlistItemCommand{
		UserID:    req.UserID,
		ProductID: req.ProductID,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusCreated, "Item added to wishlist", item)
}

// ListWishlist handles GET /api/wishlist
func (h *WishlistHandler) ListWishlist(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListWishlist.Handle(r.Context(), query.ListWishlistQuery{})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", items)
}

// ListUserWishlist handles GET /api/wishlist/{userId}
func (h *WishlistHandler) ListUserWishlist(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListWishlist.Handle(r.Context(), query.ListWishlistQuery{UserID: mux.Vars(r)["userId"]})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", items)
}

// GetItem handles GET /api/wishlist/{userId}/{productId}
func (h *WishlistHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	item, err := h.queries.GetWishlistItem.Handle(r.Context(), query.GetWishlistItemQuery{
		UserID:    vars["userId"],
		ProductID: vars["productId"],
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, "", item)
}

// RemoveItem handles DELETE /api/wishlist/{userId}/{productId}
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.commands.RemoveWishlistItem.Handle(r.Context(), command.RemoveWishlistItemCommand{
		UserID:    vars["userId"],
		ProductID: vars["productId"],
	}); err != nil {
		respondError(w, r, err)
		return
	}
	respondNoContent(w)
}

// ClearWishlist handles DELETE /api/wishlist/{userId}
func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	if _, err := h.commands.ClearWishlist.Handle(r.Context(), command.ClearWishlistCommand{UserID: mux.Vars(r)["userId"]}); err != nil {
		respondError(w, r, err)
		return
	}
	respondNoContent(w)
}
