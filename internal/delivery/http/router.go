package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tair/storefront/internal/usecase/command"
	"github.com/tair/storefront/internal/usecase/query"
)

// Pinger reports datastore health
type Pinger interface {
	PingContext(ctx context.Context) error
}

// API bundles every storefront HTTP handler
type API struct {
	products   *ProductHandler
	categories *CategoryHandler
	users      *UserHandler
	orders     *OrderHandler
	wishlist   *WishlistHandler

	queries *query.Handlers
	metrics *Metrics
	db      Pinger
}

// NewAPI creates the storefront API
func NewAPI(commands *command.Handlers, queries *query.Handlers, metrics *Metrics, db Pinger) *API {
	return &API{
		products:   NewProductHandler(commands, queries, metrics),
		categories: NewCategoryHandler(commands, queries, metrics),
		users:      NewUserHandler(commands, queries, metrics),
		orders:     NewOrderHandler(commands, queries, metrics),
		wishlist:   NewWishlistHandler(commands, queries, metrics),
		queries:    queries,
		metrics:    metrics,
		db:         db,
	}
}

// RegisterRoutes mounts every endpoint on router
func (a *API) RegisterRoutes(router *mux.Router) {
	a.products.RegisterRoutes(router)
	a.categories.RegisterRoutes(router)
	a.users.RegisterRoutes(router)
	a.orders.RegisterRoutes(router)
	a.wishlist.RegisterRoutes(router)

	router.HandleFunc("/api/stats", a.metrics.middleware("/api/stats", a.GetStats)).Methods("GET")
	router.HandleFunc("/health", a.HealthCheck).Methods("GET")
}

// RegisterMetrics exposes gatherer on /metrics
func RegisterMetrics(router *mux.Router, gatherer prometheus.Gatherer) {
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET")
}

// GetStats handles GET /api/stats
func (a *API) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.queries.Stats.Handle(r.Context(), query.GetStatsQuery{})
	if err != nil {
		respondError(w, r, err)
		return
	}

	a.metrics.observeStats(stats)
	respondData(w, http.StatusOK, "", stats)
}

// HealthCheck handles GET /health
func (a *API) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := a.db.PingContext(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error:   "Database unavailable",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Storefront service is healthy",
	})
}
