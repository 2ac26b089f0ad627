package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/internal/seed"
	"github.com/tair/storefront/internal/testutil"
)

func TestInitializeAPI(t *testing.T) {
	db := testutil.NewDB(t)

	api, err := InitializeAPI(db, domain.NopPublisher{}, prometheus.NewRegistry())
	require.NoError(t, err)

	router := mux.NewRouter()
	api.RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInitializeGenerator(t *testing.T) {
	db := testutil.NewDB(t)

	gen, err := InitializeGenerator(db, domain.NopPublisher{})
	require.NoError(t, err)

	summary, err := gen.Run(context.Background(), seed.Config{Users: 1, Products: 2, Orders: 1, Wishlists: 1, Seed: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Orders)
}
