//go:build wireinject
// +build wireinject

package storefront

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	httpDelivery "github.com/tair/storefront/internal/delivery/http"
	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/internal/seed"
)

// InitializeAPI builds the HTTP API with all dependencies
func InitializeAPI(db *gorm.DB, events domain.EventPublisher, reg prometheus.Registerer) (*httpDelivery.API, error) {
	wire.Build(
		HandlerSet,
		ProvidePinger,
		httpDelivery.NewMetrics,
		httpDelivery.NewAPI,
	)
	return nil, nil
}

// InitializeGenerator builds the demo data generator
func InitializeGenerator(db *gorm.DB, events domain.EventPublisher) (*seed.Generator, error) {
	wire.Build(
		ProvideSeedBuilder,
		seed.NewGenerator,
	)
	return nil, nil
}
