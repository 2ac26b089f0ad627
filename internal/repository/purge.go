package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/logger"
)

// PurgeResult is the number of rows removed from one table
type PurgeResult struct {
	Table   string
	Deleted int64
}

// Purger empties every storefront table
type Purger struct {
	db *gorm.DB
}

// NewPurger creates a new purger
func NewPurger(db *gorm.DB) *Purger {
	return &Purger{db: db}
}

// purgeOrder lists tables with dependents before the rows they reference
var purgeOrder = []struct {
	table string
	model any
}{
	{"wishlist", &domain.Wishlist{}},
	{"customer_order_product", &domain.OrderProduct{}},
	{"customer_order", &domain.CustomerOrder{}},
	{"image", &domain.Image{}},
	{"product", &domain.Product{}},
	{"category", &domain.Category{}},
	{"user", &domain.User{}},
}

// PurgeAll deletes every row of every table in one transaction
func (p *Purger) PurgeAll(ctx context.Context) (_ []PurgeResult, err error) {
	ctx, span := startSpan(ctx, "purge.All")
	defer func() { endSpan(span, err) }()

	results := make([]PurgeResult, 0, len(purgeOrder))
	err = p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, step := range purgeOrder {
			result := all.Delete(step.model)
			if result.Error != nil {
				return apperr.FromDB("purge."+step.table, step.table, result.Error)
			}
			logger.WithContext(ctx).Info().
				Str("table", step.table).
				Int64("deleted", result.RowsAffected).
				Msg("Table purged")
			span.SetAttributes(attribute.Int64("purge."+step.table, result.RowsAffected))
			results = append(results, PurgeResult{Table: step.table, Deleted: result.RowsAffected})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
