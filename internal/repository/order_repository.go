package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// GormOrderRepository implements domain.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(ctx context.Context, order *domain.CustomerOrder, lines []domain.OrderLine) (err error) {
	ctx, span := startSpan(ctx, "order.Create",
		attribute.String("order.status", string(order.Status)),
		attribute.Int("order.lines", len(lines)),
	)
	defer func() { endSpan(span, err) }()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prices, err := productPrices(tx, lines)
		if err != nil {
			return err
		}

		total := decimal.Zero
		for _, line := range lines {
			total = total.Add(domain.LineTotal(prices[line.ProductID], line.Quantity))
		}
		order.Total = total.Round(2)

		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return apperr.FromDB("order.Create", "order", err)
		}

		items := make([]domain.OrderProduct, 0, len(lines))
		for _, line := range lines {
			items = append(items, domain.OrderProduct{
				CustomerOrderID: order.ID,
				ProductID:       line.ProductID,
				Quantity:        line.Quantity,
			})
		}
		if len(items) > 0 {
			if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
				return apperr.FromDB("order.Create", "order product", err)
			}
		}
		order.Products = items
		return nil
	})
	if err == nil {
		span.SetAttributes(
			attribute.String("order.id", order.ID),
			attribute.String("order.total", order.Total.StringFixed(2)),
		)
	}
	return err
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (_ *domain.CustomerOrder, err error) {
	ctx, span := startSpan(ctx, "order.FindByID", attribute.String("order.id", id))
	defer func() { endSpan(span, err) }()

	var order domain.CustomerOrder
	if err := r.db.WithContext(ctx).
		Preload("Products").
		Preload("Products.Product").
		First(&order, "id = ?", id).Error; err != nil {
		return nil, apperr.FromDB("order.FindByID", "order", err)
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context, filter domain.OrderFilter) (_ []domain.CustomerOrder, err error) {
	ctx, span := startSpan(ctx, "order.FindAll",
		attribute.String("query.status", string(filter.Status)),
		attribute.Int("query.limit", filter.Limit),
		attribute.Int("query.offset", filter.Offset),
	)
	defer func() { endSpan(span, err) }()

	query := r.db.WithContext(ctx).Order("date_time DESC")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	query = paginate(query, filter.Limit, filter.Offset)

	var orders []domain.CustomerOrder
	if err := query.Find(&orders).Error; err != nil {
		return nil, apperr.FromDB("order.FindAll", "order", err)
	}
	span.SetAttributes(attribute.Int("result.count", len(orders)))
	return orders, nil
}

// Update writes the order header. Lines and the total are managed by
// Create, AddLine and DeleteLines.
func (r *GormOrderRepository) Update(ctx context.Context, order *domain.CustomerOrder) (err error) {
	ctx, span := startSpan(ctx, "order.Update",
		attribute.String("order.id", order.ID),
		attribute.String("order.status", string(order.Status)),
	)
	defer func() { endSpan(span, err) }()

	result := r.db.WithContext(ctx).Model(&domain.CustomerOrder{}).
		Where("id = ?", order.ID).
		Select("name", "lastname", "phone", "email", "company", "address", "apartment",
			"postal_code", "city", "country", "order_notice", "status").
		Updates(order)
	if result.Error != nil {
		return apperr.FromDB("order.Update", "order", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("order")
	}
	return nil
}

func (r *GormOrderRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, span := startSpan(ctx, "order.Delete", attribute.String("order.id", id))
	defer func() { endSpan(span, err) }()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines := tx.Where("customer_order_id = ?", id).Delete(&domain.OrderProduct{})
		if lines.Error != nil {
			return apperr.FromDB("order.Delete", "order product", lines.Error)
		}
		span.SetAttributes(attribute.Int64("order.lines_deleted", lines.RowsAffected))

		result := tx.Delete(&domain.CustomerOrder{}, "id = ?", id)
		if result.Error != nil {
			return apperr.FromDB("order.Delete", "order", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("order")
		}
		return nil
	})
}

func (r *GormOrderRepository) FindLines(ctx context.Context, orderID string) (_ []domain.OrderProduct, err error) {
	ctx, span := startSpan(ctx, "order.FindLines", attribute.String("order.id", orderID))
	defer func() { endSpan(span, err) }()

	var lines []domain.OrderProduct
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("customer_order_id = ?", orderID).
		Find(&lines).Error; err != nil {
		return nil, apperr.FromDB("order.FindLines", "order product", err)
	}
	return lines, nil
}

// AddLine appends a line to an existing order and recomputes its total
func (r *GormOrderRepository) AddLine(ctx context.Context, orderID string, line domain.OrderLine) (_ *domain.OrderProduct, err error) {
	ctx, span := startSpan(ctx, "order.AddLine",
		attribute.String("order.id", orderID),
		attribute.String("product.id", line.ProductID),
		attribute.Int("line.quantity", line.Quantity),
	)
	defer func() { endSpan(span, err) }()

	item := &domain.OrderProduct{
		CustomerOrderID: orderID,
		ProductID:       line.ProductID,
		Quantity:        line.Quantity,
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureOrderExists(tx, orderID); err != nil {
			return err
		}
		if _, err := productPrices(tx, []domain.OrderLine{line}); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
			return apperr.FromDB("order.AddLine", "order product", err)
		}
		return recomputeTotal(tx, orderID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteLines removes every line of the order and resets its total
func (r *GormOrderRepository) DeleteLines(ctx context.Context, orderID string) (_ int64, err error) {
	ctx, span := startSpan(ctx, "order.DeleteLines", attribute.String("order.id", orderID))
	defer func() { endSpan(span, err) }()

	var deleted int64
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureOrderExists(tx, orderID); err != nil {
			return err
		}
		result := tx.Where("customer_order_id = ?", orderID).Delete(&domain.OrderProduct{})
		if result.Error != nil {
			return apperr.FromDB("order.DeleteLines", "order product", result.Error)
		}
		deleted = result.RowsAffected
		return recomputeTotal(tx, orderID)
	})
	span.SetAttributes(attribute.Int64("order.lines_deleted", deleted))
	return deleted, err
}

func (r *GormOrderRepository) Count(ctx context.Context) (_ int64, err error) {
	ctx, span := startSpan(ctx, "order.Count")
	defer func() { endSpan(span, err) }()

	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.CustomerOrder{}).Count(&count).Error; err != nil {
		return 0, apperr.FromDB("order.Count", "order", err)
	}
	return count, nil
}

// Revenue sums the totals of every order that was not canceled
func (r *GormOrderRepository) Revenue(ctx context.Context) (_ decimal.Decimal, err error) {
	ctx, span := startSpan(ctx, "order.Revenue")
	defer func() { endSpan(span, err) }()

	var revenue decimal.NullDecimal
	row := r.db.WithContext(ctx).Model(&domain.CustomerOrder{}).
		Select("SUM(total)").
		Where("status <> ?", domain.OrderStatusCanceled).
		Row()
	if err := row.Scan(&revenue); err != nil {
		return decimal.Zero, apperr.FromDB("order.Revenue", "order", err)
	}
	if !revenue.Valid {
		return decimal.Zero, nil
	}
	return revenue.Decimal.Round(2), nil
}

func ensureOrderExists(tx *gorm.DB, id string) error {
	var count int64
	if err := tx.Model(&domain.CustomerOrder{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperr.FromDB("order.checkOrder", "order", err)
	}
	if count == 0 {
		return apperr.NotFound("order")
	}
	return nil
}

// productPrices loads the current price of every product named in lines.
// A missing product yields a not-found error.
func productPrices(tx *gorm.DB, lines []domain.OrderLine) (map[string]decimal.Decimal, error) {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	if len(ids) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	var products []domain.Product
	if err := tx.Select("id", "price").Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, apperr.FromDB("order.productPrices", "product", err)
	}
	prices := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	for _, id := range ids {
		if _, ok := prices[id]; !ok {
			return nil, apperr.NotFound("product")
		}
	}
	return prices, nil
}

// recomputeTotal sets the order total to the sum of its lines at current prices
func recomputeTotal(tx *gorm.DB, orderID string) error {
	var lines []domain.OrderProduct
	if err := tx.Preload("Product").Where("customer_order_id = ?", orderID).Find(&lines).Error; err != nil {
		return apperr.FromDB("order.recomputeTotal", "order product", err)
	}
	total := decimal.Zero
	for _, line := range lines {
		if line.Product != nil {
			total = total.Add(domain.LineTotal(line.Product.Price, line.Quantity))
		}
	}
	err := tx.Model(&domain.CustomerOrder{}).Where("id = ?", orderID).Update("total", total.Round(2)).Error
	return apperr.FromDB("order.recomputeTotal", "order", err)
}
