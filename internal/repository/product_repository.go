package repository

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// likeEscaper makes search text match literally inside a LIKE pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GormProductRepository implements domain.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) (err error) {
	ctx, span := startSpan(ctx, "product.Create",
		attribute.String("product.slug", product.Slug),
		attribute.String("product.category_id", product.CategoryID),
		attribute.Int("product.images", len(product.Images)),
	)
	defer func() { endSpan(span, err) }()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCategoryExists(tx, product.CategoryID); err != nil {
			return err
		}
		if err := ensureSlugFree(tx, product.Slug, ""); err != nil {
			return err
		}

		images := product.Images
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return apperr.FromDB("product.Create", "product", err)
		}
		if len(images) > 0 {
			for i := range images {
				images[i].ProductID = product.ID
			}
			if err := tx.Create(&images).Error; err != nil {
				return apperr.FromDB("product.Create", "image", err)
			}
		}
		return nil
	})
	if err == nil {
		span.SetAttributes(attribute.String("product.id", product.ID))
	}
	return err
}

func (r *GormProductRepository) FindByID(ctx context.Context, id string) (_ *domain.Product, err error) {
	ctx, span := startSpan(ctx, "product.FindByID", attribute.String("product.id", id))
	defer func() { endSpan(span, err) }()

	var product domain.Product
	if err := r.db.WithContext(ctx).Preload("Category").Preload("Images").First(&product, "id = ?", id).Error; err != nil {
		return nil, apperr.FromDB("product.FindByID", "product", err)
	}
	return &product, nil
}

func (r *GormProductRepository) FindBySlug(ctx context.Context, slug string) (_ *domain.Product, err error) {
	ctx, span := startSpan(ctx, "product.FindBySlug", attribute.String("product.slug", slug))
	defer func() { endSpan(span, err) }()

	var product domain.Product
	if err := r.db.WithContext(ctx).Preload("Category").Preload("Images").Where("slug = ?", slug).First(&product).Error; err != nil {
		return nil, apperr.FromDB("product.FindBySlug", "product", err)
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(ctx context.Context, filter domain.ProductFilter) (_ []domain.Product, err error) {
	ctx, span := startSpan(ctx, "product.FindAll",
		attribute.String("query.search", filter.Search),
		attribute.String("query.category_id", filter.CategoryID),
		attribute.Bool("query.admin", filter.Admin),
		attribute.Int("query.limit", filter.Limit),
		attribute.Int("query.offset", filter.Offset),
	)
	defer func() { endSpan(span, err) }()

	query := r.db.WithContext(ctx).Model(&domain.Product{}).Preload("Category")
	if !filter.Admin {
		query = query.Where("in_stock > 0")
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, pattern, pattern)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	query = paginate(query.Order("title ASC"), filter.Limit, filter.Offset)

	var products []domain.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, apperr.FromDB("product.FindAll", "product", err)
	}
	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) (err error) {
	ctx, span := startSpan(ctx, "product.Update",
		attribute.String("product.id", product.ID),
		attribute.String("product.slug", product.Slug),
	)
	defer func() { endSpan(span, err) }()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCategoryExists(tx, product.CategoryID); err != nil {
			return err
		}
		if err := ensureSlugFree(tx, product.Slug, product.ID); err != nil {
			return err
		}
		result := tx.Model(&domain.Product{}).
			Where("id = ?", product.ID).
			Select("title", "slug", "price", "manufacturer", "description", "main_image",
				"in_stock", "rating", "category_id").
			Updates(product)
		if result.Error != nil {
			return apperr.FromDB("product.Update", "product", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("product")
		}
		return nil
	})
}

// Delete refuses to orphan order lines. Images and wishlist rows go with the product.
func (r *GormProductRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, span := startSpan(ctx, "product.Delete", attribute.String("product.id", id))
	defer func() { endSpan(span, err) }()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return apperr.FromDB("product.Delete", "product", err)
		}
		if count == 0 {
			return apperr.NotFound("product")
		}

		var referenced int64
		if err := tx.Model(&domain.OrderProduct{}).Where("product_id = ?", id).Count(&referenced).Error; err != nil {
			return apperr.FromDB("product.Delete", "order product", err)
		}
		span.SetAttributes(attribute.Int64("product.order_lines", referenced))
		if referenced > 0 {
			return apperr.Constraintf("cannot delete product: it is referenced by %d existing order line(s)", referenced)
		}

		return deleteProductsTx(tx, []string{id})
	})
}

func (r *GormProductRepository) FindImages(ctx context.Context, productID string) (_ []domain.Image, err error) {
	ctx, span := startSpan(ctx, "product.FindImages", attribute.String("product.id", productID))
	defer func() { endSpan(span, err) }()

	var images []domain.Image
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&images).Error; err != nil {
		return nil, apperr.FromDB("product.FindImages", "image", err)
	}
	return images, nil
}

func (r *GormProductRepository) Count(ctx context.Context) (_ int64, err error) {
	ctx, span := startSpan(ctx, "product.Count")
	defer func() { endSpan(span, err) }()

	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error; err != nil {
		return 0, apperr.FromDB("product.Count", "product", err)
	}
	return count, nil
}

// deleteProductsTx removes products that are known to have no order lines,
// dependents first
func deleteProductsTx(tx *gorm.DB, ids []string) error {
	if err := tx.Where("product_id IN ?", ids).Delete(&domain.Wishlist{}).Error; err != nil {
		return apperr.FromDB("product.Delete", "wishlist", err)
	}
	if err := tx.Where("product_id IN ?", ids).Delete(&domain.Image{}).Error; err != nil {
		return apperr.FromDB("product.Delete", "image", err)
	}
	if err := tx.Where("id IN ?", ids).Delete(&domain.Product{}).Error; err != nil {
		return apperr.FromDB("product.Delete", "product", err)
	}
	return nil
}

func ensureCategoryExists(tx *gorm.DB, id string) error {
	var count int64
	if err := tx.Model(&domain.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperr.FromDB("product.checkCategory", "category", err)
	}
	if count == 0 {
		return apperr.NotFound("category")
	}
	return nil
}

func ensureSlugFree(tx *gorm.DB, slug, exceptID string) error {
	query := tx.Model(&domain.Product{}).Where("slug = ?", slug)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperr.FromDB("product.checkSlug", "product", err)
	}
	if count > 0 {
		return apperr.Conflictf("product with slug %s already exists", slug)
	}
	return nil
}
