package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// GormCategoryRepository implements domain.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *domain.Category) (err error) {
	ctx, span := startSpan(ctx, "category.Create", attribute.String("category.name", category.Name))
	defer func() { endSpan(span, err) }()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCategoryNameFree(tx, category.Name, ""); err != nil {
			return err
		}
		return apperr.FromDB("category.Create", "category", tx.Create(category).Error)
	})
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id string) (_ *domain.Category, err error) {
	ctx, span := startSpan(ctx, "category.FindByID", attribute.String("category.id", id))
	defer func() { endSpan(span, err) }()

	var category domain.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, apperr.FromDB("category.FindByID", "category", err)
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindByName(ctx context.Context, name string) (_ *domain.Category, err error) {
	ctx, span := startSpan(ctx, "category.FindByName", attribute.String("category.name", name))
	defer func() { endSpan(span, err) }()

	var category domain.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, apperr.FromDB("category.FindByName", "category", err)
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindAll(ctx context.Context) (_ []domain.Category, err error) {
	ctx, span := startSpan(ctx, "category.FindAll")
	defer func() { endSpan(span, err) }()

	var categories []domain.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperr.FromDB("category.FindAll", "category", err)
	}
	span.SetAttributes(attribute.Int("result.count", len(categories)))
	return categories, nil
}

func (r *GormCategoryRepository) Update(ctx context.Context, category *domain.Category) (err error) {
	ctx, span := startSpan(ctx, "category.Update", attribute.String("category.id", category.ID))
	defer func() { endSpan(span, err) }()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCategoryNameFree(tx, category.Name, category.ID); err != nil {
			return err
		}
		result := tx.Model(&domain.Category{}).Where("id = ?", category.ID).Select("name").Updates(category)
		if result.Error != nil {
			return apperr.FromDB("category.Update", "category", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("category")
		}
		return nil
	})
}

// Delete cascades through products, their images and wishlist rows. Products
// referenced by order lines block the whole delete.
func (r *GormCategoryRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, span := startSpan(ctx, "category.Delete", attribute.String("category.id", id))
	defer func() { endSpan(span, err) }()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category domain.Category
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			return apperr.FromDB("category.Delete", "category", err)
		}

		var productIDs []string
		if err := tx.Model(&domain.Product{}).Where("category_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
			return apperr.FromDB("category.Delete", "product", err)
		}
		span.SetAttributes(attribute.Int("category.products", len(productIDs)))

		if len(productIDs) > 0 {
			var referenced int64
			if err := tx.Model(&domain.OrderProduct{}).Where("product_id IN ?", productIDs).Count(&referenced).Error; err != nil {
				return apperr.FromDB("category.Delete", "order product", err)
			}
			if referenced > 0 {
				return apperr.Constraintf("cannot delete category %s: its products are referenced by existing orders", category.Name)
			}
			if err := deleteProductsTx(tx, productIDs); err != nil {
				return err
			}
		}

		return apperr.FromDB("category.Delete", "category", tx.Delete(&category).Error)
	})
}

func (r *GormCategoryRepository) Count(ctx context.Context) (_ int64, err error) {
	ctx, span := startSpan(ctx, "category.Count")
	defer func() { endSpan(span, err) }()

	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Category{}).Count(&count).Error; err != nil {
		return 0, apperr.FromDB("category.Count", "category", err)
	}
	return count, nil
}

func ensureCategoryNameFree(tx *gorm.DB, name, exceptID string) error {
	query := tx.Model(&domain.Category{}).Where("name = ?", name)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperr.FromDB("category.checkName", "category", err)
	}
	if count > 0 {
		return apperr.Conflictf("category %s already exists", name)
	}
	return nil
}
