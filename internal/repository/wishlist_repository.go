package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// GormWishlistRepository implements domain.WishlistRepository using GORM
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewGormWishlistRepository creates a new GORM wishlist repository
func NewGormWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

func (r *GormWishlistRepository) Create(ctx context.Context, item *domain.Wishlist) (err error) {
	ctx, span := startSpan(ctx, "wishlist.Create",
		attribute.String("user.id", item.UserID),
		attribute.String("product.id", item.ProductID),
	)
	defer func() { endSpan(span, err) }()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &domain.User{}, item.UserID, "user"); err != nil {
			return err
		}
		if err := ensureExists(tx, &domain.Product{}, item.ProductID, "product"); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&domain.Wishlist{}).
			Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
			Count(&count).Error; err != nil {
			return apperr.FromDB("wishlist.Create", "wishlist item", err)
		}
		if count > 0 {
			return apperr.Conflictf("item already in wishlist")
		}
		return apperr.FromDB("wishlist.Create", "wishlist item", tx.Omit(clause.Associations).Create(item).Error)
	})
}

func (r *GormWishlistRepository) FindAll(ctx context.Context) (_ []domain.Wishlist, err error) {
	ctx, span := startSpan(ctx, "wishlist.FindAll")
	defer func() { endSpan(span, err) }()

	var items []domain.Wishlist
	if err := r.db.WithContext(ctx).Preload("Product").Find(&items).Error; err != nil {
		return nil, apperr.FromDB("wishlist.FindAll", "wishlist item", err)
	}
	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

func (r *GormWishlistRepository) FindByUser(ctx context.Context, userID string) (_ []domain.Wishlist, err error) {
	ctx, span := startSpan(ctx, "wishlist.FindByUser", attribute.String("user.id", userID))
	defer func() { endSpan(span, err) }()

	var items []domain.Wishlist
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Find(&items).Error; err != nil {
		return nil, apperr.FromDB("wishlist.FindByUser", "wishlist item", err)
	}
	return items, nil
}

func (r *GormWishlistRepository) FindOne(ctx context.Context, userID, productID string) (_ *domain.Wishlist, err error) {
	ctx, span := startSpan(ctx, "wishlist.FindOne",
		attribute.String("user.id", userID),
		attribute.String("product.id", productID),
	)
	defer func() { endSpan(span, err) }()

	var item domain.Wishlist
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, apperr.FromDB("wishlist.FindOne", "wishlist item", err)
	}
	return &item, nil
}

func (r *GormWishlistRepository) Delete(ctx context.Context, userID, productID string) (err error) {
	ctx, span := startSpan(ctx, "wishlist.Delete",
		attribute.String("user.id", userID),
		attribute.String("product.id", productID),
	)
	defer func() { endSpan(span, err) }()

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.Wishlist{})
	if result.Error != nil {
		return apperr.FromDB("wishlist.Delete", "wishlist item", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("wishlist item")
	}
	return nil
}

func (r *GormWishlistRepository) DeleteByUser(ctx context.Context, userID string) (_ int64, err error) {
	ctx, span := startSpan(ctx, "wishlist.DeleteByUser", attribute.String("user.id", userID))
	defer func() { endSpan(span, err) }()

	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Wishlist{})
	if result.Error != nil {
		return 0, apperr.FromDB("wishlist.DeleteByUser", "wishlist item", result.Error)
	}
	span.SetAttributes(attribute.Int64("wishlist.deleted", result.RowsAffected))
	return result.RowsAffected, nil
}

func ensureExists(tx *gorm.DB, model any, id, entity string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperr.FromDB("check."+entity, entity, err)
	}
	if count == 0 {
		return apperr.NotFound(entity)
	}
	return nil
}
