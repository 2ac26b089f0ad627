package repository

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// GormUserRepository implements domain.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) (err error) {
	ctx, span := startSpan(ctx, "user.Create", attribute.String("user.role", user.Role))
	defer func() { endSpan(span, err) }()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return apperr.FromDB("user.Create", "user", err)
		}
		if count > 0 {
			return apperr.Conflictf("user with email %s already exists", user.Email)
		}
		return apperr.FromDB("user.Create", "user", tx.Create(user).Error)
	})
	if err == nil {
		span.SetAttributes(attribute.String("user.id", user.ID))
	}
	return err
}

func (r *GormUserRepository) FindByID(ctx context.Context, id string) (_ *domain.User, err error) {
	ctx, span := startSpan(ctx, "user.FindByID", attribute.String("user.id", id))
	defer func() { endSpan(span, err) }()

	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, apperr.FromDB("user.FindByID", "user", err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (_ *domain.User, err error) {
	ctx, span := startSpan(ctx, "user.FindByEmail")
	defer func() { endSpan(span, err) }()

	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, apperr.FromDB("user.FindByEmail", "user", err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindAll(ctx context.Context, filter domain.UserFilter) (_ []domain.User, err error) {
	ctx, span := startSpan(ctx, "user.FindAll",
		attribute.String("query.role", filter.Role),
		attribute.Int("query.limit", filter.Limit),
		attribute.Int("query.offset", filter.Offset),
	)
	defer func() { endSpan(span, err) }()

	query := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	query = paginate(query, filter.Limit, filter.Offset)

	var users []domain.User
	if err := query.Find(&users).Error; err != nil {
		return nil, apperr.FromDB("user.FindAll", "user", err)
	}
	span.SetAttributes(attribute.Int("result.count", len(users)))
	return users, nil
}

func (r *GormUserRepository) Update(ctx context.Context, user *domain.User) (err error) {
	ctx, span := startSpan(ctx, "user.Update", attribute.String("user.id", user.ID))
	defer func() { endSpan(span, err) }()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).
			Where("email = ? AND id <> ?", user.Email, user.ID).
			Count(&count).Error; err != nil {
			return apperr.FromDB("user.Update", "user", err)
		}
		if count > 0 {
			return apperr.Conflictf("user with email %s already exists", user.Email)
		}
		result := tx.Model(&domain.User{}).Where("id = ?", user.ID).Select("email", "password", "role").Updates(user)
		if result.Error != nil {
			return apperr.FromDB("user.Update", "user", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("user")
		}
		return nil
	})
}

func (r *GormUserRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, span := startSpan(ctx, "user.Delete", attribute.String("user.id", id))
	defer func() { endSpan(span, err) }()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&domain.Wishlist{}).Error; err != nil {
			return apperr.FromDB("user.Delete", "wishlist", err)
		}
		result := tx.Delete(&domain.User{}, "id = ?", id)
		if result.Error != nil {
			return apperr.FromDB("user.Delete", "user", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("user")
		}
		return nil
	})
}

func (r *GormUserRepository) Count(ctx context.Context) (_ int64, err error) {
	ctx, span := startSpan(ctx, "user.Count")
	defer func() { endSpan(span, err) }()

	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error; err != nil {
		return 0, apperr.FromDB("user.Count", "user", err)
	}
	return count, nil
}

// paginate applies limit and offset when they are set
func paginate(query *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}
