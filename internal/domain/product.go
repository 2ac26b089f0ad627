package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Rating bounds
const (
	MinRating = 0
	MaxRating = 5
)

// Product represents a catalog item
type Product struct {
	ID           string          `json:"id" gorm:"primaryKey;size:36"`
	Title        string          `json:"title" gorm:"not null"`
	Slug         string          `json:"slug" gorm:"uniqueIndex;not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	Manufacturer string          `json:"manufacturer" gorm:"not null"`
	Description  string          `json:"description" gorm:"not null"`
	MainImage    string          `json:"mainImage"`
	InStock      int             `json:"inStock" gorm:"not null;default:0"`
	Rating       int             `json:"rating" gorm:"not null;default:0"`
	CategoryID   string          `json:"categoryId" gorm:"size:36;not null;index"`
	Category     *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Images       []Image         `json:"images,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "product"
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// IsAvailable checks if product is in stock
func (p *Product) IsAvailable() bool {
	return p.InStock > 0
}

// Image is an additional gallery picture of a product
type Image struct {
	ID        string `json:"id" gorm:"primaryKey;size:36"`
	ProductID string `json:"productID" gorm:"column:product_id;size:36;not null;index"`
	Image     string `json:"image" gorm:"not null"`
}

// TableName specifies the table name
func (Image) TableName() string {
	return "image"
}

func (i *Image) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// ProductFilter narrows product listings. Admin listings include products
// that are out of stock.
type ProductFilter struct {
	Search     string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Admin      bool
	Limit      int
	Offset     int
}
