package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wishlist marks a product as wished by a user. At most one row per pair.
type Wishlist struct {
	ID        string   `json:"id" gorm:"primaryKey;size:36"`
	UserID    string   `json:"userId" gorm:"size:36;not null;uniqueIndex:wishlist_user_product_key"`
	User      *User    `json:"-" gorm:"foreignKey:UserID"`
	ProductID string   `json:"productId" gorm:"size:36;not null;index;uniqueIndex:wishlist_user_product_key"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// TableName specifies the table name
func (Wishlist) TableName() string {
	return "wishlist"
}

func (w *Wishlist) BeforeCreate(*gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
