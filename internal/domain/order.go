package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of a customer order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// OrderStatuses lists every accepted status
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

// ParseOrderStatus normalizes s into a known status. "cancelled" is accepted
// as an alias of canceled.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "cancelled" {
		return OrderStatusCanceled, true
	}
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// CustomerOrder is a checkout. It owns its OrderProduct lines.
type CustomerOrder struct {
	ID          string          `json:"id" gorm:"primaryKey;size:36"`
	Name        string          `json:"name" gorm:"not null"`
	Lastname    string          `json:"lastname" gorm:"not null"`
	Phone       string          `json:"phone" gorm:"not null"`
	Email       string          `json:"email" gorm:"not null"`
	Company     string          `json:"company" gorm:"not null"`
	Address     string          `json:"address" gorm:"not null"`
	Apartment   string          `json:"apartment" gorm:"not null"`
	PostalCode  string          `json:"postalCode" gorm:"not null"`
	City        string          `json:"city" gorm:"not null"`
	Country     string          `json:"country" gorm:"not null"`
	OrderNotice *string         `json:"orderNotice"`
	Status      OrderStatus     `json:"status" gorm:"type:varchar(20);not null;index"`
	Total       decimal.Decimal `json:"total" gorm:"type:numeric(12,2);not null"`
	DateTime    time.Time       `json:"dateTime" gorm:"autoCreateTime"`
	Products    []OrderProduct  `json:"products,omitempty" gorm:"foreignKey:CustomerOrderID"`
}

// TableName specifies the table name
func (CustomerOrder) TableName() string {
	return "customer_order"
}

func (o *CustomerOrder) BeforeCreate(*gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderProduct is a line item joining an order and a product
type OrderProduct struct {
	ID              string   `json:"id" gorm:"primaryKey;size:36"`
	CustomerOrderID string   `json:"customerOrderId" gorm:"size:36;not null;index"`
	ProductID       string   `json:"productId" gorm:"size:36;not null;index"`
	Product         *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity        int      `json:"quantity" gorm:"not null"`
}

// TableName specifies the table name
func (OrderProduct) TableName() string {
	return "customer_order_product"
}

func (op *OrderProduct) BeforeCreate(*gorm.DB) error {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	return nil
}

// OrderLine is requested quantity of a product in a new order
type OrderLine struct {
	ProductID string
	Quantity  int
}

// OrderFilter narrows order listings
type OrderFilter struct {
	Status OrderStatus
	Limit  int
	Offset int
}

// LineTotal returns price * quantity
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
