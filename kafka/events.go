package kafka

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedEvent is published after an order and its lines are committed
type OrderPlacedEvent struct {
	EventID   string           `json:"event_id"`
	EventType string           `json:"event_type"`
	OrderID   string           `json:"order_id"`
	Email     string           `json:"email"`
	Status    string           `json:"status"`
	Total     decimal.Decimal  `json:"total"`
	Lines     []OrderLineEvent `json:"lines"`
	Timestamp time.Time        `json:"timestamp"`
}

// OrderLineEvent is one product of a placed order
type OrderLineEvent struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderDeletedEvent is published after an order and its lines are removed
type OrderDeletedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	OrderID   string    `json:"order_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced  = "order.placed"
	EventTypeOrderDeleted = "order.deleted"
)

// Kafka topics
const (
	TopicOrderPlaced  = "storefront-order-placed"
	TopicOrderDeleted = "storefront-order-deleted"
)
