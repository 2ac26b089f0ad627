package query

import (
	"context"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// GetOrderQuery represents the query to get an order with its lines
type GetOrderQuery struct {
	ID string
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(ctx context.Context, query GetOrderQuery) (*domain.CustomerOrder, error) {
	return h.repo.FindByID(ctx, query.ID)
}

// ListOrdersQuery represents the query to list orders, newest first
type ListOrdersQuery struct {
	Status string
	Limit  int
	Offset int
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]domain.CustomerOrder, error) {
	filter := domain.OrderFilter{}
	if query.Status != "" {
		status, ok := domain.ParseOrderStatus(query.Status)
		if !ok {
			return nil, apperr.Validationf("invalid order status %q", query.Status)
		}
		filter.Status = status
	}
	limit, offset, err := page(query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}
	filter.Limit, filter.Offset = limit, offset
	return h.repo.FindAll(ctx, filter)
}

// ListOrderLinesQuery represents the query to list the lines of an order
type ListOrderLinesQuery struct {
	OrderID string
}

// ListOrderLinesHandler handles list order lines query
type ListOrderLinesHandler struct {
	repo domain.OrderRepository
}

// NewListOrderLinesHandler creates a new list order lines handler
func NewListOrderLinesHandler(repo domain.OrderRepository) *ListOrderLinesHandler {
	return &ListOrderLinesHandler{repo: repo}
}

// Handle executes the list order lines query
func (h *ListOrderLinesHandler) Handle(ctx context.Context, query ListOrderLinesQuery) ([]domain.OrderProduct, error) {
	if query.OrderID == "" {
		return nil, apperr.Validationf("order id is required")
	}
	return h.repo.FindLines(ctx, query.OrderID)
}
