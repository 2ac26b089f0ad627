package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// AddOrderLineCommand represents the command to add a product to an existing order
type AddOrderLineCommand struct {
	OrderID   string
	ProductID string
	Quantity  int
}

// AddOrderLineHandler handles order line creation command
type AddOrderLineHandler struct {
	repo domain.OrderRepository
}

// NewAddOrderLineHandler creates a new add order line handler
func NewAddOrderLineHandler(repo domain.OrderRepository) *AddOrderLineHandler {
	return &AddOrderLineHandler{repo: repo}
}

// Handle executes the add order line command
func (h *AddOrderLineHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) (*domain.OrderProduct, error) {
	if cmd.OrderID == "" {
		return nil, apperr.Validationf("order id is required")
	}
	line := domain.OrderLine{ProductID: cmd.ProductID, Quantity: cmd.Quantity}
	if err := validateLine(line); err != nil {
		return nil, err
	}

	item, err := h.repo.AddLine(ctx, cmd.OrderID, line)
	if err != nil {
		return nil, fmt.Errorf("failed to add order line: %w", err)
	}

	return item, nil
}
