package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// DeleteOrderLinesCommand represents the command to empty an order
type DeleteOrderLinesCommand struct {
	OrderID string
}

// DeleteOrderLinesHandler handles order lines deletion command
type DeleteOrderLinesHandler struct {
	repo domain.OrderRepository
}

// NewDeleteOrderLinesHandler creates a new delete order lines handler
func NewDeleteOrderLinesHandler(repo domain.OrderRepository) *DeleteOrderLinesHandler {
	return &DeleteOrderLinesHandler{repo: repo}
}

// Handle executes the delete order lines command and returns the number of removed lines
func (h *DeleteOrderLinesHandler) Handle(ctx context.Context, cmd DeleteOrderLinesCommand) (int64, error) {
	if cmd.OrderID == "" {
		return 0, apperr.Validationf("order id is required")
	}

	n, err := h.repo.DeleteLines(ctx, cmd.OrderID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete order lines: %w", err)
	}

	return n, nil
}
