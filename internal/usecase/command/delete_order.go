package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/logger"
)

// DeleteOrderCommand represents the command to delete an order with its lines
type DeleteOrderCommand struct {
	ID string
}

// DeleteOrderHandler handles order deletion command
type DeleteOrderHandler struct {
	repo   domain.OrderRepository
	events domain.EventPublisher
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(repo domain.OrderRepository, events domain.EventPublisher) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo, events: events}
}

// Handle executes the delete order command
func (h *DeleteOrderHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if cmd.ID == "" {
		return apperr.Validationf("order id is required")
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if err := h.events.PublishOrderDeleted(ctx, cmd.ID); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("order_id", cmd.ID).Msg("Failed to publish order deleted event")
	}
	return nil
}
