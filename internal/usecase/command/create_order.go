package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/logger"
)

// Contact is the customer data carried by an order
type Contact struct {
	Name        string
	Lastname    string
	Phone       string
	Email       string
	Company     string
	Address     string
	Apartment   string
	PostalCode  string
	City        string
	Country     string
	OrderNotice *string
}

// CreateOrderCommand represents a checkout
type CreateOrderCommand struct {
	Contact
	Status string
	Lines  []domain.OrderLine
}

// CreateOrderHandler handles order creation command
type CreateOrderHandler struct {
	repo   domain.OrderRepository
	events domain.EventPublisher
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(repo domain.OrderRepository, events domain.EventPublisher) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo, events: events}
}

// Handle validates the checkout and stores the order with its lines. The
// total is computed from current product prices.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.CustomerOrder, error) {
	contact, err := validateContact(cmd.Contact)
	if err != nil {
		return nil, err
	}

	status := domain.OrderStatusProcessing
	if cmd.Status != "" {
		parsed, ok := domain.ParseOrderStatus(cmd.Status)
		if !ok {
			return nil, invalidStatus(cmd.Status)
		}
		status = parsed
	}

	if len(cmd.Lines) == 0 {
		return nil, apperr.Validationf("order must contain at least one product")
	}
	seen := make(map[string]bool, len(cmd.Lines))
	for _, line := range cmd.Lines {
		if err := validateLine(line); err != nil {
			return nil, err
		}
		if seen[line.ProductID] {
			return nil, apperr.Validationf("product %s appears more than once", line.ProductID)
		}
		seen[line.ProductID] = true
	}

	order := &domain.CustomerOrder{
		Name:        contact.Name,
		Lastname:    contact.Lastname,
		Phone:       contact.Phone,
		Email:       contact.Email,
		Company:     contact.Company,
		Address:     contact.Address,
		Apartment:   contact.Apartment,
		PostalCode:  contact.PostalCode,
		City:        contact.City,
		Country:     contact.Country,
		OrderNotice: contact.OrderNotice,
		Status:      status,
	}
	if err := h.repo.Create(ctx, order, cmd.Lines); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// the order is committed; a lost event does not undo it
	if err := h.events.PublishOrderPlaced(ctx, order); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("order_id", order.ID).Msg("Failed to publish order placed event")
	}

	return order, nil
}

func validateContact(c Contact) (Contact, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Lastname = strings.TrimSpace(c.Lastname)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Company = strings.TrimSpace(c.Company)
	c.Address = strings.TrimSpace(c.Address)
	c.Apartment = strings.TrimSpace(c.Apartment)
	c.PostalCode = strings.TrimSpace(c.PostalCode)
	c.City = strings.TrimSpace(c.City)
	c.Country = strings.TrimSpace(c.Country)

	if err := requireFields(
		field{"name", c.Name},
		field{"lastname", c.Lastname},
		field{"phone", c.Phone},
		field{"email", c.Email},
		field{"company", c.Company},
		field{"address", c.Address},
		field{"apartment", c.Apartment},
		field{"postal code", c.PostalCode},
		field{"city", c.City},
		field{"country", c.Country},
	); err != nil {
		return c, err
	}

	email, err := normalizeEmail(c.Email)
	if err != nil {
		return c, err
	}
	c.Email = email
	return c, nil
}

func validateLine(line domain.OrderLine) error {
	if line.ProductID == "" {
		return apperr.Validationf("product id is required")
	}
	if line.Quantity < 1 {
		return apperr.Validationf("quantity must be at least 1, got %d", line.Quantity)
	}
	return nil
}

func invalidStatus(status string) error {
	names := make([]string, 0, len(domain.OrderStatuses))
	for _, s := range domain.OrderStatuses {
		names = append(names, string(s))
	}
	return apperr.Validationf("invalid order status %q, expected one of %s", status, strings.Join(names, ", "))
}
