package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// UpdateOrderCommand represents the command to update an order header. Nil
// fields are left unchanged.
type UpdateOrderCommand struct {
	ID          string
	Name        *string
	Lastname    *string
	Phone       *string
	Email       *string
	Company     *string
	Address     *string
	Apartment   *string
	PostalCode  *string
	City        *string
	Country     *string
	OrderNotice *string
	Status      *string
}

// UpdateOrderHandler handles order update command
type UpdateOrderHandler struct {
	repo domain.OrderRepository
}

// NewUpdateOrderHandler creates a new update order handler
func NewUpdateOrderHandler(repo domain.OrderRepository) *UpdateOrderHandler {
	return &UpdateOrderHandler{repo: repo}
}

// Handle executes the update order command
func (h *UpdateOrderHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*domain.CustomerOrder, error) {
	if cmd.ID == "" {
		return nil, apperr.Validationf("order id is required")
	}

	order, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	contact := Contact{
		Name:        pick(cmd.Name, order.Name),
		Lastname:    pick(cmd.Lastname, order.Lastname),
		Phone:       pick(cmd.Phone, order.Phone),
		Email:       pick(cmd.Email, order.Email),
		Company:     pick(cmd.Company, order.Company),
		Address:     pick(cmd.Address, order.Address),
		Apartment:   pick(cmd.Apartment, order.Apartment),
		PostalCode:  pick(cmd.PostalCode, order.PostalCode),
		City:        pick(cmd.City, order.City),
		Country:     pick(cmd.Country, order.Country),
		OrderNotice: order.OrderNotice,
	}
	if cmd.OrderNotice != nil {
		contact.OrderNotice = cmd.OrderNotice
		if strings.TrimSpace(*cmd.OrderNotice) == "" {
			contact.OrderNotice = nil
		}
	}
	contact, err = validateContact(contact)
	if err != nil {
		return nil, err
	}

	if cmd.Status != nil {
		status, ok := domain.ParseOrderStatus(*cmd.Status)
		if !ok {
			return nil, invalidStatus(*cmd.Status)
		}
		order.Status = status
	}

	order.Name = contact.Name
	order.Lastname = contact.Lastname
	order.Phone = contact.Phone
	order.Email = contact.Email
	order.Company = contact.Company
	order.Address = contact.Address
	order.Apartment = contact.Apartment
	order.PostalCode = contact.PostalCode
	order.City = contact.City
	order.Country = contact.Country
	order.OrderNotice = contact.OrderNotice

	if err := h.repo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}

func pick(v *string, current string) string {
	if v != nil {
		return *v
	}
	return current
}
