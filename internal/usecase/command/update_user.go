package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/auth"
)

// UpdateUserCommand represents the command to update a user. Nil fields are left unchanged.
type UpdateUserCommand struct {
	ID       string
	Email    *string
	Password *string
	Role     *string
}

// UpdateUserHandler handles user update command
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	if cmd.ID == "" {
		return nil, apperr.Validationf("user id is required")
	}

	user, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Email != nil {
		email, err := normalizeEmail(*cmd.Email)
		if err != nil {
			return nil, err
		}
		user.Email = email
	}
	if cmd.Role != nil {
		if !domain.ValidRole(*cmd.Role) {
			return nil, apperr.Validationf("invalid role %q", *cmd.Role)
		}
		user.Role = *cmd.Role
	}
	if cmd.Password != nil {
		if err := validatePassword(*cmd.Password); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*cmd.Password)
		if err != nil {
			return nil, apperr.Internal("user.Update", err)
		}
		user.Password = hash
	}

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
