package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/auth"
)

// CreateUserCommand represents the command to create a user
type CreateUserCommand struct {
	Email    string
	Password string
	Role     string
}

// CreateUserHandler handles user creation command
type CreateUserHandler struct {
	repo domain.UserRepository
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(repo domain.UserRepository) *CreateUserHandler {
	return &CreateUserHandler{repo: repo}
}

// Handle executes the create user command
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*domain.User, error) {
	email, err := normalizeEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(cmd.Password); err != nil {
		return nil, err
	}
	role := cmd.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, apperr.Validationf("invalid role %q", cmd.Role)
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, apperr.Internal("user.Create", err)
	}

	user := &domain.User{
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := h.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
