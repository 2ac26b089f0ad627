package query

import (
	"context"
	"strings"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// GetUserQuery looks a user up by id or, when ID is empty, by email
type GetUserQuery struct {
	ID    string
	Email string
}

// GetUserHandler handles get user query
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(ctx context.Context, query GetUserQuery) (*domain.User, error) {
	switch {
	case query.ID != "":
		return h.repo.FindByID(ctx, query.ID)
	case query.Email != "":
		return h.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(query.Email)))
	default:
		return nil, apperr.Validationf("user id or email is required")
	}
}

// ListUsersQuery represents the query to list users
type ListUsersQuery struct {
	Role   string
	Limit  int
	Offset int
}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(ctx context.Context, query ListUsersQuery) ([]domain.User, error) {
	if query.Role != "" && !domain.ValidRole(query.Role) {
		return nil, apperr.Validationf("invalid role %q", query.Role)
	}
	limit, offset, err := page(query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}
	return h.repo.FindAll(ctx, domain.UserFilter{Role: query.Role, Limit: limit, Offset: offset})
}
