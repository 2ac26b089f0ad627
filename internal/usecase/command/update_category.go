package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// UpdateCategoryCommand represents the command to rename a category
type UpdateCategoryCommand struct {
	ID   string
	Name string
}

// UpdateCategoryHandler handles category update command
type UpdateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(repo domain.CategoryRepository) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	if cmd.ID == "" {
		return nil, apperr.Validationf("category id is required")
	}
	name, err := categoryName(cmd.Name)
	if err != nil {
		return nil, err
	}

	category, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	category.Name = name

	if err := h.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}
