package command

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// CreateCategoryCommand represents the command to create a category
type CreateCategoryCommand struct {
	Name string
}

// CreateCategoryHandler handles category creation command
type CreateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo}
}

// Handle executes the create category command. The name is stored in slug form.
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	name, err := categoryName(cmd.Name)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{Name: name}
	if err := h.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func categoryName(name string) (string, error) {
	name = slug.Make(name)
	if name == "" {
		return "", apperr.Validationf("category name is required")
	}
	return name, nil
}
