package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kasir/internal/models"
	"kasir/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// ListCategories retrieves all categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, storeErr("list categories", err)
	}
	return categories, nil
}

// CreateCategory adds a category whose name is not yet taken.
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("Category name is required")
	}
	if err := s.checkNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	category := &models.Category{Name: name}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, storeErr("create category", err)
	}
	return category, nil
}

// UpdateCategory renames a category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("Category name is required")
	}
	if err := s.checkNameFree(ctx, name, id); err != nil {
		return nil, err
	}

	category := &models.Category{ID: id, Name: name}
	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, storeErr("update category", err)
	}
	return category, nil
}

// DeleteCategory removes a category that no product uses.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return storeErr("get category", err)
	}

	count, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return storeErr("count category products", err)
	}
	if count > 0 {
		return fmt.Errorf("category is used by %d product(s): %w", count, ErrInUse)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return storeErr("delete category", err)
	}
	return nil
}

// checkNameFree fails with ErrDuplicate when another category than selfID
// already has name.
func (s *CategoryService) checkNameFree(ctx context.Context, name string, selfID uint) error {
	existing, err := s.repo.FindByName(ctx, name)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	case err != nil:
		return storeErr("find category", err)
	case existing.ID != selfID:
		return fmt.Errorf("category %q: %w", name, ErrDuplicate)
	}
	return nil
}
