package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"kasir/internal/models"
	"kasir/internal/repositories"
)

// ProductInput carries the editable fields of a product.
type ProductInput struct {
	Name       string
	Price      decimal.Decimal
	Stock      int
	CategoryID uint
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo         repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

// ListProducts retrieves all products with their category names.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.ProductView, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, storeErr("list products", err)
	}
	return products, nil
}

// ListAvailableProducts retrieves the products that can still be sold.
func (s *ProductService) ListAvailableProducts(ctx context.Context) ([]models.ProductView, error) {
	products, err := s.repo.GetAvailable(ctx)
	if err != nil {
		return nil, storeErr("list available products", err)
	}
	return products, nil
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, storeErr("get product", err)
	}
	return product, nil
}

// CreateProduct adds a product under an existing category.
func (s *ProductService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, in.Name, 0); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:       in.Name,
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: in.CategoryID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, storeErr("create product", err)
	}
	return product, nil
}

// UpdateProduct overwrites the editable fields of a product.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, in ProductInput) (*models.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, in.Name, id); err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Price = in.Price
	product.Stock = in.Stock
	product.CategoryID = in.CategoryID
	if err := s.repo.Update(ctx, product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, storeErr("update product", err)
	}
	return product, nil
}

// DeleteProduct removes a product that appears on no order.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountOrderDetails(ctx, id)
	if err != nil {
		return storeErr("count product order details", err)
	}
	if count > 0 {
		return fmt.Errorf("product is referenced by %d order detail(s): %w", count, ErrInUse)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return storeErr("delete product", err)
	}
	return nil
}

func validateProduct(in ProductInput) error {
	if in.Name == "" {
		return invalidf("Product name is required")
	}
	if in.Price.IsNegative() {
		return invalidf("Price must not be negative")
	}
	if in.Stock < 0 {
		return invalidf("Stock must not be negative")
	}
	if in.CategoryID == 0 {
		return invalidf("Category is required")
	}
	return nil
}

func (s *ProductService) checkCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return storeErr("get category", err)
	}
	return nil
}

func (s *ProductService) checkNameFree(ctx context.Context, name string, selfID uint) error {
	existing, err := s.repo.FindByName(ctx, name)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	case err != nil:
		return storeErr("find product", err)
	case existing.ID != selfID:
		return fmt.Errorf("product %q: %w", name, ErrDuplicate)
	}
	return nil
}
