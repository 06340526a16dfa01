package repositories

import (
	"context"

	"kasir/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.ProductView, error)
	// GetAvailable lists only products with stock left.
	GetAvailable(ctx context.Context) ([]models.ProductView, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	CountOrderDetails(ctx context.Context, id uint) (int64, error)
}
