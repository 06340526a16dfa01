package repositories

import (
	"context"

	"kasir/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create stores the order header, decrements stock for every detail and
	// stores the details, all in one transaction. A detail whose product has
	// too little stock aborts the whole order with a *StockError.
	Create(ctx context.Context, order *models.Order) error
	GetRecent(ctx context.Context, limit int) ([]models.Order, error)
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	// GetByStatus returns matching orders, newest first, with details and
	// their products loaded.
	GetByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	// UpdateStatus sets the status and returns the one it replaced.
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (models.OrderStatus, error)
}
