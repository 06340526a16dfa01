package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kasir/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create places the order. On success order.ID and each detail's OrderID are
// set; on any error nothing is committed.
func (r *GORMOrderRepository) Create(ctx context.Context, order *models.Order) error {
	header := *order
	header.Details = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&header).Error; err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		for _, detail := range order.Details {
			if err := decrementStock(tx, detail.ProductID, detail.Quantity); err != nil {
				return err
			}
			detail.OrderID = header.ID
			detail.Product = nil
			if err := tx.Create(&detail).Error; err != nil {
				return fmt.Errorf("failed to insert detail for product %d: %w", detail.ProductID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	order.ID = header.ID
	for i := range order.Details {
		order.Details[i].OrderID = header.ID
	}
	return nil
}

// decrementStock subtracts quantity only while enough stock remains. The
// guard and the write are one statement, so concurrent orders cannot both
// take the last units.
func decrementStock(tx *gorm.DB, productID uint, quantity int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("failed to update stock for product %d: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return &StockError{ProductID: productID}
	}
	return nil
}

// GetRecent retrieves the latest orders without their details.
func (r *GORMOrderRepository) GetRecent(ctx context.Context, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Order("order_date DESC").
		Order("id DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves an order with its details.
func (r *GORMOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Details", orderDetailsByProduct).
		Preload("Details.Product").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}
	return &order, nil
}

func (r *GORMOrderRepository) GetByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Details", orderDetailsByProduct).
		Preload("Details.Product").
		Where("status = ?", status).
		Order("order_date DESC").
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get %s orders: %w", status, err)
	}
	return orders, nil
}

func orderDetailsByProduct(db *gorm.DB) *gorm.DB {
	return db.Order("product_id ASC")
}

// UpdateStatus reads the current status and writes the new one in the same
// transaction. Writing an unchanged status is skipped.
func (r *GORMOrderRepository) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (models.OrderStatus, error) {
	var previous models.OrderStatus
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Select("id", "status").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to read order %d: %w", id, err)
		}
		previous = order.Status
		if previous == status {
			return nil
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update status of order %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return previous, nil
}
