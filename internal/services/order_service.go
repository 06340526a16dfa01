package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"kasir/internal/models"
	"kasir/internal/repositories"
)

// OrderLine is one line item of an order being placed.
type OrderLine struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderService handles order placement, status changes and order lookups.
type OrderService struct {
	orderRepo repositories.OrderRepository
	events    EventPublisher
	listLimit int
	now       func() time.Time
}

// NewOrderService creates a new OrderService. events may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, events EventPublisher, listLimit int) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		events:    events,
		listLimit: listLimit,
		now:       time.Now,
	}
}

// PlaceOrder records a paid order and takes its quantities out of stock in a
// single transaction. Either everything commits or nothing does.
func (s *OrderService) PlaceOrder(ctx context.Context, customerName string, total decimal.Decimal, items []OrderLine) (uint, error) {
	customerName = strings.TrimSpace(customerName)
	if err := validateOrder(customerName, total, items); err != nil {
		return 0, err
	}

	order := &models.Order{
		CustomerName: customerName,
		Total:        total,
		OrderDate:    s.now(),
		Status:       models.StatusPaid,
		Details:      make([]models.OrderDetail, 0, len(items)),
	}
	for _, item := range items {
		order.Details = append(order.Details, models.OrderDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		var stockErr *repositories.StockError
		if errors.As(err, &stockErr) {
			return 0, &ConflictError{ProductID: stockErr.ProductID}
		}
		return 0, storeErr("place order", err)
	}

	s.publish(EventOrderPlaced, OrderPlacedEvent{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Total:        order.Total.StringFixed(2),
		Items:        items,
	})
	return order.ID, nil
}

func validateOrder(customerName string, total decimal.Decimal, items []OrderLine) error {
	if customerName == "" {
		return invalidf("Customer name is required")
	}
	if total.IsNegative() {
		return invalidf("Total must not be negative")
	}
	if len(items) == 0 {
		return invalidf("Order must contain at least one item")
	}
	seen := make(map[uint]bool, len(items))
	for i, item := range items {
		if item.ProductID == 0 {
			return invalidf("Item %d: product ID is required", i+1)
		}
		if item.Quantity <= 0 {
			return invalidf("Item %d: quantity must be a positive integer", i+1)
		}
		if item.UnitPrice.IsNegative() {
			return invalidf("Item %d: unit price must not be negative", i+1)
		}
		if seen[item.ProductID] {
			return invalidf("Product ID %d is listed more than once", item.ProductID)
		}
		seen[item.ProductID] = true
	}
	return nil
}

// UpdateStatus moves an order to status. changed is false when the order
// already had that status; that is still a success.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (bool, error) {
	if id == 0 {
		return false, invalidf("Order ID is required")
	}
	if !status.Valid() {
		return false, invalidf("Invalid status value: %q", string(status))
	}

	previous, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, fmt.Errorf("order %d: %w", id, ErrNotFound)
		}
		return false, storeErr("update order status", err)
	}
	if previous == status {
		return false, nil
	}

	s.publish(EventOrderStatusChanged, OrderStatusChangedEvent{
		OrderID:        id,
		PreviousStatus: string(previous),
		Status:         string(status),
	})
	return true, nil
}

// ListRecentOrders returns the latest orders, newest first, without details.
func (s *OrderService) ListRecentOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orderRepo.GetRecent(ctx, s.listLimit)
	if err != nil {
		return nil, storeErr("list orders", err)
	}
	return orders, nil
}

// GetOrder returns one order with its details.
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
		}
		return nil, storeErr("get order", err)
	}
	return order, nil
}

func (s *OrderService) publish(eventType string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(eventType, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", eventType, err)
	}
}
