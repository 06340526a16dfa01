package services

import (
	"context"

	"github.com/shopspring/decimal"

	"kasir/internal/models"
	"kasir/internal/repositories"
)

const (
	salesDateLayout = "2006-01-02"
	salesTimeLayout = "15:04:05"
)

// ReportService builds the sales history shown on the reports screen.
type ReportService struct {
	orderRepo repositories.OrderRepository
}

// NewReportService creates a new ReportService.
func NewReportService(orderRepo repositories.OrderRepository) *ReportService {
	return &ReportService{
		orderRepo: orderRepo,
	}
}

// SalesHistory returns every completed order, newest first, with its lines.
func (s *ReportService) SalesHistory(ctx context.Context) ([]models.SalesOrder, error) {
	orders, err := s.orderRepo.GetByStatus(ctx, models.StatusCompleted)
	if err != nil {
		return nil, storeErr("sales history", err)
	}

	history := make([]models.SalesOrder, 0, len(orders))
	for _, order := range orders {
		history = append(history, toSalesOrder(order))
	}
	return history, nil
}

func toSalesOrder(order models.Order) models.SalesOrder {
	sale := models.SalesOrder{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		OrderDate:    order.OrderDate.Format(salesDateLayout),
		OrderTime:    order.OrderDate.Format(salesTimeLayout),
		TotalAmount:  order.Total,
		Status:       order.Status,
		Details:      make([]models.SalesLineDetail, 0, len(order.Details)),
	}
	for _, detail := range order.Details {
		var name string
		if detail.Product != nil {
			name = detail.Product.Name
		}
		sale.Details = append(sale.Details, models.SalesLineDetail{
			ProductName: name,
			Quantity:    detail.Quantity,
			UnitPrice:   detail.UnitPrice,
			Subtotal:    detail.UnitPrice.Mul(decimal.NewFromInt(int64(detail.Quantity))),
		})
	}
	return sale
}
