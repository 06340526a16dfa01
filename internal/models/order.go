package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "Pending Payment"
	StatusPaid           OrderStatus = "Paid"
	StatusProcessing     OrderStatus = "Processing"
	StatusCompleted      OrderStatus = "Completed"
	StatusCancelled      OrderStatus = "Cancelled"
)

// OrderStatuses lists every accepted status, in display order.
var OrderStatuses = []OrderStatus{
	StatusPendingPayment,
	StatusPaid,
	StatusProcessing,
	StatusCompleted,
	StatusCancelled,
}

// Valid reports whether s is one of the known statuses. Matching is exact.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is the header row of a register sale.
type Order struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	CustomerName string          `json:"customer_name" gorm:"type:varchar(255);not null"`
	Total        decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	OrderDate    time.Time       `json:"order_date" gorm:"not null;index"`
	Status       OrderStatus     `json:"status" gorm:"type:varchar(32);not null;index"`
	Details      []OrderDetail   `json:"details,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderDetail is one line item of an order. UnitPrice is the price charged at
// the register, independent of later product price changes.
type OrderDetail struct {
	OrderID   uint            `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID uint            `json:"product_id" gorm:"primaryKey;autoIncrement:false;index"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Product   *Product        `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}
