package models

import "github.com/shopspring/decimal"

// SalesOrder is a completed order flattened for the sales history report and
// the CSV exports built from it.
type SalesOrder struct {
	OrderID      uint              `json:"order_id"`
	CustomerName string            `json:"customer_name"`
	OrderDate    string            `json:"order_date"`
	OrderTime    string            `json:"order_time"`
	TotalAmount  decimal.Decimal   `json:"total_amount"`
	Status       OrderStatus       `json:"status"`
	Details      []SalesLineDetail `json:"details"`
}

// SalesLineDetail is a sold line within a SalesOrder.
type SalesLineDetail struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
