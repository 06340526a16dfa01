// Package export renders sales history as CSV downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"kasir/internal/models"
)

// File names offered to the browser.
const (
	SummaryFilename = "sales_summary.csv"
	DetailsFilename = "order_details.csv"
)

var (
	summaryHeader = []string{"Order ID", "Customer Name", "Order Date", "Order Time", "Total Order Amount (PHP)", "Status"}
	detailsHeader = []string{"Order ID", "Product Name", "Quantity", "Unit Price (PHP)", "Subtotal (PHP)"}
)

// WriteSummary writes one row per order.
func WriteSummary(w io.Writer, sales []models.SalesOrder) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	for _, order := range sales {
		row := []string{
			strconv.FormatUint(uint64(order.OrderID), 10),
			order.CustomerName,
			order.OrderDate,
			order.OrderTime,
			order.TotalAmount.StringFixed(2),
			string(order.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row for order %d: %w", order.OrderID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDetails writes one row per order line. The subtotal is recomputed
// from quantity and unit price rather than taken from the payload.
func WriteDetails(w io.Writer, sales []models.SalesOrder) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(detailsHeader); err != nil {
		return fmt.Errorf("failed to write details header: %w", err)
	}
	for _, order := range sales {
		orderID := strconv.FormatUint(uint64(order.OrderID), 10)
		for _, line := range order.Details {
			subtotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			row := []string{
				orderID,
				line.ProductName,
				strconv.Itoa(line.Quantity),
				line.UnitPrice.StringFixed(2),
				subtotal.StringFixed(2),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write detail row for order %d: %w", order.OrderID, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
