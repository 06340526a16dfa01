package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrInsufficientStock matches any *StockError via errors.Is.
var ErrInsufficientStock = errors.New("insufficient stock")

// StockError reports the product whose conditional stock decrement matched
// no row, either because stock was too low or the product does not exist.
type StockError struct {
	ProductID uint
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for product ID %d", e.ProductID)
}

func (e *StockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
