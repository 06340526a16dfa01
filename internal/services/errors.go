package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a name is already taken.
	ErrDuplicate = errors.New("already exists")
	// ErrInUse is returned when a row cannot be deleted because others reference it.
	ErrInUse = errors.New("in use")
	// ErrInvalidCredentials is returned for any failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a request rejected before the store was touched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports an order rolled back because a product lacked stock.
// Retrying without re-reading stock will fail the same way.
type ConflictError struct {
	ProductID uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Insufficient stock for product ID: %d", e.ProductID)
}

// StoreError wraps a database failure. The cause is for logs only.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
