// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDiscountNotFound = errors.New("discount not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrReturnNotFound   = errors.New("return not found")

	// ErrStockConflict marks a lost update on a stock decrement: the
	// availability check passed but another sale drained the stock
	// before the conditional update ran. Retried internally.
	ErrStockConflict = errors.New("stock level changed concurrently")
)

// InsufficientStockError carries the product identity and the shortfall
// so the caller can tell which line item failed and by how much.
type InsufficientStockError struct {
	ProductCode string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductCode, e.Requested, e.Available)
}

func (e *InsufficientStockError) Shortfall() int {
	return e.Requested - e.Available
}
