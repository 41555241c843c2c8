package service

import (
	"errors"
	"fmt"
)

// Sentinel business errors. Handlers map these to HTTP statuses with
// errors.Is; services return them before performing any mutation.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrClientNotFound  = errors.New("client not found")

	// Sale preconditions (checked in order, short-circuiting)
	ErrAlreadySold       = errors.New("product is already sold")
	ErrInsufficientStock = errors.New("insufficient stock to register the sale")

	// Deletion guard
	ErrHasDependentSales = errors.New("product has dependent sales")

	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrNegativePrice    = errors.New("price and markup cannot be negative")
	ErrDuplicateClient  = errors.New("client already registered")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("token invalid or expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownRole        = errors.New("unknown role")

	ErrSaleNotFound     = errors.New("sale not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrStageNotFound    = errors.New("stage not found")
	ErrInvalidClientID  = errors.New("invalid client id")
)

// DependentSalesError names the product whose deletion was blocked.
// errors.Is(err, ErrHasDependentSales) matches it.
type DependentSalesError struct {
	ProductName string
}

func (e *DependentSalesError) Error() string {
	return fmt.Sprintf("cannot delete product %q: it has associated sales", e.ProductName)
}

func (e *DependentSalesError) Is(target error) bool {
	return target == ErrHasDependentSales
}

// DuplicateClientError carries the dedupe key of the rejected client.
type DuplicateClientError struct {
	Name          string
	SportCategory string
	Month         string
	Year          string
}

func (e *DuplicateClientError) Error() string {
	return fmt.Sprintf("client %q already added to category %q for %s %s",
		e.Name, e.SportCategory, e.Month, e.Year)
}

func (e *DuplicateClientError) Is(target error) bool {
	return target == ErrDuplicateClient
}
