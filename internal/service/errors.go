// Package service implements the marketplace business logic on top of
// the store: the order transaction engine, favorite toggle, catalog
// reads, adoption requests, and announcements.
package service

import "fmt"

// ValidationError reports malformed client input. It is raised before
// any storage access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NotFoundError reports a missing entity on a read path.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// ProductNotFoundError aborts an order because a cart line references
// a product that does not exist.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %q not found", e.ProductID)
}

// InsufficientStockError aborts an order because a cart line asks for
// more units than are available. Message is phrased for direct display
// to the end user.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %q. Available: %d", e.Name, e.Available)
}

// RuleError is a business-rule violation other than stock or missing
// products, e.g. a duplicate adoption request. Code is machine
// readable, Message human readable.
type RuleError struct {
	Code    string
	Message string
}

func (e *RuleError) Error() string { return e.Message }

const (
	RuleDuplicateRequest = "duplicate_request"
	RuleAlreadyDecided   = "already_decided"
	RuleInvalidStatus    = "invalid_status"
)
