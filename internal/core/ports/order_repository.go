package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its lines.
type OrderRepository interface {
	// Add persists a new order. The order number must be unique.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, payment data and updatedAt of an existing order.
	// Lines are a creation-time snapshot and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ErrObjectNotFound when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes the order and its lines.
	Delete(ctx context.Context, id kernel.UUID) error
}
