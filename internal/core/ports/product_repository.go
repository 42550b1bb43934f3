package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error

	// Get returns errs.ErrObjectNotFound when no product has the given id.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll returns every product in creation order.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Delete returns errs.ErrObjectNotFound when no product has the given id.
	Delete(ctx context.Context, id kernel.UUID) error
}
