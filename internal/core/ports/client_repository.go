// Package ports defines the persistence contracts of the order desk.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for clients.
type ClientRepository interface {
	Add(ctx context.Context, aggregate *client.Client) error
	Update(ctx context.Context, aggregate *client.Client) error

	// Get returns errs.ErrObjectNotFound when no client has the given id.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetAll returns every client in creation order.
	GetAll(ctx context.Context) ([]*client.Client, error)

	// Delete returns errs.ErrObjectNotFound when no client has the given id.
	Delete(ctx context.Context, id kernel.UUID) error
}
