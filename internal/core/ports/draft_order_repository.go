package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/draft"
	"orderdesk/internal/core/domain/model/kernel"
)

// DraftOrderRepository stores the index of generated draft orders.
type DraftOrderRepository interface {
	Add(ctx context.Context, d *draft.DraftOrder) error

	// GetAll returns every draft in the order it was generated.
	GetAll(ctx context.Context) ([]*draft.DraftOrder, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
