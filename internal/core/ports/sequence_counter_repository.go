package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/sequence"
)

// SequenceCounterRepository stores one order number counter per prefix.
type SequenceCounterRepository interface {
	// Get returns errs.ErrObjectNotFound when the prefix has never issued a number.
	Get(ctx context.Context, prefix string) (*sequence.Counter, error)

	// Save writes the advanced counter using compare-and-swap on its version:
	// a new counter is inserted, an existing one is updated only when the stored
	// version still matches. A lost race returns errs.ErrConcurrentUpdate.
	Save(ctx context.Context, counter *sequence.Counter) error
}
