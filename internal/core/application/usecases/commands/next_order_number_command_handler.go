package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/metrics"

	"github.com/rs/zerolog"
)

// NextOrderNumberCommandHandler issues unique, human-readable order numbers
// of the form PREFIX-YYYYMMDD-NNNNNN. Numbers restart at 1 every day and grow
// strictly within a day, also under concurrent callers. A clock that moved
// back before the counter's last date fails with a validation error.
//
// Example:
//
//	cmd, _ := NewNextOrderNumberCommand("ord")
//	number, err := handler.Handle(ctx, cmd) // "ORD-20261016-000001"
type NextOrderNumberCommandHandler struct {
	uowFactory SequenceUoWFactory
	clock      kernel.Clock
	metrics    *metrics.OrderMetrics
	log        zerolog.Logger
}

func NewNextOrderNumberCommandHandler(
	uowFactory SequenceUoWFactory,
	clock kernel.Clock,
	m *metrics.OrderMetrics,
	log zerolog.Logger,
) NextOrderNumberCommandHandler {
	return NextOrderNumberCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		metrics:    m,
		log:        log,
	}
}

// Handle reads the counter, advances it and writes it back in one unit of work.
// A lost compare-and-swap replays the unit of work.
func (h NextOrderNumberCommandHandler) Handle(ctx context.Context, cmd NextOrderNumberCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	var number string
	err := retryOnConflict(ctx, func() error {
		return unitOfWork(ctx, h.uowFactory.Create(), func(uow SequenceUoW) error {
			var err error
			number, err = issueOrderNumber(ctx, uow.SequenceCounterRepository(), cmd.Prefix(), kernel.Today(h.clock))
			return err
		})
	})
	if err != nil {
		return "", err
	}

	h.metrics.IncNumberIssued(cmd.Prefix())
	h.log.Debug().Str("prefix", cmd.Prefix()).Str("number", number).Msg("order number issued")
	return number, nil
}
