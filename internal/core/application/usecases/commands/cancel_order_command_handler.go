package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/metrics"

	"github.com/rs/zerolog"
)

// CancelOrderCommandHandler cancels an order. Only the order status is written;
// client and product statistics are untouched.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	metrics    *metrics.OrderMetrics
	log        zerolog.Logger
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	m *metrics.OrderMetrics,
	log zerolog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		metrics:    m,
		log:        log,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var cancelled *order.Order
	err := unitOfWork(ctx, h.uowFactory.Create(), func(uow OrderUoW) error {
		o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		if err = o.Cancel(h.clock.Now()); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}
		cancelled = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.metrics.IncTransition(order.Cancelled.String())
	h.log.Info().Str("order_id", cancelled.ID().String()).Msg("order cancelled")
	return cancelled, nil
}
