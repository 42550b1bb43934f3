package commands

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/metrics"

	"github.com/rs/zerolog"
)

// CreateOrderCommandHandler records a new order. The client and every product
// must exist; the order number is issued in the same unit of work, so a failed
// creation does not consume a number.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	prefix     string
	clock      kernel.Clock
	metrics    *metrics.OrderMetrics
	log        zerolog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	prefix string,
	clock kernel.Clock,
	m *metrics.OrderMetrics,
	log zerolog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		prefix:     prefix,
		clock:      clock,
		metrics:    m,
		log:        log,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *order.Order
	err := retryOnConflict(ctx, func() error {
		return unitOfWork(ctx, h.uowFactory.Create(), func(uow UoW) error {
			c, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
			if err != nil {
				return err
			}

			lines := make([]order.Line, 0, len(cmd.Lines()))
			for _, in := range cmd.Lines() {
				p, productErr := uow.ProductRepository().Get(ctx, in.ProductID)
				if productErr != nil {
					return productErr
				}
				l, lineErr := order.NewLine(p.ID(), p.Name(), in.Quantity, p.Price())
				if lineErr != nil {
					return lineErr
				}
				lines = append(lines, l)
			}

			now := h.clock.Now()
			number, err := issueOrderNumber(ctx, uow.SequenceCounterRepository(), h.prefix, kernel.DateOf(now))
			if err != nil {
				return fmt.Errorf("issue order number: %w", err)
			}

			address := cmd.DeliveryAddress()
			if address == "" {
				address = c.Address()
			}

			o, err := order.NewOrder(cmd.OrderID(), number, c.ID(), address, lines, cmd.Status(), now)
			if err != nil {
				return err
			}
			if err = uow.OrderRepository().Add(ctx, o); err != nil {
				return err
			}
			created = o
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	h.metrics.IncNumberIssued(h.prefix)
	h.metrics.IncOrderCreated(created.Status().String())
	h.log.Info().
		Str("order_id", created.ID().String()).
		Str("number", created.Number()).
		Str("status", created.Status().String()).
		Msg("order created")
	return created, nil
}
