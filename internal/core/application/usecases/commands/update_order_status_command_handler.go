package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/metrics"

	"github.com/rs/zerolog"
)

// UpdateOrderStatusCommandHandler drives an order through its lifecycle.
//
// Business rules:
//   - only forward edges of the state machine are allowed; anything else
//     fails with errs.ErrInvalidTransition and changes nothing
//   - paid records the payment on the client and on every product of the
//     order in the same unit of work; payment data already present is kept
//   - delivered overwrites payment data when it is supplied
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	settler    services.PaymentSettler
	clock      kernel.Clock
	metrics    *metrics.OrderMetrics
	log        zerolog.Logger
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	clock kernel.Clock,
	m *metrics.OrderMetrics,
	log zerolog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		settler:    services.NewPaymentSettler(),
		clock:      clock,
		metrics:    m,
		log:        log,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *order.Order
		from    order.Status
	)
	err := unitOfWork(ctx, h.uowFactory.Create(), func(uow UoW) error {
		o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		from = o.Status()
		now := h.clock.Now()

		if cmd.Status() == order.Paid {
			err = h.settle(ctx, uow, o, cmd, now)
		} else {
			err = o.TransitionTo(cmd.Status(), cmd.PaymentMethod(), cmd.AmountPaid(), now)
		}
		if err != nil {
			return err
		}

		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.metrics.IncTransition(updated.Status().String())
	h.log.Info().
		Str("order_id", updated.ID().String()).
		Str("from", from.String()).
		Str("to", updated.Status().String()).
		Msg("order status changed")
	return updated, nil
}

// settle applies the paid transition and writes the client and products it touched.
func (h UpdateOrderStatusCommandHandler) settle(
	ctx context.Context,
	uow UoW,
	o *order.Order,
	cmd UpdateOrderStatusCommand,
	now time.Time,
) error {
	if _, err := o.Status().TransitionTo(order.Paid); err != nil {
		return err
	}

	c, err := uow.ClientRepository().Get(ctx, o.ClientID())
	if err != nil {
		return err
	}

	sales := h.settler.Sales(o)
	products := make([]*product.Product, 0, len(sales))
	for _, sale := range sales {
		p, productErr := uow.ProductRepository().Get(ctx, sale.ProductID)
		if productErr != nil {
			return productErr
		}
		products = append(products, p)
	}

	if err = h.settler.Settle(o, cmd.PaymentMethod(), cmd.AmountPaid(), c, products, now); err != nil {
		return err
	}

	if err = uow.ClientRepository().Update(ctx, c); err != nil {
		return err
	}
	for _, p := range products {
		if err = uow.ProductRepository().Update(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
