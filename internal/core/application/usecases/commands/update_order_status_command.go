package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order to a new status. Payment method and
// amount are optional and only used by the paid and delivered transitions.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	status        order.Status
	paymentMethod *string
	amountPaid    *kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand parses status and amountPaid. A blank payment
// method counts as absent; a negative amount is rejected.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	status string,
	paymentMethod *string,
	amountPaid *string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setAmountPaid(amountPaid),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	if paymentMethod != nil {
		if m := strings.TrimSpace(*paymentMethod); m != "" {
			cmd.paymentMethod = &m
		}
	}

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c UpdateOrderStatusCommand) PaymentMethod() *string {
	return c.paymentMethod
}

func (c UpdateOrderStatusCommand) AmountPaid() *kernel.Money {
	return c.amountPaid
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status string) error {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}

func (c *UpdateOrderStatusCommand) setAmountPaid(amountPaid *string) error {
	if amountPaid == nil || strings.TrimSpace(*amountPaid) == "" {
		return nil
	}
	amount, err := kernel.MoneyFromString(strings.TrimSpace(*amountPaid))
	if err != nil {
		return err
	}
	c.amountPaid = &amount
	return nil
}
