package commands

import (
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineInput is one requested line: a product and how many units of it.
type OrderLineInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to record a new order for a client.
// Product names and prices are copied from the catalog when the order is created.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), clientID, "", []OrderLineInput{
//	    {ProductID: milkID, Quantity: 2},
//	}, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	clientID        kernel.UUID
	deliveryAddress string
	lines           []OrderLineInput
	status          order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. An empty delivery address is
// replaced by the client's address; an empty status means confirmed.
func NewCreateOrderCommand(
	orderID, clientID kernel.UUID,
	deliveryAddress string,
	lines []OrderLineInput,
	status string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryAddress: strings.TrimSpace(deliveryAddress),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setLines(lines),
		cmd.setStatus(status),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateOrderCommand) Lines() []OrderLineInput {
	lines := make([]OrderLineInput, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client id", err)
	}
	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for i, l := range lines {
		if err := l.ProductID.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, errs.NewValueIsRequiredErrorWithCause("product id", err))
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("line %d: %w", i, errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("%d is not greater than 0", l.Quantity)))
		}
	}
	c.lines = make([]OrderLineInput, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateOrderCommand) setStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		c.status = order.Confirmed
		return nil
	}
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	if !parsed.IsEntry() {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not an entry status", parsed))
	}
	c.status = parsed
	return nil
}
