package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root of the lifecycle engine.
type Order struct {
	id              kernel.UUID
	number          string
	clientID        kernel.UUID
	deliveryAddress string
	lines           []Line

	status        Status
	paymentMethod *string
	amountPaid    *kernel.Money

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in an entry state (pending or confirmed).
// The order number comes from the sequence generator.
func NewOrder(
	id kernel.UUID,
	number string,
	clientID kernel.UUID,
	deliveryAddress string,
	lines []Line,
	status Status,
	now time.Time,
) (*Order, error) {
	if !status.IsEntry() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not an entry status", status),
		)
	}

	o := &Order{
		deliveryAddress: strings.TrimSpace(deliveryAddress),
		status:          status,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setClientID(clientID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage in any state.
func RestoreOrder(
	id kernel.UUID,
	number string,
	clientID kernel.UUID,
	deliveryAddress string,
	lines []Line,
	status Status,
	paymentMethod *string,
	amountPaid *kernel.Money,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, number, clientID, deliveryAddress, lines, Pending, createdAt)
	if err != nil {
		return nil, err
	}
	if amountPaid != nil {
		if err = amountPaid.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.paymentMethod = paymentMethod
	o.amountPaid = amountPaid
	o.updatedAt = updatedAt
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Lines returns a copy of the order lines in their original order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentMethod() *string {
	return o.paymentMethod
}

func (o *Order) AmountPaid() *kernel.Money {
	return o.amountPaid
}

// AmountPaidOrZero treats a missing amount as zero.
func (o *Order) AmountPaidOrZero() kernel.Money {
	if o.amountPaid == nil {
		return kernel.ZeroMoney()
	}
	return *o.amountPaid
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Total sums every line total.
func (o *Order) Total() (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, l := range o.lines {
		lineTotal, err := l.Total()
		if err != nil {
			return kernel.Money{}, err
		}
		if total, err = total.Add(lineTotal); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

// Confirm moves a pending order to confirmed.
func (o *Order) Confirm(now time.Time) error {
	return o.moveTo(Confirmed, now)
}

// MarkPaid moves a confirmed order to paid. Payment method and amount are only
// recorded when the order has none yet.
func (o *Order) MarkPaid(method *string, amount *kernel.Money, now time.Time) error {
	if err := o.validatePayment(amount); err != nil {
		return err
	}
	if err := o.moveTo(Paid, now); err != nil {
		return err
	}
	if o.paymentMethod == nil {
		o.paymentMethod = normalizeMethod(method)
	}
	if o.amountPaid == nil && amount != nil {
		paid := *amount
		o.amountPaid = &paid
	}
	return nil
}

// MarkDelivered moves a paid order to delivered, overwriting payment data when supplied.
func (o *Order) MarkDelivered(method *string, amount *kernel.Money, now time.Time) error {
	if err := o.validatePayment(amount); err != nil {
		return err
	}
	if err := o.moveTo(Delivered, now); err != nil {
		return err
	}
	if m := normalizeMethod(method); m != nil {
		o.paymentMethod = m
	}
	if amount != nil {
		paid := *amount
		o.amountPaid = &paid
	}
	return nil
}

// Cancel moves a pending or confirmed order to cancelled.
func (o *Order) Cancel(now time.Time) error {
	return o.moveTo(Cancelled, now)
}

// TransitionTo dispatches to the transition method matching next.
func (o *Order) TransitionTo(next Status, method *string, amount *kernel.Money, now time.Time) error {
	switch next {
	case Confirmed:
		return o.Confirm(now)
	case Paid:
		return o.MarkPaid(method, amount, now)
	case Delivered:
		return o.MarkDelivered(method, amount, now)
	case Cancelled:
		return o.Cancel(now)
	default:
		return o.moveTo(next, now)
	}
}

func (o *Order) moveTo(next Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) validatePayment(amount *kernel.Money) error {
	if amount == nil {
		return nil
	}
	return amount.Validate()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client id", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for i, l := range lines {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func normalizeMethod(method *string) *string {
	if method == nil {
		return nil
	}
	m := strings.TrimSpace(*method)
	if m == "" {
		return nil
	}
	return &m
}
