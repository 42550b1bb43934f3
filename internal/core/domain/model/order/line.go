package order

import (
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product of an order with the name and unit price it had when ordered.
type Line struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	quantity  int
	price     kernel.Money

	guard guard.ConstructorGuard
}

func NewLine(productID kernel.UUID, name string, quantity int, price kernel.Money) (Line, error) {
	l := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setProductID(productID),
		l.setName(name),
		l.setQuantity(quantity),
		l.setPrice(price),
	); err != nil {
		return Line{}, err
	}

	return l, nil
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l Line) ProductID() kernel.UUID {
	return l.productID
}

func (l Line) Name() string {
	return l.name
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) Price() kernel.Money {
	return l.price
}

// Total is price times quantity.
func (l Line) Total() (kernel.Money, error) {
	return l.price.Mul(l.quantity)
}

func (l *Line) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.productID = id
	return nil
}

func (l *Line) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("line name")
	}
	l.name = name
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.price = price
	return nil
}
