package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is a catalog item that can be ordered.
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Money

	orderCount int

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewProduct adds a product to the catalog with a zero order count.
func NewProduct(id kernel.UUID, name string, price kernel.Money, now time.Time) (*Product, error) {
	p := &Product{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product from storage.
func RestoreProduct(
	id kernel.UUID,
	name string,
	price kernel.Money,
	orderCount int,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, name, price, createdAt)
	if err != nil {
		return nil, err
	}
	if orderCount < 0 {
		return nil, errs.NewValueIsOutOfRangeError("orderCount", orderCount, 0, "unbounded")
	}
	p.orderCount = orderCount
	p.updatedAt = updatedAt
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) OrderCount() int {
	return p.orderCount
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// UpdateDetails renames or reprices the product. The order count is kept.
// Existing order lines keep the price they were created with.
func (p *Product) UpdateDetails(name string, price kernel.Money, now time.Time) error {
	updated := *p
	if err := errors.Join(updated.setName(name), updated.setPrice(price)); err != nil {
		return err
	}
	updated.updatedAt = now
	*p = updated
	return nil
}

// RecordSale adds quantity units of a paid order to the order count.
func (p *Product) RecordSale(quantity int, now time.Time) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	p.orderCount += quantity
	p.updatedAt = now
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
