package services

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"
)

// ErrClientMismatch is returned when the client handed to Settle does not own the order.
var ErrClientMismatch = errors.New("client does not own the order")

// ProductSale is the quantity of one product sold by an order, summed over its lines.
type ProductSale struct {
	ProductID kernel.UUID
	Quantity  int
}

// PaymentSettler moves an order to paid and records the payment on the
// client and on every product of the order.
//
// Business rules:
//   - the client gains one order and the amount paid (absent counts as zero)
//   - every distinct product gains the summed quantity of its lines
//   - nothing is mutated unless the client and every product are present
//
// Example usage:
//
//	settler := NewPaymentSettler()
//	sales := settler.Sales(o)
//	// load o.ClientID() and every sales[i].ProductID
//	err := settler.Settle(o, method, amount, c, products, now)
type PaymentSettler struct{}

func NewPaymentSettler() PaymentSettler {
	return PaymentSettler{}
}

// Sales groups the order lines by product, in the order products first appear.
func (s PaymentSettler) Sales(o *order.Order) []ProductSale {
	var (
		sales []ProductSale
		index = make(map[kernel.UUID]int)
	)
	for _, l := range o.Lines() {
		if i, ok := index[l.ProductID()]; ok {
			sales[i].Quantity += l.Quantity()
			continue
		}
		index[l.ProductID()] = len(sales)
		sales = append(sales, ProductSale{ProductID: l.ProductID(), Quantity: l.Quantity()})
	}
	return sales
}

// Settle applies the paid transition. products must contain every product
// referenced by the order lines; extra products are ignored.
func (s PaymentSettler) Settle(
	o *order.Order,
	method *string,
	amount *kernel.Money,
	c *client.Client,
	products []*product.Product,
	now time.Time,
) error {
	if err := errors.Join(o.Validate(), c.Validate()); err != nil {
		return err
	}
	if !c.ID().IsEqual(o.ClientID()) {
		return ErrClientMismatch
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		byID[p.ID()] = p
	}

	sales := s.Sales(o)
	for _, sale := range sales {
		if _, ok := byID[sale.ProductID]; !ok {
			return errs.NewObjectNotFoundError("product", sale.ProductID)
		}
	}

	if err := o.MarkPaid(method, amount, now); err != nil {
		return err
	}
	if err := c.RecordPayment(o.AmountPaidOrZero(), now); err != nil {
		return err
	}
	for _, sale := range sales {
		if err := byID[sale.ProductID].RecordSale(sale.Quantity, now); err != nil {
			return err
		}
	}
	return nil
}
