package draft

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

var ErrDraftOrderIsNotConstructed = errors.New("DraftOrder must be created via NewDraftOrder or RestoreDraftOrder constructor")

// DraftOrder records one automatically generated pending order.
type DraftOrder struct {
	id              kernel.UUID
	orderID         kernel.UUID
	orderNumber     string
	clientID        kernel.UUID
	productID       kernel.UUID
	productName     string
	quantity        int
	price           kernel.Money
	deliveryAddress string
	generatedOn     kernel.Date
	createdAt       time.Time

	isConstructed bool
}

// NewDraftOrder indexes a freshly generated pending order with a single line.
func NewDraftOrder(id kernel.UUID, o *order.Order, generatedOn kernel.Date, now time.Time) (*DraftOrder, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Pending {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order", fmt.Errorf("draft order must be pending, got %s", o.Status()))
	}
	lines := o.Lines()
	if len(lines) != 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order", fmt.Errorf("draft order must have exactly one line, got %d", len(lines)))
	}
	l := lines[0]

	return RestoreDraftOrder(id, o.ID(), o.Number(), o.ClientID(), l.ProductID(), l.Name(), l.Quantity(),
		l.Price(), o.DeliveryAddress(), generatedOn, now)
}

// RestoreDraftOrder rebuilds a draft from storage.
func RestoreDraftOrder(
	id, orderID kernel.UUID,
	orderNumber string,
	clientID, productID kernel.UUID,
	productName string,
	quantity int,
	price kernel.Money,
	deliveryAddress string,
	generatedOn kernel.Date,
	createdAt time.Time,
) (*DraftOrder, error) {
	var dateErr error
	if generatedOn.IsZero() {
		dateErr = errs.NewValueIsRequiredError("generatedOn")
	}
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		clientID.Validate(),
		productID.Validate(),
		price.Validate(),
		dateErr,
		quantityErr,
	); err != nil {
		return nil, err
	}

	return &DraftOrder{
		id:              id,
		orderID:         orderID,
		orderNumber:     orderNumber,
		clientID:        clientID,
		productID:       productID,
		productName:     productName,
		quantity:        quantity,
		price:           price,
		deliveryAddress: deliveryAddress,
		generatedOn:     generatedOn,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

func (d *DraftOrder) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDraftOrderIsNotConstructed
	}
	return nil
}

func (d *DraftOrder) ID() kernel.UUID {
	return d.id
}

func (d *DraftOrder) OrderID() kernel.UUID {
	return d.orderID
}

func (d *DraftOrder) OrderNumber() string {
	return d.orderNumber
}

func (d *DraftOrder) ClientID() kernel.UUID {
	return d.clientID
}

func (d *DraftOrder) ProductID() kernel.UUID {
	return d.productID
}

func (d *DraftOrder) ProductName() string {
	return d.productName
}

func (d *DraftOrder) Quantity() int {
	return d.quantity
}

func (d *DraftOrder) Price() kernel.Money {
	return d.price
}

func (d *DraftOrder) DeliveryAddress() string {
	return d.deliveryAddress
}

func (d *DraftOrder) GeneratedOn() kernel.Date {
	return d.generatedOn
}

func (d *DraftOrder) CreatedAt() time.Time {
	return d.createdAt
}

// IsCurrentBatch reports whether drafts is a non-empty batch generated entirely on today.
func IsCurrentBatch(drafts []*DraftOrder, today kernel.Date) bool {
	if len(drafts) == 0 {
		return false
	}
	for _, d := range drafts {
		if d.generatedOn != today {
			return false
		}
	}
	return true
}
