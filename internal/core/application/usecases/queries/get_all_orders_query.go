package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery lists orders newest first, optionally only those in one status.
//
// Example:
//
//	query, err := NewGetAllOrdersQuery("paid")
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetAllOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery parses status; an empty status lists every order.
func NewGetAllOrdersQuery(status string) (GetAllOrdersQuery, error) {
	q := GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return GetAllOrdersQuery{}, err
	}
	q.status = &parsed
	return q, nil
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

func (q GetAllOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderSummary is the list read model of an order. ClientName is empty when
// the client has been deleted since.
type OrderSummary struct {
	ID              kernel.UUID
	Number          string
	ClientID        kernel.UUID
	ClientName      string
	DeliveryAddress string
	Status          order.Status
	PaymentMethod   *string
	AmountPaid      *kernel.Money
	Items           int
	Total           kernel.Money
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
