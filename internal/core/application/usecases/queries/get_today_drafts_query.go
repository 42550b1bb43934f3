package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrGetDraftsQueryIsNotConstructed = errors.New(
	"GetDraftsQuery must be created via NewGetDraftsQuery constructor",
)

// GetDraftsQuery lists the draft orders generated on one day, without
// generating anything.
type GetDraftsQuery struct {
	day kernel.Date

	guard guard.ConstructorGuard
}

func NewGetDraftsQuery(day kernel.Date) (GetDraftsQuery, error) {
	if day.IsZero() {
		return GetDraftsQuery{}, errs.NewValueIsRequiredError("day")
	}
	return GetDraftsQuery{day: day, guard: guard.NewConstructorGuard()}, nil
}

// NewGetTodayDraftsQuery is NewGetDraftsQuery for the current day of clock.
func NewGetTodayDraftsQuery(clock kernel.Clock) (GetDraftsQuery, error) {
	return NewGetDraftsQuery(kernel.Today(clock))
}

func (q GetDraftsQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftsQueryIsNotConstructed)
}

func (q GetDraftsQuery) Day() kernel.Date {
	return q.day
}

// DraftView is a draft order together with the current status of its paired
// order. OrderStatus is order.Unknown when the paired order no longer exists.
type DraftView struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	OrderNumber     string
	OrderStatus     order.Status
	ClientID        kernel.UUID
	ProductID       kernel.UUID
	ProductName     string
	Quantity        int
	Price           kernel.Money
	DeliveryAddress string
	GeneratedOn     kernel.Date
}
