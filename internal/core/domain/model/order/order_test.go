package order_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func line(t *testing.T, quantity int, price string) order.Line {
	t.Helper()
	l, err := order.NewLine(kernel.NewUUID(), "Bread", quantity, money(t, price))
	require.NoError(t, err)
	return l
}

func newOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-20261016-000001", kernel.NewUUID(), "12 Rua Nova",
		[]order.Line{line(t, 2, "1.50")}, status, now)
	require.NoError(t, err)
	return o
}

func ptr[T any](v T) *T {
	return &v
}

func TestNewLine(t *testing.T) {
	t.Run("should reject non positive quantity", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "Bread", 0, money(t, "1"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should compute total", func(t *testing.T) {
		total, err := line(t, 3, "1.10").Total()

		require.NoError(t, err)
		assert.Equal(t, "3.30", total.String())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order", func(t *testing.T) {
		o := newOrder(t, order.Pending)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "ORD-20261016-000001", o.Number())
		assert.Nil(t, o.PaymentMethod())
		assert.Nil(t, o.AmountPaid())
		assert.True(t, o.AmountPaidOrZero().IsZero())
		total, err := o.Total()
		require.NoError(t, err)
		assert.Equal(t, "3.00", total.String())
	})

	t.Run("should reject non entry status", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "N-1", kernel.NewUUID(), "",
			[]order.Line{line(t, 1, "1")}, order.Paid, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require lines number and client", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), " ", kernel.UUID{}, "", nil, order.Pending, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order number")
		assert.Contains(t, err.Error(), "client id")
		assert.Contains(t, err.Error(), "lines")
	})

	t.Run("should reject unconstructed line", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "N-1", kernel.NewUUID(), "",
			[]order.Line{{}}, order.Pending, now)

		require.ErrorIs(t, err, order.ErrLineIsNotConstructed)
	})
}

func TestOrder_HappyPath(t *testing.T) {
	o := newOrder(t, order.Pending)
	later := now.Add(time.Hour)

	require.NoError(t, o.Confirm(later))
	require.NoError(t, o.MarkPaid(ptr("cash"), ptr(money(t, "25.00")), later))
	require.NoError(t, o.MarkDelivered(nil, nil, later))

	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, "cash", *o.PaymentMethod())
	assert.Equal(t, "25.00", o.AmountPaid().String())
	assert.Equal(t, later, o.UpdatedAt())
	assert.Len(t, o.Lines(), 1)
}

func TestOrder_MarkPaidFirstWriteWins(t *testing.T) {
	o, err := order.RestoreOrder(kernel.NewUUID(), "N-1", kernel.NewUUID(), "",
		[]order.Line{line(t, 1, "1")}, order.Confirmed, ptr("card"), nil, now, now)
	require.NoError(t, err)

	require.NoError(t, o.MarkPaid(ptr("cash"), ptr(money(t, "4")), now))

	assert.Equal(t, "card", *o.PaymentMethod())
	assert.Equal(t, "4.00", o.AmountPaid().String())
}

func TestOrder_MarkDeliveredOverwritesPayment(t *testing.T) {
	o, err := order.RestoreOrder(kernel.NewUUID(), "N-1", kernel.NewUUID(), "",
		[]order.Line{line(t, 1, "1")}, order.Paid, ptr("card"), ptr(money(t, "1")), now, now)
	require.NoError(t, err)

	require.NoError(t, o.MarkDelivered(ptr("cash"), ptr(money(t, "2")), now))

	assert.Equal(t, "cash", *o.PaymentMethod())
	assert.Equal(t, "2.00", o.AmountPaid().String())
}

func TestOrder_InvalidTransitionsLeaveStateUnchanged(t *testing.T) {
	t.Run("pending to delivered", func(t *testing.T) {
		o := newOrder(t, order.Pending)

		err := o.MarkDelivered(ptr("cash"), ptr(money(t, "1")), now.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.PaymentMethod())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("paid twice", func(t *testing.T) {
		o := newOrder(t, order.Confirmed)
		require.NoError(t, o.MarkPaid(nil, nil, now))

		require.ErrorIs(t, o.MarkPaid(ptr("cash"), nil, now), errs.ErrInvalidTransition)
		assert.Nil(t, o.PaymentMethod())
	})

	t.Run("cancel after paid", func(t *testing.T) {
		o := newOrder(t, order.Confirmed)
		require.NoError(t, o.MarkPaid(nil, nil, now))

		require.ErrorIs(t, o.Cancel(now), errs.ErrInvalidTransition)
		assert.Equal(t, order.Paid, o.Status())
	})
}

func TestOrder_TransitionToDispatches(t *testing.T) {
	o := newOrder(t, order.Pending)

	require.NoError(t, o.TransitionTo(order.Cancelled, nil, nil, now))
	assert.Equal(t, order.Cancelled, o.Status())

	require.ErrorIs(t, o.TransitionTo(order.Pending, nil, nil, now), errs.ErrInvalidTransition)
}

func TestOrder_LinesAreCopied(t *testing.T) {
	o := newOrder(t, order.Pending)

	lines := o.Lines()
	lines[0] = order.Line{}

	require.NoError(t, o.Lines()[0].Validate())
}
