package order_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Confirmed, order.Paid, order.Delivered, order.Cancelled} {
		parsed, err := order.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	parsed, err := order.ParseStatus(" PAID ")
	require.NoError(t, err)
	assert.Equal(t, order.Paid, parsed)

	_, err = order.ParseStatus("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_TransitionTable(t *testing.T) {
	all := []order.Status{order.Pending, order.Confirmed, order.Paid, order.Delivered, order.Cancelled}
	allowed := map[order.Status][]order.Status{
		order.Pending:   {order.Confirmed, order.Cancelled},
		order.Confirmed: {order.Paid, order.Cancelled},
		order.Paid:      {order.Delivered},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}

			t.Run(from.String()+"_to_"+to.String(), func(t *testing.T) {
				got, err := from.TransitionTo(to)
				if want {
					require.NoError(t, err)
					assert.Equal(t, to, got)
					return
				}
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, order.Unknown, got)
			})
		}
	}
}

func TestStatus_Classification(t *testing.T) {
	assert.True(t, order.Pending.IsEntry())
	assert.True(t, order.Confirmed.IsEntry())
	assert.False(t, order.Paid.IsEntry())

	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Paid.IsTerminal())
	assert.False(t, order.Unknown.IsTerminal())

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_TransitionToUnknownIsValidationError(t *testing.T) {
	_, err := order.Pending.TransitionTo(order.Unknown)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
