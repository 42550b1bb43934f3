package sequence_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/sequence"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNormalizePrefix(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "ORD", want: "ORD"},
		{in: " ord ", want: "ORD"},
		{in: "DRAFT2", want: "DRAFT2"},
		{in: "", wantErr: errs.ErrValueIsRequired},
		{in: "OR-D", wantErr: errs.ErrValueIsInvalid},
		{in: "ABCDEFGHIJK", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := sequence.NormalizePrefix(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCounter_NextWithinDayIsStrictlyIncreasing(t *testing.T) {
	c, err := sequence.NewCounter("ORD")
	require.NoError(t, err)
	assert.True(t, c.IsNew())
	today := day(t, "2026-10-16")

	var previous string
	for i := 1; i <= 20; i++ {
		number, nextErr := c.Next(today)
		require.NoError(t, nextErr)
		assert.Greater(t, number, previous)
		previous = number
	}

	assert.Equal(t, "ORD-20261016-000020", previous)
	assert.Equal(t, 20, c.LastNumber())
	assert.Equal(t, today, c.LastDate())
}

func TestCounter_ResetsOnNewDay(t *testing.T) {
	c, err := sequence.RestoreCounter("ORD", day(t, "2026-10-16"), 41, 3)
	require.NoError(t, err)

	number, err := c.Next(day(t, "2026-10-16"))
	require.NoError(t, err)
	assert.Equal(t, "ORD-20261016-000042", number)

	number, err = c.Next(day(t, "2026-10-17"))
	require.NoError(t, err)
	assert.Equal(t, "ORD-20261017-000001", number)
	assert.Equal(t, 3, c.Version())
}

func TestCounter_RejectsClockGoingBackwards(t *testing.T) {
	c, err := sequence.RestoreCounter("ORD", day(t, "2026-10-16"), 1, 1)
	require.NoError(t, err)

	_, err = c.Next(day(t, "2026-10-15"))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, 1, c.LastNumber())
}

func TestRestoreCounter_Validation(t *testing.T) {
	_, err := sequence.RestoreCounter("ORD", day(t, "2026-10-16"), 0, 1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = sequence.RestoreCounter("ORD", kernel.Date{}, 1, 1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestFormatOrderNumber(t *testing.T) {
	d := kernel.DateOf(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "ORD-20260102-000007", sequence.FormatOrderNumber("ORD", d, 7))
	assert.Equal(t, "ORD-20260102-1234567", sequence.FormatOrderNumber("ORD", d, 1234567))
}
