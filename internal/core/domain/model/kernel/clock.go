package kernel

import (
	"fmt"
	"sync"
	"time"

	"orderdesk/internal/pkg/errs"
)

const (
	dateLayout        = "2006-01-02"
	compactDateLayout = "20060102"
)

// Clock is the time source of the domain. Production code uses SystemClock;
// tests drive a ManualClock to simulate day changes.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	location *time.Location
}

// NewSystemClock returns a clock reporting time in location (time.Local when nil).
func NewSystemClock(location *time.Location) SystemClock {
	if location == nil {
		location = time.Local
	}
	return SystemClock{location: location}
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.location)
}

// ManualClock is a settable clock, safe for concurrent use.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Date is a calendar day, independent of time of day and time zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the current calendar day of c.
func Today(c Clock) Date {
	return DateOf(c.Now())
}

// ParseDate reads the ISO form "YYYY-MM-DD" used in storage.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q: %w", s, err))
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Before(other Date) bool {
	return d.time().Before(other.time())
}

// String renders the ISO form "YYYY-MM-DD".
func (d Date) String() string {
	return d.time().Format(dateLayout)
}

// Compact renders "YYYYMMDD", the form embedded in order numbers.
func (d Date) Compact() string {
	return d.time().Format(compactDateLayout)
}

func (d Date) time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}
