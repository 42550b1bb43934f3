package sequence

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// NumberWidth is the zero-padding width of the running number in every order number.
const NumberWidth = 6

var (
	ErrCounterIsNotConstructed = errors.New("Counter must be created via NewCounter or RestoreCounter constructor")

	prefixPattern = regexp.MustCompile(`^[A-Z0-9]{1,10}$`)
)

// Counter is the persisted state of one prefix: the last day a number was
// issued and the last number issued on that day. Version is the optimistic
// concurrency token maintained by the store; a new counter has version 0.
type Counter struct {
	prefix     string
	lastDate   kernel.Date
	lastNumber int
	version    int

	isConstructed bool
}

// NewCounter returns a counter that has never issued a number.
func NewCounter(prefix string) (*Counter, error) {
	normalized, err := NormalizePrefix(prefix)
	if err != nil {
		return nil, err
	}
	return &Counter{prefix: normalized, isConstructed: true}, nil
}

// RestoreCounter rebuilds a counter from storage.
func RestoreCounter(prefix string, lastDate kernel.Date, lastNumber, version int) (*Counter, error) {
	c, err := NewCounter(prefix)
	if err != nil {
		return nil, err
	}
	if lastNumber < 1 {
		return nil, errs.NewValueIsOutOfRangeError("lastNumber", lastNumber, 1, "unbounded")
	}
	if lastDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("lastDate")
	}
	c.lastDate = lastDate
	c.lastNumber = lastNumber
	c.version = version
	return c, nil
}

// NormalizePrefix trims and upper-cases prefix and checks it is 1 to 10 letters or digits.
func NormalizePrefix(prefix string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(prefix))
	if normalized == "" {
		return "", errs.NewValueIsRequiredError("prefix")
	}
	if !prefixPattern.MatchString(normalized) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"prefix",
			fmt.Errorf("%q must be 1 to 10 letters or digits", prefix),
		)
	}
	return normalized, nil
}

func (c *Counter) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCounterIsNotConstructed
	}
	return nil
}

func (c *Counter) Prefix() string {
	return c.prefix
}

func (c *Counter) LastDate() kernel.Date {
	return c.lastDate
}

func (c *Counter) LastNumber() int {
	return c.lastNumber
}

func (c *Counter) Version() int {
	return c.version
}

// IsNew reports whether the counter has never been persisted.
func (c *Counter) IsNew() bool {
	return c.version == 0
}

// Next advances the counter for today and returns the formatted order number.
// The counter resets to 1 when today differs from the last issuing day.
func (c *Counter) Next(today kernel.Date) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	if today.IsZero() {
		return "", errs.NewValueIsRequiredError("today")
	}
	if !c.lastDate.IsZero() && today.Before(c.lastDate) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"today",
			fmt.Errorf("%s is before last issuing day %s", today, c.lastDate),
		)
	}

	if c.lastDate == today {
		c.lastNumber++
	} else {
		c.lastDate = today
		c.lastNumber = 1
	}

	return FormatOrderNumber(c.prefix, today, c.lastNumber), nil
}

// FormatOrderNumber renders PREFIX-YYYYMMDD-NNNNNN.
func FormatOrderNumber(prefix string, day kernel.Date, number int) string {
	return fmt.Sprintf("%s-%s-%0*d", prefix, day.Compact(), NumberWidth, number)
}
