package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/sequence"
	"orderdesk/internal/pkg/guard"
)

var ErrNextOrderNumberCommandIsNotConstructed = errors.New(
	"NextOrderNumberCommand must be created via NewNextOrderNumberCommand constructor",
)

// NextOrderNumberCommand asks for the next order number of a prefix.
type NextOrderNumberCommand struct {
	prefix string

	guard guard.ConstructorGuard
}

// NewNextOrderNumberCommand trims and upper-cases prefix; it must then be 1 to 10
// letters or digits.
func NewNextOrderNumberCommand(prefix string) (NextOrderNumberCommand, error) {
	normalized, err := sequence.NormalizePrefix(prefix)
	if err != nil {
		return NextOrderNumberCommand{}, err
	}
	return NextOrderNumberCommand{prefix: normalized, guard: guard.NewConstructorGuard()}, nil
}

func (c NextOrderNumberCommand) Validate() error {
	return c.guard.Validate(ErrNextOrderNumberCommandIsNotConstructed)
}

func (c NextOrderNumberCommand) Prefix() string {
	return c.prefix
}
