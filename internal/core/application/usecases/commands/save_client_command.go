package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrSaveClientCommandIsNotConstructed = errors.New(
	"SaveClientCommand must be created via NewSaveClientCommand constructor",
)

// SaveClientCommand creates a client or updates its contact data.
type SaveClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string
	address  string
	phone    string

	guard guard.ConstructorGuard
}

// NewSaveClientCommand trims every field; name must not be blank.
func NewSaveClientCommand(clientID kernel.UUID, name, address, phone string) (SaveClientCommand, error) {
	cmd := SaveClientCommand{
		address: strings.TrimSpace(address),
		phone:   strings.TrimSpace(phone),
		guard:   guard.NewConstructorGuard(),
	}
	if err := errors.Join(cmd.setClientID(clientID), cmd.setName(name)); err != nil {
		return SaveClientCommand{}, err
	}
	return cmd, nil
}

func (c SaveClientCommand) Validate() error {
	return c.guard.Validate(ErrSaveClientCommandIsNotConstructed)
}

func (c SaveClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c SaveClientCommand) Name() string {
	return c.name
}

func (c SaveClientCommand) Address() string {
	return c.address
}

func (c SaveClientCommand) Phone() string {
	return c.phone
}

func (c *SaveClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *SaveClientCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
