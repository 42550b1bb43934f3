package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrSaveProductCommandIsNotConstructed = errors.New(
	"SaveProductCommand must be created via NewSaveProductCommand constructor",
)

// SaveProductCommand creates a product or changes its name and price.
type SaveProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewSaveProductCommand trims name, which must not be blank. A nil or blank
// price means zero; a negative one is rejected.
func NewSaveProductCommand(productID kernel.UUID, name string, price *string) (SaveProductCommand, error) {
	cmd := SaveProductCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return SaveProductCommand{}, err
	}
	return cmd, nil
}

func (c SaveProductCommand) Validate() error {
	return c.guard.Validate(ErrSaveProductCommandIsNotConstructed)
}

func (c SaveProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c SaveProductCommand) Name() string {
	return c.name
}

func (c SaveProductCommand) Price() kernel.Money {
	return c.price
}

func (c *SaveProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *SaveProductCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *SaveProductCommand) setPrice(price *string) error {
	if price == nil || strings.TrimSpace(*price) == "" {
		c.price = kernel.ZeroMoney()
		return nil
	}
	m, err := kernel.MoneyFromString(strings.TrimSpace(*price))
	if err != nil {
		return err
	}
	c.price = m
	return nil
}
