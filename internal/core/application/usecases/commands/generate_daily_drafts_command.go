package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/guard"
)

var ErrGenerateDailyDraftsCommandIsNotConstructed = errors.New(
	"GenerateDailyDraftsCommand must be created via NewGenerateDailyDraftsCommand or " +
		"NewGenerateDailyDraftsFromStoreCommand constructor",
)

// GenerateDailyDraftsCommand asks for today's draft batch. The catalogs are
// either given explicitly or loaded from the store inside the unit of work.
type GenerateDailyDraftsCommand struct {
	clients   []*client.Client
	products  []*product.Product
	fromStore bool

	guard guard.ConstructorGuard
}

// NewGenerateDailyDraftsCommand uses the given catalogs, in the given order.
func NewGenerateDailyDraftsCommand(clients []*client.Client, products []*product.Product) (GenerateDailyDraftsCommand, error) {
	for _, c := range clients {
		if err := c.Validate(); err != nil {
			return GenerateDailyDraftsCommand{}, err
		}
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return GenerateDailyDraftsCommand{}, err
		}
	}
	return GenerateDailyDraftsCommand{
		clients:  append([]*client.Client(nil), clients...),
		products: append([]*product.Product(nil), products...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewGenerateDailyDraftsFromStoreCommand uses every stored client and product.
func NewGenerateDailyDraftsFromStoreCommand() GenerateDailyDraftsCommand {
	return GenerateDailyDraftsCommand{fromStore: true, guard: guard.NewConstructorGuard()}
}

func (c GenerateDailyDraftsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateDailyDraftsCommandIsNotConstructed)
}

func (c GenerateDailyDraftsCommand) Clients() []*client.Client {
	return c.clients
}

func (c GenerateDailyDraftsCommand) Products() []*product.Product {
	return c.products
}

// FromStore reports whether the catalogs are read from the store.
func (c GenerateDailyDraftsCommand) FromStore() bool {
	return c.fromStore
}
