// Package commands contains business operations that modify system state.
// Every command runs inside exactly one unit of work: Begin, a deferred
// Rollback and an explicit Commit. Handlers depend on the narrowest unit of
// work interface that covers the repositories they touch.
package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DraftOrderRepoFactory interface {
		DraftOrderRepository() ports.DraftOrderRepository
	}

	SequenceRepoFactory interface {
		SequenceCounterRepository() ports.SequenceCounterRepository
	}

	// SequenceUoW is used by the order number generator on its own.
	SequenceUoW interface {
		TxManager
		SequenceRepoFactory
	}

	SequenceUoWFactory interface {
		Create() SequenceUoW
	}

	// ClientUoW is used by client catalog maintenance.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// ProductUoW is used by product catalog maintenance.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderUoW is used by commands that only write the order itself.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans every collection. Used by order creation, the paid transition
	// and draft generation, which write several aggregates atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   clientRepo := uow.ClientRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ClientRepoFactory
		ProductRepoFactory
		OrderRepoFactory
		DraftOrderRepoFactory
		SequenceRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
