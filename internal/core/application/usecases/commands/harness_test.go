package commands_test

import (
	"testing"
	"time"

	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW { return f() }

type funcOrderUoWFactory func() commands.OrderUoW

func (f funcOrderUoWFactory) Create() commands.OrderUoW { return f() }

type funcSequenceUoWFactory func() commands.SequenceUoW

func (f funcSequenceUoWFactory) Create() commands.SequenceUoW { return f() }

type funcClientUoWFactory func() commands.ClientUoW

func (f funcClientUoWFactory) Create() commands.ClientUoW { return f() }

type funcProductUoWFactory func() commands.ProductUoW

func (f funcProductUoWFactory) Create() commands.ProductUoW { return f() }

// env wires every command handler to an in-memory SQLite store and a manual clock.
type env struct {
	factory *gormdb.GormUnitOfWorkFactory
	clock   *kernel.ManualClock
	metrics *metrics.OrderMetrics
	log     zerolog.Logger
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := gormdb.Open(gormdb.Options{Driver: gormdb.DriverSQLite, DSN: gormdb.InMemoryDSN(), Logger: zerolog.Nop()})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	return &env{
		factory: gormdb.NewGormUnitOfWorkFactory(db),
		clock:   kernel.NewManualClock(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)),
		metrics: metrics.NewOrderMetrics(prometheus.NewRegistry()),
		log:     zerolog.Nop(),
	}
}

func (e *env) uow() commands.UoWFactory {
	return funcUoWFactory(func() commands.UoW { return e.factory.Create() })
}

func (e *env) nextNumber() commands.NextOrderNumberCommandHandler {
	f := funcSequenceUoWFactory(func() commands.SequenceUoW { return e.factory.Create() })
	return commands.NewNextOrderNumberCommandHandler(f, e.clock, e.metrics, e.log)
}

func (e *env) createOrder() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(e.uow(), "ORD", e.clock, e.metrics, e.log)
}

func (e *env) updateStatus() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(e.uow(), e.clock, e.metrics, e.log)
}

func (e *env) cancel() commands.CancelOrderCommandHandler {
	f := funcOrderUoWFactory(func() commands.OrderUoW { return e.factory.Create() })
	return commands.NewCancelOrderCommandHandler(f, e.clock, e.metrics, e.log)
}

func (e *env) drafts() commands.GenerateDailyDraftsCommandHandler {
	return commands.NewGenerateDailyDraftsCommandHandler(e.uow(), "ORD", e.clock, e.metrics, e.log)
}

func (e *env) saveClient() commands.SaveClientCommandHandler {
	f := funcClientUoWFactory(func() commands.ClientUoW { return e.factory.Create() })
	return commands.NewSaveClientCommandHandler(f, e.clock, e.log)
}

func (e *env) deleteClient() commands.DeleteClientCommandHandler {
	f := funcClientUoWFactory(func() commands.ClientUoW { return e.factory.Create() })
	return commands.NewDeleteClientCommandHandler(f, e.log)
}

func (e *env) saveProduct() commands.SaveProductCommandHandler {
	f := funcProductUoWFactory(func() commands.ProductUoW { return e.factory.Create() })
	return commands.NewSaveProductCommandHandler(f, e.clock, e.log)
}

func (e *env) deleteProduct() commands.DeleteProductCommandHandler {
	f := funcProductUoWFactory(func() commands.ProductUoW { return e.factory.Create() })
	return commands.NewDeleteProductCommandHandler(f, e.log)
}

func (e *env) addClient(t *testing.T, name, address string) *client.Client {
	t.Helper()
	cmd, err := commands.NewSaveClientCommand(kernel.NewUUID(), name, address, "")
	require.NoError(t, err)
	c, err := e.saveClient().Handle(t.Context(), cmd)
	require.NoError(t, err)
	return c
}

func (e *env) addProduct(t *testing.T, name, price string) *product.Product {
	t.Helper()
	cmd, err := commands.NewSaveProductCommand(kernel.NewUUID(), name, &price)
	require.NoError(t, err)
	p, err := e.saveProduct().Handle(t.Context(), cmd)
	require.NoError(t, err)
	return p
}

func (e *env) addOrder(t *testing.T, c *client.Client, status string, lines ...commands.OrderLineInput) *order.Order {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), c.ID(), "", lines, status)
	require.NoError(t, err)
	o, err := e.createOrder().Handle(t.Context(), cmd)
	require.NoError(t, err)
	return o
}

func (e *env) getClient(t *testing.T, id kernel.UUID) *client.Client {
	t.Helper()
	c, err := e.factory.Create().ClientRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return c
}

func (e *env) getProduct(t *testing.T, id kernel.UUID) *product.Product {
	t.Helper()
	p, err := e.factory.Create().ProductRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return p
}

func (e *env) getOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := e.factory.Create().OrderRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return o
}

func (e *env) setStatus(t *testing.T, id kernel.UUID, status string, method, amount *string) (*order.Order, error) {
	t.Helper()
	cmd, err := commands.NewUpdateOrderStatusCommand(id, status, method, amount)
	require.NoError(t, err)
	return e.updateStatus().Handle(t.Context(), cmd)
}

func ptr(s string) *string {
	return &s
}

func line(p *product.Product, quantity int) commands.OrderLineInput {
	return commands.OrderLineInput{ProductID: p.ID(), Quantity: quantity}
}
