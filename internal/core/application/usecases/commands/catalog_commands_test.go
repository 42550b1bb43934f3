package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveClientCommandHandler(t *testing.T) {
	t.Run("update keeps statistics", func(t *testing.T) {
		e := newEnv(t)
		c := e.addClient(t, "Ann", "1 Main St")
		p := e.addProduct(t, "Milk", "12.50")
		o := e.addOrder(t, c, "", line(p, 2))
		_, err := e.setStatus(t, o.ID(), "paid", nil, ptr("25.00"))
		require.NoError(t, err)

		cmd, err := commands.NewSaveClientCommand(c.ID(), "Ann Lee", "3 High St", "555-0101")
		require.NoError(t, err)
		updated, err := e.saveClient().Handle(t.Context(), cmd)
		require.NoError(t, err)

		got := e.getClient(t, c.ID())
		assert.Equal(t, "Ann Lee", got.Name())
		assert.Equal(t, "3 High St", got.Address())
		assert.Equal(t, "555-0101", got.Phone())
		assert.Equal(t, 1, got.TotalOrders())
		assert.Equal(t, "25.00", got.TotalSpent().String())
		assert.Equal(t, updated.Name(), got.Name())
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := commands.NewSaveClientCommand(kernel.NewUUID(), "  ", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("delete unknown client", func(t *testing.T) {
		e := newEnv(t)
		cmd, err := commands.NewDeleteClientCommand(kernel.NewUUID())
		require.NoError(t, err)

		require.ErrorIs(t, e.deleteClient().Handle(t.Context(), cmd), errs.ErrObjectNotFound)
	})
}

func TestSaveProductCommandHandler(t *testing.T) {
	t.Run("update keeps the order count", func(t *testing.T) {
		e := newEnv(t)
		c := e.addClient(t, "Ann", "1 Main St")
		p := e.addProduct(t, "Milk", "12.50")
		o := e.addOrder(t, c, "", line(p, 3))
		_, err := e.setStatus(t, o.ID(), "paid", nil, nil)
		require.NoError(t, err)

		cmd, err := commands.NewSaveProductCommand(p.ID(), "Milk 1l", ptr("13.00"))
		require.NoError(t, err)
		_, err = e.saveProduct().Handle(t.Context(), cmd)
		require.NoError(t, err)

		got := e.getProduct(t, p.ID())
		assert.Equal(t, "Milk 1l", got.Name())
		assert.Equal(t, "13.00", got.Price().String())
		assert.Equal(t, 3, got.OrderCount())
	})

	t.Run("absent price is zero", func(t *testing.T) {
		cmd, err := commands.NewSaveProductCommand(kernel.NewUUID(), "Sample", nil)
		require.NoError(t, err)
		assert.True(t, cmd.Price().IsZero())

		cmd, err = commands.NewSaveProductCommand(kernel.NewUUID(), "Sample", ptr(" "))
		require.NoError(t, err)
		assert.True(t, cmd.Price().IsZero())
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := commands.NewSaveProductCommand(kernel.NewUUID(), "Milk", ptr("-0.01"))
		require.True(t, errs.IsValidation(err))
	})

	t.Run("delete", func(t *testing.T) {
		e := newEnv(t)
		p := e.addProduct(t, "Milk", "12.50")
		cmd, err := commands.NewDeleteProductCommand(p.ID())
		require.NoError(t, err)

		require.NoError(t, e.deleteProduct().Handle(t.Context(), cmd))
		_, err = e.factory.Create().ProductRepository().Get(t.Context(), p.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
