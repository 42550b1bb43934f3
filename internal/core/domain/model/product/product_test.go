package product_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func price(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewProduct(t *testing.T) {
	t.Run("should trim name and keep price", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "  Bread ", price(t, "1.20"), now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Bread", p.Name())
		assert.Equal(t, "1.20", p.Price().String())
		assert.Zero(t, p.OrderCount())
	})

	t.Run("should accept zero price", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Sample", kernel.ZeroMoney(), now)

		require.NoError(t, err)
		assert.True(t, p.Price().IsZero())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), " \t", kernel.ZeroMoney(), now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Milk", kernel.Money{}, now)

		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestProduct_RecordSale(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Bread", price(t, "1"), now)
	require.NoError(t, err)

	require.NoError(t, p.RecordSale(2, now.Add(time.Hour)))
	require.NoError(t, p.RecordSale(3, now.Add(time.Hour)))
	assert.Equal(t, 5, p.OrderCount())

	err = p.RecordSale(0, now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, 5, p.OrderCount())
}

func TestProduct_UpdateDetails(t *testing.T) {
	p, err := product.RestoreProduct(kernel.NewUUID(), "Bread", price(t, "1"), 7, now, now)
	require.NoError(t, err)

	t.Run("should keep order count", func(t *testing.T) {
		require.NoError(t, p.UpdateDetails(" Rye bread ", price(t, "2.5"), now.Add(time.Minute)))

		assert.Equal(t, "Rye bread", p.Name())
		assert.Equal(t, "2.50", p.Price().String())
		assert.Equal(t, 7, p.OrderCount())
	})

	t.Run("should leave product untouched on invalid input", func(t *testing.T) {
		err := p.UpdateDetails("", price(t, "9"), now)

		require.Error(t, err)
		assert.Equal(t, "Rye bread", p.Name())
		assert.Equal(t, "2.50", p.Price().String())
	})
}
