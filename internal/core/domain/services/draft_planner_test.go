package services_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/draft"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftPlanner_Decide(t *testing.T) {
	planner := services.NewDraftPlanner()
	today := kernel.DateOf(now)
	yesterday := kernel.DateOf(now.Add(-24 * time.Hour))
	c := newClient(t, "Ann")
	p := newProduct(t, "Milk", "1.50")

	build := func(on kernel.Date) *draft.DraftOrder {
		_, d, err := planner.Build(services.DraftPair{Client: c, Product: p}, "ORD-1", on, now)
		require.NoError(t, err)
		return d
	}

	assert.Equal(t, services.DraftActionGenerate, planner.Decide(nil, today))
	assert.Equal(t, services.DraftActionKeep, planner.Decide([]*draft.DraftOrder{build(today)}, today))
	assert.Equal(t, services.DraftActionRegenerate, planner.Decide([]*draft.DraftOrder{build(yesterday)}, today))
	assert.Equal(t, services.DraftActionRegenerate, planner.Decide([]*draft.DraftOrder{build(today), build(yesterday)}, today))
	assert.Equal(t, "regenerate", services.DraftActionRegenerate.String())
}

func TestDraftPlanner_Pairs(t *testing.T) {
	planner := services.NewDraftPlanner()
	ann, bob := newClient(t, "Ann"), newClient(t, "Bob")
	milk, bread, eggs := newProduct(t, "Milk", "1.50"), newProduct(t, "Bread", "2.00"), newProduct(t, "Eggs", "3.10")

	pairs, err := planner.Pairs([]*client.Client{ann, bob}, []*product.Product{milk, bread, eggs})

	require.NoError(t, err)
	require.Len(t, pairs, 6)
	want := []struct {
		c *client.Client
		p *product.Product
	}{{ann, milk}, {ann, bread}, {ann, eggs}, {bob, milk}, {bob, bread}, {bob, eggs}}
	for i, w := range want {
		assert.Same(t, w.c, pairs[i].Client)
		assert.Same(t, w.p, pairs[i].Product)
	}

	t.Run("empty catalog", func(t *testing.T) {
		pairs, err := planner.Pairs(nil, []*product.Product{milk})
		require.NoError(t, err)
		assert.Empty(t, pairs)
	})

	t.Run("unconstructed entity", func(t *testing.T) {
		_, err := planner.Pairs([]*client.Client{{}}, nil)
		require.ErrorIs(t, err, client.ErrClientIsNotConstructed)
	})
}

func TestDraftPlanner_Build(t *testing.T) {
	planner := services.NewDraftPlanner()
	today := kernel.DateOf(now)
	c := newClient(t, "Ann")
	p := newProduct(t, "Milk", "1.50")

	o, d, err := planner.Build(services.DraftPair{Client: c, Product: p}, "ORD-20261016-000007", today, now)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, "ORD-20261016-000007", o.Number())
	assert.Equal(t, c.Address(), o.DeliveryAddress())
	require.Len(t, o.Lines(), 1)
	assert.Equal(t, 1, o.Lines()[0].Quantity())
	assert.True(t, o.Lines()[0].Price().IsEqual(p.Price()))

	assert.True(t, d.OrderID().IsEqual(o.ID()))
	assert.Equal(t, o.Number(), d.OrderNumber())
	assert.Equal(t, today, d.GeneratedOn())
	assert.True(t, planner.DiscardsOrder(o))

	require.NoError(t, o.Confirm(now))
	assert.False(t, planner.DiscardsOrder(o))
}
