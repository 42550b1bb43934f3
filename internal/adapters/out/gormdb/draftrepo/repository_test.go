package draftrepo_test

import (
	"fmt"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/adapters/out/gormdb/draftrepo"
	"orderdesk/internal/core/domain/model/draft"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormDraftOrderRepository(t *testing.T) {
	ctx := t.Context()
	db, err := gormdb.Open(gormdb.Options{Driver: gormdb.DriverSQLite, DSN: gormdb.InMemoryDSN(), Logger: zerolog.Nop()})
	require.NoError(t, err)
	repo := draftrepo.NewGormDraftOrderRepository(db)

	now := time.Date(2026, 10, 16, 6, 0, 0, 0, time.UTC)
	today := kernel.DateOf(now)
	price, err := kernel.MoneyFromString("4.10")
	require.NoError(t, err)

	// Inserted out of order; numbers decide the generation order within a batch.
	var drafts []*draft.DraftOrder
	for _, n := range []int{3, 1, 2} {
		l, lineErr := order.NewLine(kernel.NewUUID(), fmt.Sprintf("P%d", n), 1, price)
		require.NoError(t, lineErr)
		o, orderErr := order.NewOrder(kernel.NewUUID(), fmt.Sprintf("ORD-20261016-%06d", n), kernel.NewUUID(),
			"Main St 1", []order.Line{l}, order.Pending, now)
		require.NoError(t, orderErr)
		d, draftErr := draft.NewDraftOrder(kernel.NewUUID(), o, today, now)
		require.NoError(t, draftErr)
		require.NoError(t, repo.Add(ctx, d))
		drafts = append(drafts, d)
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ORD-20261016-000001", all[0].OrderNumber())
	assert.Equal(t, "ORD-20261016-000002", all[1].OrderNumber())
	assert.Equal(t, "ORD-20261016-000003", all[2].OrderNumber())
	assert.Equal(t, today, all[0].GeneratedOn())
	assert.Equal(t, "4.10", all[0].Price().String())
	assert.Equal(t, "Main St 1", all[0].DeliveryAddress())
	assert.Equal(t, 1, all[0].Quantity())

	require.NoError(t, repo.Delete(ctx, drafts[0].ID()))
	require.ErrorIs(t, repo.Delete(ctx, drafts[0].ID()), errs.ErrObjectNotFound)

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
