package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/draft"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/metrics"

	"github.com/rs/zerolog"
)

// GenerateDailyDraftsCommandHandler produces one pending order per client and
// product every day.
//
// Business rules:
//   - a batch generated today is returned unchanged, so repeated calls on
//     the same day are idempotent
//   - a batch from an earlier day is discarded first: every draft row goes,
//     together with its order if that order is still pending
//   - generation walks clients then products; each pair gets a pending order
//     of one unit at the current product price, shipped to the client address
//
// Everything happens in one unit of work.
type GenerateDailyDraftsCommandHandler struct {
	uowFactory UoWFactory
	planner    services.DraftPlanner
	prefix     string
	clock      kernel.Clock
	metrics    *metrics.OrderMetrics
	log        zerolog.Logger
}

func NewGenerateDailyDraftsCommandHandler(
	uowFactory UoWFactory,
	prefix string,
	clock kernel.Clock,
	m *metrics.OrderMetrics,
	log zerolog.Logger,
) GenerateDailyDraftsCommandHandler {
	return GenerateDailyDraftsCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewDraftPlanner(),
		prefix:     prefix,
		clock:      clock,
		metrics:    m,
		log:        log,
	}
}

func (h GenerateDailyDraftsCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateDailyDraftsCommand,
) ([]*draft.DraftOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		batch     []*draft.DraftOrder
		action    services.DraftAction
		discarded int
	)
	err := retryOnConflict(ctx, func() error {
		return unitOfWork(ctx, h.uowFactory.Create(), func(uow UoW) error {
			now := h.clock.Now()
			today := kernel.DateOf(now)

			existing, err := uow.DraftOrderRepository().GetAll(ctx)
			if err != nil {
				return err
			}

			action = h.planner.Decide(existing, today)
			switch action {
			case services.DraftActionKeep:
				batch = existing
				return nil
			case services.DraftActionRegenerate:
				if discarded, err = h.discard(ctx, uow, existing); err != nil {
					return err
				}
			case services.DraftActionGenerate:
			}

			batch, err = h.generate(ctx, uow, cmd, today, now)
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	if action != services.DraftActionKeep {
		h.metrics.AddDraftsGenerated(len(batch))
	}
	h.log.Info().
		Str("action", action.String()).
		Int("drafts", len(batch)).
		Int("discarded_orders", discarded).
		Msg("daily drafts ready")
	return batch, nil
}

// discard removes a stale batch and returns how many paired orders went with it.
func (h GenerateDailyDraftsCommandHandler) discard(ctx context.Context, uow UoW, stale []*draft.DraftOrder) (int, error) {
	discarded := 0
	for _, d := range stale {
		o, err := uow.OrderRepository().Get(ctx, d.OrderID())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
		case err != nil:
			return 0, err
		case h.planner.DiscardsOrder(o):
			if err = uow.OrderRepository().Delete(ctx, o.ID()); err != nil {
				return 0, err
			}
			discarded++
		}
		if err = uow.DraftOrderRepository().Delete(ctx, d.ID()); err != nil {
			return 0, err
		}
	}
	return discarded, nil
}

func (h GenerateDailyDraftsCommandHandler) generate(
	ctx context.Context,
	uow UoW,
	cmd GenerateDailyDraftsCommand,
	today kernel.Date,
	now time.Time,
) ([]*draft.DraftOrder, error) {
	clients, products, err := h.catalog(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	pairs, err := h.planner.Pairs(clients, products)
	if err != nil {
		return nil, err
	}

	batch := make([]*draft.DraftOrder, 0, len(pairs))
	for _, pair := range pairs {
		number, numberErr := issueOrderNumber(ctx, uow.SequenceCounterRepository(), h.prefix, today)
		if numberErr != nil {
			return nil, fmt.Errorf("issue order number: %w", numberErr)
		}
		o, d, buildErr := h.planner.Build(pair, number, today, now)
		if buildErr != nil {
			return nil, buildErr
		}
		if err = uow.OrderRepository().Add(ctx, o); err != nil {
			return nil, err
		}
		if err = uow.DraftOrderRepository().Add(ctx, d); err != nil {
			return nil, err
		}
		batch = append(batch, d)
	}
	return batch, nil
}

func (h GenerateDailyDraftsCommandHandler) catalog(
	ctx context.Context,
	uow UoW,
	cmd GenerateDailyDraftsCommand,
) ([]*client.Client, []*product.Product, error) {
	if !cmd.FromStore() {
		return cmd.Clients(), cmd.Products(), nil
	}
	clients, err := uow.ClientRepository().GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	products, err := uow.ProductRepository().GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return clients, products, nil
}
