package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// SaveProductCommandHandler upserts a product. The order count and creation
// time survive an update; existing order lines keep their snapshot price.
type SaveProductCommandHandler struct {
	uowFactory ProductUoWFactory
	clock      kernel.Clock
	log        zerolog.Logger
}

func NewSaveProductCommandHandler(uowFactory ProductUoWFactory, clock kernel.Clock, log zerolog.Logger) SaveProductCommandHandler {
	return SaveProductCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		log:        log,
	}
}

func (h SaveProductCommandHandler) Handle(ctx context.Context, cmd SaveProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var saved *product.Product
	err := unitOfWork(ctx, h.uowFactory.Create(), func(uow ProductUoW) error {
		repo := uow.ProductRepository()
		now := h.clock.Now()

		p, err := repo.Get(ctx, cmd.ProductID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			if p, err = product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Price(), now); err != nil {
				return err
			}
			saved = p
			return repo.Add(ctx, p)
		}
		if err != nil {
			return err
		}

		if err = p.UpdateDetails(cmd.Name(), cmd.Price(), now); err != nil {
			return err
		}
		saved = p
		return repo.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	h.log.Debug().Str("product_id", saved.ID().String()).Msg("product saved")
	return saved, nil
}
