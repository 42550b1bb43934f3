package commands

import (
	"context"

	"github.com/rs/zerolog"
)

// DeleteProductCommandHandler removes a product from the catalog.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
	log        zerolog.Logger
}

func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory, log zerolog.Logger) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory, log: log}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := unitOfWork(ctx, h.uowFactory.Create(), func(uow ProductUoW) error {
		return uow.ProductRepository().Delete(ctx, cmd.ProductID())
	})
	if err != nil {
		return err
	}

	h.log.Debug().Str("product_id", cmd.ProductID().String()).Msg("product deleted")
	return nil
}
