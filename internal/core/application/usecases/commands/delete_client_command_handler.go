package commands

import (
	"context"

	"github.com/rs/zerolog"
)

// DeleteClientCommandHandler removes a client. Orders keep referencing the
// deleted id; paying such an order later fails with errs.ErrObjectNotFound.
type DeleteClientCommandHandler struct {
	uowFactory ClientUoWFactory
	log        zerolog.Logger
}

func NewDeleteClientCommandHandler(uowFactory ClientUoWFactory, log zerolog.Logger) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{uowFactory: uowFactory, log: log}
}

func (h DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := unitOfWork(ctx, h.uowFactory.Create(), func(uow ClientUoW) error {
		return uow.ClientRepository().Delete(ctx, cmd.ClientID())
	})
	if err != nil {
		return err
	}

	h.log.Debug().Str("client_id", cmd.ClientID().String()).Msg("client deleted")
	return nil
}
