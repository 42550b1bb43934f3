package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// SaveClientCommandHandler upserts a client. An update never touches the
// order statistics or the creation time.
type SaveClientCommandHandler struct {
	uowFactory ClientUoWFactory
	clock      kernel.Clock
	log        zerolog.Logger
}

func NewSaveClientCommandHandler(uowFactory ClientUoWFactory, clock kernel.Clock, log zerolog.Logger) SaveClientCommandHandler {
	return SaveClientCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		log:        log,
	}
}

func (h SaveClientCommandHandler) Handle(ctx context.Context, cmd SaveClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var saved *client.Client
	err := unitOfWork(ctx, h.uowFactory.Create(), func(uow ClientUoW) error {
		repo := uow.ClientRepository()
		now := h.clock.Now()

		c, err := repo.Get(ctx, cmd.ClientID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			if c, err = client.NewClient(cmd.ClientID(), cmd.Name(), cmd.Address(), cmd.Phone(), now); err != nil {
				return err
			}
			saved = c
			return repo.Add(ctx, c)
		}
		if err != nil {
			return err
		}

		if err = c.UpdateDetails(cmd.Name(), cmd.Address(), cmd.Phone(), now); err != nil {
			return err
		}
		saved = c
		return repo.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	h.log.Debug().Str("client_id", saved.ID().String()).Msg("client saved")
	return saved, nil
}
