package commands

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/sequence"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// maxCounterAttempts bounds how often a unit of work that issues order numbers
// is replayed after losing the counter compare-and-swap.
const maxCounterAttempts = 5

// unitOfWork runs fn inside one transaction of uow. Any error returned by fn,
// or a failing Commit, leaves the store untouched.
func unitOfWork[U TxManager](ctx context.Context, uow U, fn func(U) error) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// retryOnConflict replays attempt while it fails with errs.ErrConcurrentUpdate,
// at most maxCounterAttempts times in total.
func retryOnConflict(ctx context.Context, attempt func() error) error {
	var err error
	for range maxCounterAttempts {
		if err = attempt(); !errors.Is(err, errs.ErrConcurrentUpdate) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return fmt.Errorf("order number counter still contended after %d attempts: %w", maxCounterAttempts, err)
}

// issueOrderNumber advances the counter of prefix for today and stores it
// with compare-and-swap. The caller owns the transaction.
func issueOrderNumber(
	ctx context.Context,
	repo ports.SequenceCounterRepository,
	prefix string,
	today kernel.Date,
) (string, error) {
	counter, err := repo.Get(ctx, prefix)
	if errors.Is(err, errs.ErrObjectNotFound) {
		counter, err = sequence.NewCounter(prefix)
	}
	if err != nil {
		return "", err
	}

	number, err := counter.Next(today)
	if err != nil {
		return "", err
	}
	if err = repo.Save(ctx, counter); err != nil {
		return "", err
	}
	return number, nil
}
