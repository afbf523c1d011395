package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"
)

// CancelStaleListsCommandHandler cancels picking lists that were created but
// never assigned or started within the configured age. Only the legal
// created -> cancelled transition is used; a list a worker grabbed while the
// sweep runs loses its guard and is simply skipped.
type CancelStaleListsCommandHandler struct {
	uowFactory PickingListUoWFactory
	logger     *slog.Logger
}

// NewCancelStaleListsCommandHandler creates a handler for the stale-list sweep.
func NewCancelStaleListsCommandHandler(
	uowFactory PickingListUoWFactory, logger *slog.Logger,
) CancelStaleListsCommandHandler {
	return CancelStaleListsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cancel_stale_lists_handler"),
	}
}

// Handle processes the stale-list sweep command.
func (h CancelStaleListsCommandHandler) Handle(ctx context.Context, cmd CancelStaleListsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PickingListRepository()
	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	lists, err := repo.GetAllInCreatedStatusBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	cancelled := 0
	for _, list := range lists {
		if err = list.Cancel(); err != nil {
			return err
		}

		err = repo.UpdateGuarded(ctx, list, pickinglist.Created)
		if errors.Is(err, errs.ErrStateConflict) {
			h.logger.InfoContext(ctx, "stale list transitioned concurrently, skipping",
				"listNumber", list.ListNumber())
			continue
		}
		if err != nil {
			return err
		}
		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cancelled > 0 {
		h.logger.InfoContext(ctx, "cancelled stale picking lists", "count", cancelled, "cutoff", cutoff)
	}
	return nil
}
