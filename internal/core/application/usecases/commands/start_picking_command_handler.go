package commands

import (
	"context"
	"time"
)

// StartPickingCommandHandler handles the business logic for starting a pick.
// Starting a created list implicitly assigns it to the starting worker;
// starting an assigned list requires the worker to be its assignee. The
// status-guarded update guarantees at most one winner when two workers race
// to start the same list.
type StartPickingCommandHandler struct {
	uowFactory PickingListUoWFactory
}

// NewStartPickingCommandHandler creates a handler for start operations.
func NewStartPickingCommandHandler(uowFactory PickingListUoWFactory) StartPickingCommandHandler {
	return StartPickingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command.
func (h StartPickingCommandHandler) Handle(ctx context.Context, cmd StartPickingCommand) error {
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
	list, err := repo.Get(ctx, cmd.ListID())
	if err != nil {
		return err
	}

	loadedStatus := list.Status()
	if err = list.Start(cmd.Worker(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.UpdateGuarded(ctx, list, loadedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
