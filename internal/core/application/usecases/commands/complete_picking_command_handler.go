package commands

import (
	"context"
	"time"
)

// CompletePickingCommandHandler handles the business logic for closing a list.
// Completion requires the caller to be the assigned worker and every item to
// have left the pending status; the measured duration is recorded on success.
type CompletePickingCommandHandler struct {
	uowFactory PickingListUoWFactory
}

// NewCompletePickingCommandHandler creates a handler for completion operations.
func NewCompletePickingCommandHandler(uowFactory PickingListUoWFactory) CompletePickingCommandHandler {
	return CompletePickingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompletePickingCommandHandler) Handle(ctx context.Context, cmd CompletePickingCommand) error {
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
	if err = list.Complete(cmd.Worker(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.UpdateGuarded(ctx, list, loadedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
