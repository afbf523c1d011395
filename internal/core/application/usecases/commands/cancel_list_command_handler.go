package commands

import (
	"context"
)

// CancelListCommandHandler handles the business logic for list cancellation.
// Cancellation is legal only while the list is created or assigned; once a
// worker started picking, the only forward path is per-item resolution
// followed by complete.
type CancelListCommandHandler struct {
	uowFactory PickingListUoWFactory
}

// NewCancelListCommandHandler creates a handler for cancellation operations.
func NewCancelListCommandHandler(uowFactory PickingListUoWFactory) CancelListCommandHandler {
	return CancelListCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. Cancelled is a terminal status,
// not a deletion; the list and its items remain queryable.
func (h CancelListCommandHandler) Handle(ctx context.Context, cmd CancelListCommand) error {
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
	if err = list.Cancel(); err != nil {
		return err
	}

	if err = repo.UpdateGuarded(ctx, list, loadedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
