package commands

import (
	"context"
)

// AssignListCommandHandler handles the business logic for list assignment.
// The status-guarded update guarantees at most one winner when two dispatchers
// race to assign the same list.
type AssignListCommandHandler struct {
	uowFactory PickingListUoWFactory
}

// NewAssignListCommandHandler creates a handler for list assignment operations.
func NewAssignListCommandHandler(uowFactory PickingListUoWFactory) AssignListCommandHandler {
	return AssignListCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the list assignment command.
// Loads the aggregate, applies the created -> assigned transition, and persists
// it guarded on the status the aggregate was loaded in. A concurrent transition
// surfaces as a StateConflictError.
func (h AssignListCommandHandler) Handle(ctx context.Context, cmd AssignListCommand) error {
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
	if err = list.Assign(cmd.Worker()); err != nil {
		return err
	}

	if err = repo.UpdateGuarded(ctx, list, loadedStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
