package commands

import (
	"context"
	"time"
)

// ReportIssueCommandHandler handles the business logic for issue reports.
// A reported issue resolves the item as skipped; no inventory notification is
// emitted since no stock movement happened.
type ReportIssueCommandHandler struct {
	uowFactory PickingListUoWFactory
}

// NewReportIssueCommandHandler creates a handler for issue report operations.
func NewReportIssueCommandHandler(uowFactory PickingListUoWFactory) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the issue report command. The pending -> skipped transition
// is persisted with the same one-shot status guard as a confirmation, so an
// issue report racing a confirmation has exactly one winner.
func (h ReportIssueCommandHandler) Handle(ctx context.Context, cmd ReportIssueCommand) error {
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

	item, err := list.ReportItemIssue(
		cmd.ItemID(), cmd.IssueType(), cmd.Note(), cmd.ReportedBy(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = repo.UpdateItemGuarded(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
