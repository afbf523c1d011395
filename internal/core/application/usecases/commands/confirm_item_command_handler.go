package commands

import (
	"context"
	"log/slog"
	"time"

	"picking/internal/core/ports"
)

// ConfirmItemCommandHandler handles the business logic for item confirmation.
//
// The pending -> picked/shortage transition is a one-shot, status-guarded
// write: the domain rejects a second confirmation and the storage layer
// rejects a concurrent one, so at most one confirmation per item ever
// commits. The stock-decrement notification is emitted exactly once, after
// that commit.
type ConfirmItemCommandHandler struct {
	uowFactory PickingListUoWFactory
	notifier   ports.InventoryNotifier
	logger     *slog.Logger
}

// NewConfirmItemCommandHandler creates a handler for item confirmation
// operations.
func NewConfirmItemCommandHandler(
	uowFactory PickingListUoWFactory,
	notifier ports.InventoryNotifier,
	logger *slog.Logger,
) ConfirmItemCommandHandler {
	return ConfirmItemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "confirm_item_handler"),
	}
}

// Handle processes the item confirmation command.
//
// The confirmation is persisted first; the inventory notification goes out
// only after the transaction commits. A notification failure is logged but
// does not undo the confirmation: the stock already left the shelf, and the
// inventory feed is at-least-once by contract.
func (h ConfirmItemCommandHandler) Handle(ctx context.Context, cmd ConfirmItemCommand) error {
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

	confirmedAt := time.Now().UTC()
	item, err := list.ConfirmItem(
		cmd.ItemID(), cmd.PickedQty(), cmd.BarcodeScan(), cmd.ConfirmedBy(), confirmedAt)
	if err != nil {
		return err
	}

	if err = repo.UpdateItemGuarded(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := ports.StockPicked{
		SKU:         item.SKU(),
		Warehouse:   list.Warehouse(),
		Quantity:    item.PickedQty(),
		ConfirmedAt: confirmedAt,
	}
	if err = h.notifier.NotifyStockPicked(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "stock notification failed, inventory will catch up on reconciliation",
			"sku", item.SKU(),
			"warehouse", list.Warehouse(),
			"quantity", item.PickedQty(),
			"error", err)
	}

	return nil
}
