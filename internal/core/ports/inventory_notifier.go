package ports

import (
	"context"
	"time"
)

// StockPicked is the notification emitted after an item confirmation commits.
// It tells the inventory system to decrement available stock.
type StockPicked struct {
	// SKU identifies the picked product.
	SKU string
	// Warehouse identifies where the stock was taken from.
	Warehouse string
	// Quantity is the confirmed picked quantity.
	Quantity int
	// ConfirmedAt is when the worker confirmed the pick.
	ConfirmedAt time.Time
}

// InventoryNotifier publishes stock-decrement notifications to the inventory
// system. Exactly one notification is emitted per confirmed item: the domain
// guarantees an item is confirmable at most once, and the notifier is invoked
// only after the confirming transaction commits.
type InventoryNotifier interface {
	// NotifyStockPicked publishes a single stock-decrement notification.
	// A failure is reported to the caller but must not undo the confirmation;
	// the pick already happened on the warehouse floor.
	NotifyStockPicked(ctx context.Context, event StockPicked) error
}
