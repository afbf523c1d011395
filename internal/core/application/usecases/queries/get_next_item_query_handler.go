package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNextItemQueryHandler retrieves the lowest-sequence pending item of a
// list. A list where every item is resolved yields a nil response, not an
// error; a missing list yields an ObjectNotFoundError.
type GetNextItemQueryHandler struct {
	db *gorm.DB
}

// NewGetNextItemQueryHandler creates a handler for next-item queries.
// Requires a GORM database connection for query execution.
func NewGetNextItemQueryHandler(db *gorm.DB) GetNextItemQueryHandler {
	return GetNextItemQueryHandler{db: db}
}

// Handle executes the next-item query.
func (h GetNextItemQueryHandler) Handle(
	ctx context.Context,
	query GetNextItemQuery,
) (*PickingItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			product_name,
			order_number,
			zone,
			aisle,
			shelf,
			sequence_number,
			required_qty
		FROM picking_items
		WHERE picking_list_id = ? AND status = ?
		ORDER BY sequence_number
		LIMIT 1
	`, query.ListID().Bytes(), int(pickinglist.ItemPending)).Row()

	var item PickingItemResponse
	var id uuid.UUID
	var aisle, shelf int

	err := row.Scan(
		&id,
		&item.SKU,
		&item.ProductName,
		&item.OrderNumber,
		&item.Zone,
		&aisle,
		&shelf,
		&item.SequenceNumber,
		&item.RequiredQty,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return h.noPendingItem(ctx, query.ListID())
	}
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	item.ID = itemID
	item.LocationCode = fmt.Sprintf("%s-%02d-%02d", item.Zone, aisle, shelf)
	item.Status = pickinglist.ItemPending.String()
	return &item, nil
}

// noPendingItem distinguishes a fully resolved list from a missing one.
func (h GetNextItemQueryHandler) noPendingItem(
	ctx context.Context, listID kernel.UUID,
) (*PickingItemResponse, error) {
	var count int64
	err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM picking_lists WHERE id = ?`, listID.Bytes()).Row().Scan(&count)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("pickingListId", listID.String())
	}

	return nil, nil //nolint:nilnil //no pending item is a valid empty result
}
