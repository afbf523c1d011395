package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPickingListQueryHandler retrieves a picking list read model from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetPickingListQueryHandler struct {
	db *gorm.DB
}

// NewGetPickingListQueryHandler creates a handler for picking list retrieval.
// Requires a GORM database connection for query execution.
func NewGetPickingListQueryHandler(db *gorm.DB) GetPickingListQueryHandler {
	return GetPickingListQueryHandler{db: db}
}

// Handle executes the query to retrieve a picking list with its items.
// Items are returned in sequence order. Returns an ObjectNotFoundError when
// no list with the given ID exists.
func (h GetPickingListQueryHandler) Handle(
	ctx context.Context,
	query GetPickingListQuery,
) (GetPickingListQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPickingListQueryResponse{}, err
	}

	response, err := h.scanList(ctx, query.ListID())
	if err != nil {
		return GetPickingListQueryResponse{}, err
	}

	items, err := h.scanItems(ctx, query.ListID())
	if err != nil {
		return GetPickingListQueryResponse{}, err
	}

	response.Items = items
	return response, nil
}

func (h GetPickingListQueryHandler) scanList(
	ctx context.Context, listID kernel.UUID,
) (GetPickingListQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			list_number,
			warehouse,
			picking_type,
			priority,
			status,
			assigned_to,
			estimated_minutes,
			actual_minutes,
			started_at,
			completed_at,
			created_at
		FROM picking_lists
		WHERE id = ?
	`, listID.Bytes()).Row()

	var response GetPickingListQueryResponse
	var id uuid.UUID
	var pickingType, status int
	var actualMinutes sql.NullInt64
	var startedAt, completedAt sql.NullTime

	err := row.Scan(
		&id,
		&response.ListNumber,
		&response.Warehouse,
		&pickingType,
		&response.Priority,
		&status,
		&response.AssignedTo,
		&response.EstimatedMinutes,
		&actualMinutes,
		&startedAt,
		&completedAt,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPickingListQueryResponse{}, errs.NewObjectNotFoundError("pickingListId", listID.String())
	}
	if err != nil {
		return GetPickingListQueryResponse{}, err
	}

	listUUID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPickingListQueryResponse{}, err
	}

	response.ID = listUUID
	response.PickingType = pickinglist.PickingType(pickingType).String()
	response.Status = pickinglist.Status(status).String()
	if actualMinutes.Valid {
		minutes := int(actualMinutes.Int64)
		response.ActualMinutes = &minutes
	}
	response.StartedAt = nullableTime(startedAt)
	response.CompletedAt = nullableTime(completedAt)
	return response, nil
}

func (h GetPickingListQueryHandler) scanItems(
	ctx context.Context, listID kernel.UUID,
) ([]PickingItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			product_name,
			order_number,
			zone,
			aisle,
			shelf,
			sequence_number,
			required_qty,
			picked_qty,
			status,
			issue_type,
			issue_note,
			confirmed_by,
			confirmed_at
		FROM picking_items
		WHERE picking_list_id = ?
		ORDER BY sequence_number
	`, listID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]PickingItemResponse, 0)
	for rows.Next() {
		var item PickingItemResponse
		var id uuid.UUID
		var aisle, shelf, status, issueType int
		var confirmedAt sql.NullTime

		err = rows.Scan(
			&id,
			&item.SKU,
			&item.ProductName,
			&item.OrderNumber,
			&item.Zone,
			&aisle,
			&shelf,
			&item.SequenceNumber,
			&item.RequiredQty,
			&item.PickedQty,
			&status,
			&issueType,
			&item.IssueNote,
			&item.ConfirmedBy,
			&confirmedAt,
		)
		if err != nil {
			return nil, err
		}

		itemUUID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		item.ID = itemUUID
		item.LocationCode = fmt.Sprintf("%s-%02d-%02d", item.Zone, aisle, shelf)
		item.Status = pickinglist.ItemStatus(status).String()
		item.IssueType = issueTypeName(issueType)
		item.ConfirmedAt = nullableTime(confirmedAt)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// issueTypeName maps the stored issue type to its wire name, with the
// zero value rendered as empty rather than "unknown".
func issueTypeName(issueType int) string {
	if issueType == int(pickinglist.IssueUnknown) {
		return ""
	}
	return pickinglist.IssueType(issueType).String()
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
