package queries

import (
	"context"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetListsByStatusQueryHandler retrieves picking list summaries from the
// database, newest first, with a per-list item count.
type GetListsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetListsByStatusQueryHandler creates a handler for list summary queries.
// Requires a GORM database connection for query execution.
func NewGetListsByStatusQueryHandler(db *gorm.DB) GetListsByStatusQueryHandler {
	return GetListsByStatusQueryHandler{db: db}
}

// Handle executes the query. An empty result is a valid response, not an error.
func (h GetListsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetListsByStatusQuery,
) ([]PickingListSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			l.id,
			l.list_number,
			l.warehouse,
			l.picking_type,
			l.priority,
			l.status,
			l.assigned_to,
			l.created_at,
			COUNT(i.id) AS item_count
		FROM picking_lists l
		LEFT JOIN picking_items i ON i.picking_list_id = l.id
		WHERE l.warehouse = ?
	`
	args := []any{query.Warehouse()}
	if status, ok := query.Status(); ok {
		sql += " AND l.status = ?"
		args = append(args, int(status))
	}
	sql += `
		GROUP BY l.id, l.list_number, l.warehouse, l.picking_type,
			l.priority, l.status, l.assigned_to, l.created_at
		ORDER BY l.created_at DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]PickingListSummaryResponse, 0)
	for rows.Next() {
		var summary PickingListSummaryResponse
		var id uuid.UUID
		var pickingType, status int

		err = rows.Scan(
			&id,
			&summary.ListNumber,
			&summary.Warehouse,
			&pickingType,
			&summary.Priority,
			&status,
			&summary.AssignedTo,
			&summary.CreatedAt,
			&summary.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		listID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		summary.ID = listID
		summary.PickingType = pickinglist.PickingType(pickingType).String()
		summary.Status = pickinglist.Status(status).String()
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
