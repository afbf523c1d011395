package queries

import (
	"context"
	"math"

	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProgressQueryHandler computes picking progress with a single aggregate
// query over the item rows.
type GetProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetProgressQueryHandler creates a handler for progress queries.
// Requires a GORM database connection for query execution.
func NewGetProgressQueryHandler(db *gorm.DB) GetProgressQueryHandler {
	return GetProgressQueryHandler{db: db}
}

// Handle executes the progress query. Returns an ObjectNotFoundError when the
// list does not exist; a list cannot have zero items by invariant, so a zero
// total doubles as the existence check.
func (h GetProgressQueryHandler) Handle(
	ctx context.Context,
	query GetProgressQuery,
) (GetProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProgressQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status != ?) AS completed
		FROM picking_items
		WHERE picking_list_id = ?
	`, int(pickinglist.ItemPending), query.ListID().Bytes()).Row()

	var total, completed int
	if err := row.Scan(&total, &completed); err != nil {
		return GetProgressQueryResponse{}, err
	}
	if total == 0 {
		return GetProgressQueryResponse{}, errs.NewObjectNotFoundError(
			"pickingListId", query.ListID().String())
	}

	return GetProgressQueryResponse{
		Total:      total,
		Completed:  completed,
		Remaining:  total - completed,
		Percentage: int(math.Round(float64(completed) / float64(total) * 100)),
	}, nil
}
