package queries

import (
	"errors"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrGetListsByStatusQueryIsNotConstructed = errors.New(
	"GetListsByStatusQuery must be created via NewGetListsByStatusQuery constructor",
)

// GetListsByStatusQuery retrieves picking list summaries for a warehouse,
// optionally filtered by status.
type GetListsByStatusQuery struct { //nolint:recvcheck //using for validation
	warehouse string
	status    pickinglist.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetListsByStatusQuery creates a query for a warehouse's picking lists.
// statusName is an optional wire name ("created", "in_progress", ...); empty
// means no status filter.
func NewGetListsByStatusQuery(warehouse string, statusName string) (GetListsByStatusQuery, error) {
	query := GetListsByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setWarehouse(warehouse); err != nil {
		return GetListsByStatusQuery{}, err
	}
	if err := query.setStatus(statusName); err != nil {
		return GetListsByStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetListsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetListsByStatusQueryIsNotConstructed)
}

// Warehouse returns the warehouse to list for.
func (q GetListsByStatusQuery) Warehouse() string {
	return q.warehouse
}

// Status returns the status filter and whether one was given.
func (q GetListsByStatusQuery) Status() (pickinglist.Status, bool) {
	return q.status, q.hasStatus
}

func (q *GetListsByStatusQuery) setWarehouse(warehouse string) error {
	if warehouse == "" {
		return errs.NewValueIsRequiredError("warehouse")
	}

	q.warehouse = warehouse
	return nil
}

func (q *GetListsByStatusQuery) setStatus(statusName string) error {
	if statusName == "" {
		return nil
	}

	status, err := pickinglist.StatusFromString(statusName)
	if err != nil {
		return err
	}

	q.status = status
	q.hasStatus = true
	return nil
}

// PickingListSummaryResponse is the read model of one list in a listing:
// header fields plus the item count, without the items themselves.
type PickingListSummaryResponse struct {
	ID          kernel.UUID
	ListNumber  string
	Warehouse   string
	PickingType string
	Priority    int
	Status      string
	AssignedTo  string
	ItemCount   int
	CreatedAt   time.Time
}
