// Package queries contains read-only operations over the picking store.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly with raw SQL and return flat read models, bypassing the
// aggregate to keep reads cheap.
package queries

import (
	"errors"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/guard"
)

var ErrGetPickingListQueryIsNotConstructed = errors.New(
	"GetPickingListQuery must be created via NewGetPickingListQuery constructor",
)

// GetPickingListQuery retrieves one picking list with all of its items.
//
// Example:
//
//	query, err := NewGetPickingListQuery(listID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetPickingListQueryHandler(db)
//	list, err := handler.Handle(ctx, query)
type GetPickingListQuery struct { //nolint:recvcheck //using for validation
	listID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPickingListQuery creates a query to retrieve a picking list by ID.
func NewGetPickingListQuery(listID kernel.UUID) (GetPickingListQuery, error) {
	query := GetPickingListQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setListID(listID); err != nil {
		return GetPickingListQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickingListQuery) Validate() error {
	return q.guard.Validate(ErrGetPickingListQueryIsNotConstructed)
}

// ListID returns the identifier of the list to retrieve.
func (q GetPickingListQuery) ListID() kernel.UUID {
	return q.listID
}

func (q *GetPickingListQuery) setListID(listID kernel.UUID) error {
	if err := listID.Validate(); err != nil {
		return err
	}

	q.listID = listID
	return nil
}

// PickingItemResponse is the read model of one item on a picking list.
type PickingItemResponse struct {
	ID             kernel.UUID
	SKU            string
	ProductName    string
	OrderNumber    string
	LocationCode   string
	Zone           string
	SequenceNumber int
	RequiredQty    int
	PickedQty      int
	Status         string
	IssueType      string
	IssueNote      string
	ConfirmedBy    string
	ConfirmedAt    *time.Time
}

// GetPickingListQueryResponse is the read model of a picking list with its
// items in sequence order. Statuses carry their wire names ("in_progress").
type GetPickingListQueryResponse struct {
	ID               kernel.UUID
	ListNumber       string
	Warehouse        string
	PickingType      string
	Priority         int
	Status           string
	AssignedTo       string
	EstimatedMinutes float64
	ActualMinutes    *int
	StartedAt        *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	Items            []PickingItemResponse
}
