package queries

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/guard"
)

var ErrGetNextItemQueryIsNotConstructed = errors.New(
	"GetNextItemQuery must be created via NewGetNextItemQuery constructor",
)

// GetNextItemQuery retrieves the next item a worker should pick: the pending
// item with the lowest sequence number on the list.
type GetNextItemQuery struct { //nolint:recvcheck //using for validation
	listID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNextItemQuery creates a query for a list's next pending item.
func NewGetNextItemQuery(listID kernel.UUID) (GetNextItemQuery, error) {
	query := GetNextItemQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setListID(listID); err != nil {
		return GetNextItemQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNextItemQuery) Validate() error {
	return q.guard.Validate(ErrGetNextItemQueryIsNotConstructed)
}

// ListID returns the identifier of the list to pick from.
func (q GetNextItemQuery) ListID() kernel.UUID {
	return q.listID
}

func (q *GetNextItemQuery) setListID(listID kernel.UUID) error {
	if err := listID.Validate(); err != nil {
		return err
	}

	q.listID = listID
	return nil
}
