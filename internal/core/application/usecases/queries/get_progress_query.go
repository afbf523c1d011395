package queries

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/guard"
)

var ErrGetProgressQueryIsNotConstructed = errors.New(
	"GetProgressQuery must be created via NewGetProgressQuery constructor",
)

// GetProgressQuery retrieves picking progress for one list.
type GetProgressQuery struct { //nolint:recvcheck //using for validation
	listID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProgressQuery creates a query for a list's picking progress.
func NewGetProgressQuery(listID kernel.UUID) (GetProgressQuery, error) {
	query := GetProgressQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setListID(listID); err != nil {
		return GetProgressQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetProgressQueryIsNotConstructed)
}

// ListID returns the identifier of the list to report on.
func (q GetProgressQuery) ListID() kernel.UUID {
	return q.listID
}

func (q *GetProgressQuery) setListID(listID kernel.UUID) error {
	if err := listID.Validate(); err != nil {
		return err
	}

	q.listID = listID
	return nil
}

// GetProgressQueryResponse summarizes how far a list has been picked.
// Percentage is round(Completed/Total*100); 0 when the list has no items.
type GetProgressQueryResponse struct {
	Total      int
	Completed  int
	Remaining  int
	Percentage int
}
