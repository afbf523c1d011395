// Package ports defines the contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
)

// PickingListRepository defines the persistence contract for picking list
// aggregates. Lists are stored together with their items; the repository
// never exposes an item outside its aggregate.
type PickingListRepository interface {
	// Add persists a new picking list aggregate with all of its items.
	// The list must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *pickinglist.PickingList) error

	// Get retrieves a picking list aggregate by its unique identifier.
	// Returns the complete list with its items in sequence order, or an
	// ObjectNotFoundError when no list with the given ID exists.
	Get(ctx context.Context, id kernel.UUID) (*pickinglist.PickingList, error)

	// UpdateGuarded persists the aggregate's current state with an optimistic
	// concurrency guard: the UPDATE applies only while the stored status still
	// equals expectedStatus. When a concurrent actor already moved the list
	// out of that status the update affects zero rows and a StateConflictError
	// is returned; the caller must not retry blindly but refetch and re-decide.
	UpdateGuarded(
		ctx context.Context, aggregate *pickinglist.PickingList, expectedStatus pickinglist.Status,
	) error

	// UpdateItemGuarded persists a single item's resolution with the same
	// optimistic guard on the item row: the UPDATE applies only while the
	// stored item status is still pending. Zero affected rows means another
	// actor resolved the item first and yields a StateConflictError, which is
	// what makes the resolution exactly-once even across processes.
	UpdateItemGuarded(ctx context.Context, item *pickinglist.PickingItem) error

	// GetAllInCreatedStatusBefore retrieves every list still in Created status
	// that was created before the given cutoff. Used by the stale-list job.
	GetAllInCreatedStatusBefore(ctx context.Context, cutoff time.Time) ([]*pickinglist.PickingList, error)
}
