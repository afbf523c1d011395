// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"picking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PickingListRepoFactory provides access to the picking list repository
	// within a transaction.
	PickingListRepoFactory interface {
		PickingListRepository() ports.PickingListRepository
	}

	// PickingListUoW manages transactions for picking list operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.PickingListRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PickingListUoW interface {
		TxManager
		PickingListRepoFactory
	}

	// PickingListUoWFactory creates new unit of work instances.
	PickingListUoWFactory interface {
		Create() PickingListUoW
	}
)
