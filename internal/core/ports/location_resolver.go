package ports

import (
	"context"

	"picking/internal/core/domain/model/kernel"
)

// LocationResolver resolves SKUs to their storage locations within a
// warehouse. List creation depends on it: a SKU the resolver cannot place
// aborts the whole creation with a LocationUnresolvedError, since a list
// with an unroutable item would be unpickable.
type LocationResolver interface {
	// Resolve returns the storage location to pick the given SKU from in the
	// given warehouse. When the SKU is stored in several cells the primary
	// cell wins. Returns a LocationUnresolvedError when no cell holds the SKU.
	Resolve(ctx context.Context, warehouse string, sku string) (kernel.Location, error)
}
