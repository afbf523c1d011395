package storagecellrepo

import (
	"context"
	"errors"
	"fmt"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLocationResolver implements LocationResolver against the storage cell
// table. Resolution is a read-only lookup and runs outside any unit of work.
type GormLocationResolver struct {
	db *gorm.DB
}

// NewGormLocationResolver creates a new GORM location resolver.
func NewGormLocationResolver(db *gorm.DB) *GormLocationResolver {
	return &GormLocationResolver{db: db}
}

// Resolve returns the storage location to pick the given SKU from. The primary
// cell wins; among non-primary cells the lowest zone, aisle and shelf wins, so
// repeated resolutions of the same SKU are deterministic.
func (r *GormLocationResolver) Resolve(
	ctx context.Context, warehouse string, sku string,
) (kernel.Location, error) {
	if warehouse == "" {
		return kernel.Location{}, errs.NewValueIsRequiredError("warehouse")
	}
	if sku == "" {
		return kernel.Location{}, errs.NewValueIsRequiredError("sku")
	}

	var dto StorageCellDTO
	err := r.db.WithContext(ctx).
		Where("warehouse = ? AND sku = ?", warehouse, sku).
		Order("is_primary DESC, zone, aisle, shelf").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Location{}, errs.NewLocationUnresolvedError(sku, warehouse)
		}
		return kernel.Location{}, err
	}

	return toLocation(dto)
}

// toLocation converts a cell row to a location value object.
func toLocation(dto StorageCellDTO) (kernel.Location, error) {
	if len(dto.Zone) != 1 {
		return kernel.Location{}, errs.NewValueIsInvalidErrorWithCause("zone",
			fmt.Errorf("%q is not a single zone letter", dto.Zone))
	}

	if dto.LocationX != nil && dto.LocationY != nil {
		return kernel.NewLocationWithCoordinates(
			kernel.Zone(dto.Zone[0]), dto.Aisle, dto.Shelf, *dto.LocationX, *dto.LocationY)
	}
	return kernel.NewLocation(kernel.Zone(dto.Zone[0]), dto.Aisle, dto.Shelf)
}
