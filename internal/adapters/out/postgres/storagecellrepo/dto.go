// Package storagecellrepo resolves SKUs to the storage cells that hold them.
// The storage cell table is maintained by the inventory system; this package
// only reads it, during list creation, to place each order line on the
// warehouse floor.
package storagecellrepo

import (
	"github.com/google/uuid"
)

// StorageCellDTO represents one cell assignment: a SKU stored at a zone, aisle
// and shelf within a warehouse. A SKU may occupy several cells; at most one of
// them is flagged primary.
type StorageCellDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Warehouse string    `gorm:"index:idx_storage_cells_sku"`
	SKU       string    `gorm:"column:sku;index:idx_storage_cells_sku"`
	Zone      string    `gorm:"type:char(1)"`
	Aisle     int
	Shelf     int
	LocationX *float64
	LocationY *float64
	IsPrimary bool
}

// TableName specifies the database table name for storage cell entities.
func (StorageCellDTO) TableName() string {
	return "storage_cells"
}
