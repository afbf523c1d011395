// Package pickinglistrepo provides data transfer objects and mapping functions
// for picking list persistence. This package implements the repository pattern
// for the picking list aggregate, handling the conversion between domain
// entities and database representations. A list and its items are always
// persisted and loaded together.
package pickinglistrepo

import (
	"fmt"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"

	"github.com/google/uuid"
)

// PickingListDTO represents the database structure for persisting picking list
// aggregates. Indexed by warehouse and status for the status board and the
// stale-list sweep.
type PickingListDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListNumber       string    `gorm:"uniqueIndex"`
	Warehouse        string    `gorm:"index"`
	PickingType      int
	Priority         int
	Status           int `gorm:"index"`
	AssignedTo       string
	EstimatedMinutes float64
	ActualMinutes    *int
	StartedAt        *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	Items            []PickingItemDTO `gorm:"foreignKey:PickingListID;references:ID"`
}

// TableName specifies the database table name for picking list entities.
func (PickingListDTO) TableName() string {
	return "picking_lists"
}

// PickingItemDTO represents one item row within a picking list. The resolved
// storage location is denormalized onto the row (zone, aisle, shelf and the
// optional floor-plan coordinates) so a list restores without touching the
// storage cell table, whose contents may have moved since routing.
type PickingItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PickingListID  uuid.UUID `gorm:"type:uuid;index"`
	SKU            string    `gorm:"column:sku"`
	ProductName    string
	OrderNumber    string
	Zone           string `gorm:"type:char(1)"`
	Aisle          int
	Shelf          int
	LocationX      *float64
	LocationY      *float64
	SequenceNumber int
	RequiredQty    int
	PickedQty      int
	Status         int
	IssueType      int
	IssueNote      string
	ConfirmedBy    string
	ConfirmedAt    *time.Time
}

// TableName specifies the database table name for picking item entities.
func (PickingItemDTO) TableName() string {
	return "picking_items"
}

// fromDomain converts a picking list aggregate to its database representation,
// items included.
func fromDomain(list *pickinglist.PickingList) PickingListDTO {
	items := list.Items()
	itemDTOs := make([]PickingItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemFromDomain(item))
	}

	return PickingListDTO{
		ID:               list.ID().Bytes(),
		ListNumber:       list.ListNumber(),
		Warehouse:        list.Warehouse(),
		PickingType:      int(list.PickingType()),
		Priority:         int(list.Priority()),
		Status:           int(list.Status()),
		AssignedTo:       list.AssignedTo(),
		EstimatedMinutes: list.EstimatedMinutes(),
		ActualMinutes:    list.ActualMinutes(),
		StartedAt:        list.StartedAt(),
		CompletedAt:      list.CompletedAt(),
		CreatedAt:        list.CreatedAt(),
		Items:            itemDTOs,
	}
}

// itemFromDomain converts a picking item entity to its database representation.
func itemFromDomain(item *pickinglist.PickingItem) PickingItemDTO {
	var x, y *float64
	if coords, ok := item.Location().Coordinates(); ok {
		cx, cy := coords.X(), coords.Y()
		x, y = &cx, &cy
	}

	return PickingItemDTO{
		ID:             item.ID().Bytes(),
		PickingListID:  item.ListID().Bytes(),
		SKU:            item.SKU(),
		ProductName:    item.ProductName(),
		OrderNumber:    item.OrderNumber(),
		Zone:           string(rune(item.Location().Zone())),
		Aisle:          item.Location().Aisle(),
		Shelf:          item.Location().Shelf(),
		LocationX:      x,
		LocationY:      y,
		SequenceNumber: item.SequenceNumber(),
		RequiredQty:    item.RequiredQty(),
		PickedQty:      item.PickedQty(),
		Status:         int(item.Status()),
		IssueType:      int(item.IssueType()),
		IssueNote:      item.IssueNote(),
		ConfirmedBy:    item.ConfirmedBy(),
		ConfirmedAt:    item.ConfirmedAt(),
	}
}

// toDomain converts a database DTO to a picking list aggregate.
// Reconstructs the complete aggregate including all items using RestorePickingList.
func toDomain(dto PickingListDTO) (*pickinglist.PickingList, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*pickinglist.PickingItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return pickinglist.RestorePickingList(
		id,
		dto.ListNumber,
		dto.Warehouse,
		pickinglist.PickingType(dto.PickingType),
		pickinglist.Priority(dto.Priority),
		pickinglist.Status(dto.Status),
		dto.AssignedTo,
		dto.EstimatedMinutes,
		dto.ActualMinutes,
		dto.StartedAt,
		dto.CompletedAt,
		dto.CreatedAt,
		items,
	)
}

// itemToDomain converts an item row to a picking item entity.
func itemToDomain(dto PickingItemDTO) (*pickinglist.PickingItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	listID, err := kernel.UUIDFromBytes(dto.PickingListID[:])
	if err != nil {
		return nil, err
	}

	if len(dto.Zone) != 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("zone",
			fmt.Errorf("%q is not a single zone letter", dto.Zone))
	}

	var loc kernel.Location
	if dto.LocationX != nil && dto.LocationY != nil {
		loc, err = kernel.NewLocationWithCoordinates(
			kernel.Zone(dto.Zone[0]), dto.Aisle, dto.Shelf, *dto.LocationX, *dto.LocationY)
	} else {
		loc, err = kernel.NewLocation(kernel.Zone(dto.Zone[0]), dto.Aisle, dto.Shelf)
	}
	if err != nil {
		return nil, err
	}

	return pickinglist.RestorePickingItem(
		id,
		listID,
		dto.SKU,
		dto.ProductName,
		dto.OrderNumber,
		loc,
		dto.SequenceNumber,
		dto.RequiredQty,
		dto.PickedQty,
		pickinglist.ItemStatus(dto.Status),
		pickinglist.IssueType(dto.IssueType),
		dto.IssueNote,
		dto.ConfirmedBy,
		dto.ConfirmedAt,
	)
}
