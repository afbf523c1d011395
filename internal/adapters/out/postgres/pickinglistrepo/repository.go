package pickinglistrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickingListRepository implements PickingListRepository using GORM.
type GormPickingListRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPickingListRepository creates a new GORM picking list repository.
func NewGormPickingListRepository(db *gorm.DB, tracker aggregateTracker) *GormPickingListRepository {
	return &GormPickingListRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new picking list with all of its items to the database.
func (r *GormPickingListRepository) Add(ctx context.Context, aggregate *pickinglist.PickingList) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a picking list by ID with its items in sequence order.
func (r *GormPickingListRepository) Get(ctx context.Context, id kernel.UUID) (*pickinglist.PickingList, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickingListDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sequence_number") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickingList", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateGuarded saves the list's mutable state, guarded by the status the
// caller loaded the aggregate in. The UPDATE matches zero rows when a
// concurrent actor already moved the list out of that status, in which case a
// StateConflictError is returned and nothing is written.
func (r *GormPickingListRepository) UpdateGuarded(
	ctx context.Context, aggregate *pickinglist.PickingList, expectedStatus pickinglist.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PickingListDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Updates(map[string]any{
			"status":         dto.Status,
			"assigned_to":    dto.AssignedTo,
			"actual_minutes": dto.ActualMinutes,
			"started_at":     dto.StartedAt,
			"completed_at":   dto.CompletedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictErrorWithCause(
			"picking list", expectedStatus.String(), "update",
			fmt.Errorf("list %s left status %s concurrently", aggregate.ID(), expectedStatus))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateItemGuarded saves a single item's resolution, guarded by the item row
// still being pending. Zero matched rows means another actor resolved the item
// first; the StateConflictError makes the lost race observable to the caller
// and keeps the resolution exactly-once across processes.
func (r *GormPickingListRepository) UpdateItemGuarded(ctx context.Context, item *pickinglist.PickingItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&PickingItemDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(pickinglist.ItemPending)).
		Updates(map[string]any{
			"picked_qty":   dto.PickedQty,
			"status":       dto.Status,
			"issue_type":   dto.IssueType,
			"issue_note":   dto.IssueNote,
			"confirmed_by": dto.ConfirmedBy,
			"confirmed_at": dto.ConfirmedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictErrorWithCause(
			"picking item", pickinglist.ItemPending.String(), "resolve",
			fmt.Errorf("item %s was resolved concurrently", item.ID()))
	}

	return nil
}

// GetAllInCreatedStatusBefore retrieves every list still in Created status
// created before the cutoff, items included.
func (r *GormPickingListRepository) GetAllInCreatedStatusBefore(
	ctx context.Context, cutoff time.Time,
) ([]*pickinglist.PickingList, error) {
	var dtos []PickingListDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sequence_number") }).
		Find(&dtos, "status = ? AND created_at < ?", int(pickinglist.Created), cutoff).Error
	if err != nil {
		return nil, err
	}

	lists := make([]*pickinglist.PickingList, 0, len(dtos))
	for _, dto := range dtos {
		list, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		lists = append(lists, list)
	}

	return lists, nil
}
