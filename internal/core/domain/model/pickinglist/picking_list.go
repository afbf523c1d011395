package pickinglist

import (
	"errors"
	"fmt"
	"math"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
)

// ErrPickingListIsNotConstructed is returned when a PickingList instance was not
// created through the NewPickingList or RestorePickingList factory methods.
var ErrPickingListIsNotConstructed = errors.New(
	"PickingList must be created via NewPickingList or RestorePickingList constructors")

// Progress is a read-only summary of how far a list has been picked.
type Progress struct {
	// Total is the number of items on the list.
	Total int
	// Completed is the number of items that have left the pending status.
	Completed int
	// Remaining is the number of items still pending.
	Remaining int
	// Percentage is round(Completed/Total*100); 0 for an empty list.
	Percentage int
}

// PickingList is the aggregate root of the picking domain: a sequenced unit of
// work directing one worker to retrieve a set of items. The list owns its
// items; all mutations go through the aggregate so the status state machine
// and the item resolution rules cannot be bypassed.
//
// Invariants:
//   - The list owns at least one item
//   - Item sequence numbers are a permutation of 1..N (no gaps, no duplicates)
//   - The list can complete only when no item is pending
//   - Status transitions follow the state machine documented on Status;
//     there is no path out of Completed or Cancelled
type PickingList struct {
	// id is the unique identifier of the list
	id kernel.UUID

	// listNumber is the unique human-readable reference ("PL-3F2A91BC")
	listNumber string

	// warehouse identifies the warehouse the list is picked in
	warehouse string

	// pickingType determines consolidation and route heuristic
	pickingType PickingType

	// priority ranks the list 0..3
	priority Priority

	// status is the lifecycle state of the list
	status Status

	// assignedTo is the worker the list is assigned to ("" while unassigned)
	assignedTo string

	// estimatedMinutes is the route optimizer's travel+pick estimate
	estimatedMinutes float64

	// actualMinutes is the measured duration, set on completion
	actualMinutes *int

	startedAt   *time.Time
	completedAt *time.Time
	createdAt   time.Time

	// items are owned by the list, kept in sequence order
	items []*PickingItem

	// isConstructed ensures the list was created via a constructor
	isConstructed bool
}

// NewPickingList creates a picking list in Created status owning the given
// items. The items must already be sequenced in route order; consolidation and
// route optimization happen before the aggregate exists, so a list is never
// observable in a partially sequenced state.
func NewPickingList(
	id kernel.UUID,
	listNumber string,
	warehouse string,
	pickingType PickingType,
	priority Priority,
	estimatedMinutes float64,
	createdAt time.Time,
	items []*PickingItem,
) (*PickingList, error) {
	list := &PickingList{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		list.setID(id),
		list.setListNumber(listNumber),
		list.setWarehouse(warehouse),
		list.setPickingType(pickingType),
		list.setPriority(priority),
		list.setItems(items),
	); err != nil {
		return nil, err
	}

	list.estimatedMinutes = estimatedMinutes
	list.createdAt = createdAt
	return list, nil
}

// RestorePickingList reconstructs a PickingList from persistence.
// Accepts any valid status but revalidates every structural invariant.
func RestorePickingList(
	id kernel.UUID,
	listNumber string,
	warehouse string,
	pickingType PickingType,
	priority Priority,
	status Status,
	assignedTo string,
	estimatedMinutes float64,
	actualMinutes *int,
	startedAt *time.Time,
	completedAt *time.Time,
	createdAt time.Time,
	items []*PickingItem,
) (*PickingList, error) {
	list, err := NewPickingList(id, listNumber, warehouse, pickingType, priority, estimatedMinutes, createdAt, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if (status == Assigned || status == InProgress || status == Completed) && assignedTo == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("assignedTo",
			fmt.Errorf("status %s requires an assigned worker", status))
	}

	list.status = status
	list.assignedTo = assignedTo
	list.actualMinutes = actualMinutes
	list.startedAt = startedAt
	list.completedAt = completedAt
	return list, nil
}

// Validate ensures the PickingList was properly constructed.
func (l *PickingList) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrPickingListIsNotConstructed
	}
	return nil
}

// IsEqual compares two lists by their unique identifiers.
func (l *PickingList) IsEqual(other *PickingList) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the list's unique identifier.
func (l *PickingList) ID() kernel.UUID {
	return l.id
}

// ListNumber returns the unique human-readable list reference.
func (l *PickingList) ListNumber() string {
	return l.listNumber
}

// Warehouse returns the warehouse the list is picked in.
func (l *PickingList) Warehouse() string {
	return l.warehouse
}

// PickingType returns the list's consolidation type.
func (l *PickingList) PickingType() PickingType {
	return l.pickingType
}

// Priority returns the list priority.
func (l *PickingList) Priority() Priority {
	return l.priority
}

// Status returns the lifecycle state of the list.
func (l *PickingList) Status() Status {
	return l.status
}

// AssignedTo returns the assigned worker, or "" while unassigned.
func (l *PickingList) AssignedTo() string {
	return l.assignedTo
}

// EstimatedMinutes returns the route optimizer's travel+pick estimate.
func (l *PickingList) EstimatedMinutes() float64 {
	return l.estimatedMinutes
}

// ActualMinutes returns the measured picking duration, or nil until completion.
func (l *PickingList) ActualMinutes() *int {
	return l.actualMinutes
}

// StartedAt returns when picking started, or nil before the start transition.
func (l *PickingList) StartedAt() *time.Time {
	return l.startedAt
}

// CompletedAt returns when the list was completed, or nil before completion.
func (l *PickingList) CompletedAt() *time.Time {
	return l.completedAt
}

// CreatedAt returns when the list was created.
func (l *PickingList) CreatedAt() time.Time {
	return l.createdAt
}

// Items returns the owned items in sequence order.
// The slice is a copy; the items themselves are the aggregate's entities and
// must only be mutated through the aggregate's methods.
func (l *PickingList) Items() []*PickingItem {
	items := make([]*PickingItem, len(l.items))
	copy(items, l.items)
	return items
}

// Item returns the owned item with the given ID.
func (l *PickingList) Item(itemID kernel.UUID) (*PickingItem, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}
	for _, item := range l.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("pickingItemId", itemID.String())
}

// Assign assigns the list to a worker.
//
// Business rules:
//   - Only a Created list can be assigned
//   - The worker identifier must not be empty
func (l *PickingList) Assign(worker string) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if worker == "" {
		return errs.NewValueIsRequiredError("worker")
	}

	newStatus, err := l.status.Assign()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.assignedTo = worker
	return nil
}

// Start moves the list to InProgress for the given worker.
//
// Business rules:
//   - A Created list may be started by any worker (implicit assignment)
//   - An Assigned list may only be started by its assignee; anyone else
//     gets a StateConflictError so the client refetches instead of resubmitting
func (l *PickingList) Start(worker string, at time.Time) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if worker == "" {
		return errs.NewValueIsRequiredError("worker")
	}
	if l.status == Assigned && l.assignedTo != worker {
		return errs.NewStateConflictErrorWithCause("picking list", l.status.String(), "start",
			fmt.Errorf("list is assigned to %s", l.assignedTo))
	}

	newStatus, err := l.status.Start()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.assignedTo = worker
	l.startedAt = &at
	return nil
}

// Cancel withdraws the list before picking starts. Cancelled is a terminal
// status, not a deletion; the list and its items remain queryable.
func (l *PickingList) Cancel() error {
	if err := l.Validate(); err != nil {
		return err
	}

	newStatus, err := l.status.Cancel()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// ConfirmItem resolves a pending item with the quantity the worker retrieved.
// Legal only while the list is InProgress. Returns the resolved item so the
// caller can persist it and emit the stock-decrement notification.
func (l *PickingList) ConfirmItem(
	itemID kernel.UUID, pickedQty int, scannedBarcode string, confirmedBy string, at time.Time,
) (*PickingItem, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if l.status != InProgress {
		return nil, errs.NewStateConflictError("picking list", l.status.String(), "confirm item on")
	}

	item, err := l.Item(itemID)
	if err != nil {
		return nil, err
	}
	if err = item.Confirm(pickedQty, scannedBarcode, confirmedBy, at); err != nil {
		return nil, err
	}
	return item, nil
}

// ReportItemIssue resolves a pending item as skipped with a classified issue.
// Legal only while the list is InProgress. No stock movement is associated.
func (l *PickingList) ReportItemIssue(
	itemID kernel.UUID, issueType IssueType, note string, reportedBy string, at time.Time,
) (*PickingItem, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if l.status != InProgress {
		return nil, errs.NewStateConflictError("picking list", l.status.String(), "report issue on")
	}

	item, err := l.Item(itemID)
	if err != nil {
		return nil, err
	}
	if err = item.ReportIssue(issueType, note, reportedBy, at); err != nil {
		return nil, err
	}
	return item, nil
}

// Complete closes an InProgress list.
//
// Business rules:
//   - Only the assigned worker may complete the list
//   - Every item must have left the pending status
//   - actualMinutes is the rounded wall-clock duration since Start
func (l *PickingList) Complete(worker string, at time.Time) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if worker == "" {
		return errs.NewValueIsRequiredError("worker")
	}
	if l.status == InProgress && l.assignedTo != worker {
		return errs.NewStateConflictErrorWithCause("picking list", l.status.String(), "complete",
			fmt.Errorf("list is assigned to %s", l.assignedTo))
	}
	if pending := l.Progress().Remaining; pending > 0 && l.status == InProgress {
		return errs.NewStateConflictErrorWithCause("picking list", l.status.String(), "complete",
			fmt.Errorf("%d items are still pending", pending))
	}

	newStatus, err := l.status.Complete()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.completedAt = &at
	if l.startedAt != nil {
		minutes := int(math.Round(at.Sub(*l.startedAt).Minutes()))
		l.actualMinutes = &minutes
	}
	return nil
}

// NextItem returns the pending item with the lowest sequence number,
// or nil when every item is resolved.
func (l *PickingList) NextItem() *PickingItem {
	for _, item := range l.items {
		if item.IsPending() {
			return item
		}
	}
	return nil
}

// Progress summarizes how far the list has been picked.
func (l *PickingList) Progress() Progress {
	total := len(l.items)
	completed := 0
	for _, item := range l.items {
		if !item.IsPending() {
			completed++
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return Progress{
		Total:      total,
		Completed:  completed,
		Remaining:  total - completed,
		Percentage: percentage,
	}
}

// setID validates and sets the list's unique identifier.
func (l *PickingList) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

// setListNumber validates and sets the human-readable reference.
func (l *PickingList) setListNumber(listNumber string) error {
	if listNumber == "" {
		return errs.NewValueIsRequiredError("listNumber")
	}
	l.listNumber = listNumber
	return nil
}

// setWarehouse validates and sets the warehouse identifier.
func (l *PickingList) setWarehouse(warehouse string) error {
	if warehouse == "" {
		return errs.NewValueIsRequiredError("warehouse")
	}
	l.warehouse = warehouse
	return nil
}

// setPickingType validates and sets the consolidation type.
func (l *PickingList) setPickingType(pickingType PickingType) error {
	if err := pickingType.Validate(); err != nil {
		return err
	}
	l.pickingType = pickingType
	return nil
}

// setPriority validates and sets the list priority.
func (l *PickingList) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	l.priority = priority
	return nil
}

// setItems validates the owned items: at least one, every item constructed,
// sequence numbers a permutation of 1..N. Items are stored in sequence order.
func (l *PickingList) setItems(items []*PickingItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[int]bool, len(items))
	ordered := make([]*PickingItem, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}

		seq := item.SequenceNumber()
		if seq < 1 || seq > len(items) {
			return errs.NewValueIsOutOfRangeError("sequenceNumber", seq, 1, len(items))
		}
		if seen[seq] {
			return errs.NewValueIsInvalidErrorWithCause("sequenceNumber",
				fmt.Errorf("sequence number %d is duplicated", seq))
		}
		seen[seq] = true
		ordered[seq-1] = item
	}

	l.items = ordered
	return nil
}
