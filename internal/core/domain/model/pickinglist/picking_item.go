package pickinglist

import (
	"errors"
	"fmt"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
)

// ErrPickingItemIsNotConstructed is returned when a PickingItem instance was not
// created through the NewPickingItem or RestorePickingItem factory methods.
var ErrPickingItemIsNotConstructed = errors.New(
	"PickingItem must be created via NewPickingItem or RestorePickingItem constructors")

// PickingItem is one line of work within a picking list: a SKU, a required
// quantity, and the storage location to retrieve it from. Items are created
// in route order (sequenceNumber) together with their list and resolved at
// most once: a pending item either gets confirmed (picked/shortage) or
// skipped with an issue, after which it is immutable.
type PickingItem struct {
	// id is the unique identifier of the item
	id kernel.UUID

	// listID references the owning picking list
	listID kernel.UUID

	// sku and productName describe the product to pick
	sku         string
	productName string

	// orderNumber references the source order line; batch and wave lists keep
	// one item per order line even when co-located, so pack-out can split by order
	orderNumber string

	// location is the storage cell to pick from
	location kernel.Location

	// sequenceNumber is the item's position within the optimized route (1..N)
	sequenceNumber int

	// requiredQty is the quantity to pick (> 0)
	requiredQty int

	// pickedQty is the quantity actually retrieved (>= 0, default 0)
	pickedQty int

	// status is the resolution state of the item
	status ItemStatus

	// issueType and issueNote are set when the worker reports an issue
	issueType IssueType
	issueNote string

	// confirmedBy and confirmedAt record who resolved the item and when
	confirmedBy string
	confirmedAt *time.Time

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewPickingItem creates a pending PickingItem in route order.
//
// Parameters:
//   - id: unique identifier of the item
//   - listID: identifier of the owning list
//   - sku: product SKU (required)
//   - productName: display name of the product
//   - orderNumber: source order line reference (required)
//   - location: resolved storage cell (must be constructed)
//   - sequenceNumber: position within the optimized route (>= 1)
//   - requiredQty: quantity to pick (> 0)
func NewPickingItem(
	id kernel.UUID,
	listID kernel.UUID,
	sku string,
	productName string,
	orderNumber string,
	location kernel.Location,
	sequenceNumber int,
	requiredQty int,
) (*PickingItem, error) {
	item := &PickingItem{
		status:        ItemPending,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setListID(listID),
		item.setSKU(sku),
		item.setOrderNumber(orderNumber),
		item.setLocation(location),
		item.setSequenceNumber(sequenceNumber),
		item.setRequiredQty(requiredQty),
	); err != nil {
		return nil, err
	}

	item.productName = productName
	return item, nil
}

// RestorePickingItem reconstructs a PickingItem from persistence.
// Unlike NewPickingItem it accepts any valid resolution state, but it still
// validates every invariant so corrupted rows cannot produce invalid items.
func RestorePickingItem(
	id kernel.UUID,
	listID kernel.UUID,
	sku string,
	productName string,
	orderNumber string,
	location kernel.Location,
	sequenceNumber int,
	requiredQty int,
	pickedQty int,
	status ItemStatus,
	issueType IssueType,
	issueNote string,
	confirmedBy string,
	confirmedAt *time.Time,
) (*PickingItem, error) {
	item, err := NewPickingItem(id, listID, sku, productName, orderNumber, location, sequenceNumber, requiredQty)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if pickedQty < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("pickedQty",
			fmt.Errorf("%d is not greater than or equal to 0", pickedQty))
	}
	if issueType != IssueUnknown {
		if err = issueType.Validate(); err != nil {
			return nil, err
		}
	}

	item.pickedQty = pickedQty
	item.status = status
	item.issueType = issueType
	item.issueNote = issueNote
	item.confirmedBy = confirmedBy
	item.confirmedAt = confirmedAt
	return item, nil
}

// Validate ensures the PickingItem was properly constructed.
func (i *PickingItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrPickingItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *PickingItem) IsEqual(other *PickingItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *PickingItem) ID() kernel.UUID {
	return i.id
}

// ListID returns the identifier of the owning picking list.
func (i *PickingItem) ListID() kernel.UUID {
	return i.listID
}

// SKU returns the product SKU.
func (i *PickingItem) SKU() string {
	return i.sku
}

// ProductName returns the product display name.
func (i *PickingItem) ProductName() string {
	return i.productName
}

// OrderNumber returns the source order line reference.
func (i *PickingItem) OrderNumber() string {
	return i.orderNumber
}

// Location returns the storage cell to pick from.
func (i *PickingItem) Location() kernel.Location {
	return i.location
}

// SequenceNumber returns the item's position within the optimized route.
func (i *PickingItem) SequenceNumber() int {
	return i.sequenceNumber
}

// RequiredQty returns the quantity to pick.
func (i *PickingItem) RequiredQty() int {
	return i.requiredQty
}

// PickedQty returns the quantity actually retrieved.
func (i *PickingItem) PickedQty() int {
	return i.pickedQty
}

// Status returns the resolution state of the item.
func (i *PickingItem) Status() ItemStatus {
	return i.status
}

// IssueType returns the reported issue type, or IssueUnknown if none.
func (i *PickingItem) IssueType() IssueType {
	return i.issueType
}

// IssueNote returns the free-text note attached to a reported issue.
func (i *PickingItem) IssueNote() string {
	return i.issueNote
}

// ConfirmedBy returns the worker who resolved the item, or "" while pending.
func (i *PickingItem) ConfirmedBy() string {
	return i.confirmedBy
}

// ConfirmedAt returns when the item was resolved, or nil while pending.
func (i *PickingItem) ConfirmedAt() *time.Time {
	return i.confirmedAt
}

// IsPending reports whether the item still awaits resolution.
func (i *PickingItem) IsPending() bool {
	return i.status == ItemPending
}

// Confirm resolves a pending item with the quantity the worker retrieved.
//
// Business rules:
//   - Only a pending item can be confirmed; a second confirm is a StateConflictError
//     regardless of the submitted quantity, so duplicate submissions are observable
//   - pickedQty must be >= 0
//   - pickedQty >= requiredQty resolves to ItemPicked; anything less resolves to
//     ItemShortage with the quantity recorded as submitted, never clamped
//   - An optional scanned barcode, when present, must match the item's SKU
func (i *PickingItem) Confirm(pickedQty int, scannedBarcode string, confirmedBy string, at time.Time) error {
	if err := i.Validate(); err != nil {
		return err
	}

	if i.status != ItemPending {
		return errs.NewStateConflictError("picking item", i.status.String(), "confirm")
	}
	if pickedQty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("pickedQty",
			fmt.Errorf("%d is not greater than or equal to 0", pickedQty))
	}
	if confirmedBy == "" {
		return errs.NewValueIsRequiredError("confirmedBy")
	}
	if scannedBarcode != "" && scannedBarcode != i.sku {
		return errs.NewValueIsInvalidErrorWithCause("barcodeScan",
			fmt.Errorf("scanned %q does not match item SKU %q", scannedBarcode, i.sku))
	}

	i.pickedQty = pickedQty
	if pickedQty >= i.requiredQty {
		i.status = ItemPicked
	} else {
		i.status = ItemShortage
	}
	i.confirmedBy = confirmedBy
	i.confirmedAt = &at
	return nil
}

// ReportIssue resolves a pending item as skipped with a classified issue.
// No stock movement is associated with a skipped item.
func (i *PickingItem) ReportIssue(issueType IssueType, note string, reportedBy string, at time.Time) error {
	if err := i.Validate(); err != nil {
		return err
	}

	if i.status != ItemPending {
		return errs.NewStateConflictError("picking item", i.status.String(), "report issue on")
	}
	if err := issueType.Validate(); err != nil {
		return err
	}
	if reportedBy == "" {
		return errs.NewValueIsRequiredError("reportedBy")
	}

	i.status = ItemSkipped
	i.issueType = issueType
	i.issueNote = note
	i.confirmedBy = reportedBy
	i.confirmedAt = &at
	return nil
}

// setID validates and sets the item's unique identifier.
func (i *PickingItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setListID validates and sets the owning list reference.
func (i *PickingItem) setListID(listID kernel.UUID) error {
	if err := listID.Validate(); err != nil {
		return err
	}
	i.listID = listID
	return nil
}

// setSKU validates and sets the product SKU.
func (i *PickingItem) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	i.sku = sku
	return nil
}

// setOrderNumber validates and sets the source order reference.
func (i *PickingItem) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	i.orderNumber = orderNumber
	return nil
}

// setLocation validates and sets the storage cell.
func (i *PickingItem) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	i.location = location
	return nil
}

// setSequenceNumber validates and sets the route position.
func (i *PickingItem) setSequenceNumber(sequenceNumber int) error {
	if sequenceNumber < 1 {
		return errs.NewValueIsInvalidErrorWithCause("sequenceNumber",
			fmt.Errorf("%d is not greater than 0", sequenceNumber))
	}
	i.sequenceNumber = sequenceNumber
	return nil
}

// setRequiredQty validates and sets the quantity to pick.
func (i *PickingItem) setRequiredQty(requiredQty int) error {
	if requiredQty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requiredQty",
			fmt.Errorf("%d is not greater than 0", requiredQty))
	}
	i.requiredQty = requiredQty
	return nil
}
