package pickinglist

import (
	"fmt"

	"picking/internal/pkg/errs"
)

// ItemStatus represents the resolution state of a single picking item.
//
// State transitions:
//
//	Pending ──confirm──> Picked   (pickedQty >= requiredQty)
//	Pending ──confirm──> Shortage (pickedQty < requiredQty)
//	Pending ──report issue──> Skipped
//
// Every non-pending status is terminal: once an item is resolved it is
// immutable, which is what makes the stock-decrement notification on confirm
// an exactly-once event.
type ItemStatus int

const (
	// ItemUnknown represents an invalid or undefined item status.
	ItemUnknown ItemStatus = iota

	// ItemPending is the initial status of every item on a freshly created list.
	ItemPending

	// ItemPicked indicates the item was confirmed with the full required quantity.
	ItemPicked

	// ItemSkipped indicates the worker reported an issue instead of picking.
	ItemSkipped

	// ItemShortage indicates the item was confirmed with less than the
	// required quantity. The confirmed quantity is recorded as submitted,
	// never silently clamped.
	ItemShortage
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:  "unknown",
		ItemPending:  "pending",
		ItemPicked:   "picked",
		ItemSkipped:  "skipped",
		ItemShortage: "shortage",
	}
}

// Validate checks if the ItemStatus value is valid.
func (s ItemStatus) Validate() error {
	if s < ItemPending || s > ItemShortage {
		return errs.NewValueIsInvalidErrorWithCause("item status",
			fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String returns the wire name of the item status.
// This method implements the fmt.Stringer interface.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IssueType classifies why a worker could not pick an item.
type IssueType int

const (
	// IssueUnknown represents an invalid or undefined issue type.
	IssueUnknown IssueType = iota

	// IssueNotFound: the product is not at the location at all.
	IssueNotFound

	// IssueWrongLocation: a different product occupies the location.
	IssueWrongLocation

	// IssueDamaged: the product is present but unsellable.
	IssueDamaged

	// IssueShortage: the location holds less than the required quantity and
	// the worker chose to skip rather than confirm a partial pick.
	IssueShortage
)

func getIssueTypeStrings() map[IssueType]string {
	return map[IssueType]string{
		IssueUnknown:       "unknown",
		IssueNotFound:      "not_found",
		IssueWrongLocation: "wrong_location",
		IssueDamaged:       "damaged",
		IssueShortage:      "shortage",
	}
}

// IssueTypeFromString parses an issue type from its wire representation.
func IssueTypeFromString(s string) (IssueType, error) {
	for issueType, str := range getIssueTypeStrings() {
		if issueType != IssueUnknown && str == s {
			return issueType, nil
		}
	}
	return IssueUnknown, errs.NewValueIsInvalidErrorWithCause("issueType",
		fmt.Errorf("%q is not a valid issue type", s))
}

// Validate checks if the IssueType value is valid.
func (t IssueType) Validate() error {
	if t < IssueNotFound || t > IssueShortage {
		return errs.NewValueIsInvalidErrorWithCause("issueType",
			fmt.Errorf("%d is not a valid issue type", t))
	}
	return nil
}

// String returns the wire name of the issue type.
// This method implements the fmt.Stringer interface.
func (t IssueType) String() string {
	if str, ok := getIssueTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
