package pickinglist

import (
	"fmt"

	"picking/internal/pkg/errs"
)

// PickingType determines how orders are consolidated into a list and which
// route heuristic sequences its items.
type PickingType int

const (
	// TypeUnknown represents an invalid or undefined picking type.
	TypeUnknown PickingType = iota

	// TypeSingle: one order, one list, one trip. Nearest-neighbor sequencing.
	TypeSingle

	// TypeBatch: several orders consolidated into a single trip.
	// Nearest-neighbor sequencing.
	TypeBatch

	// TypeWave: several orders consolidated but restricted to a subset of
	// warehouse zones per wave. Zone-based sequencing.
	TypeWave
)

func getPickingTypeStrings() map[PickingType]string {
	return map[PickingType]string{
		TypeUnknown: "unknown",
		TypeSingle:  "single",
		TypeBatch:   "batch",
		TypeWave:    "wave",
	}
}

// PickingTypeFromString parses a picking type from its wire representation.
func PickingTypeFromString(s string) (PickingType, error) {
	for pickingType, str := range getPickingTypeStrings() {
		if pickingType != TypeUnknown && str == s {
			return pickingType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("pickingType",
		fmt.Errorf("%q is not a valid picking type", s))
}

// Validate checks if the PickingType value is valid.
func (t PickingType) Validate() error {
	if t < TypeSingle || t > TypeWave {
		return errs.NewValueIsInvalidErrorWithCause("pickingType",
			fmt.Errorf("%d is not a valid picking type", t))
	}
	return nil
}

// String returns the wire name of the picking type.
// This method implements the fmt.Stringer interface.
func (t PickingType) String() string {
	if str, ok := getPickingTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Priority ranks a picking list from 0 (lowest) to 3 (urgent).
type Priority int

const (
	// PriorityMin is the lowest list priority.
	PriorityMin Priority = 0
	// PriorityMax is the highest list priority.
	PriorityMax Priority = 3
)

// Validate checks if the Priority value is within bounds.
func (p Priority) Validate() error {
	if p < PriorityMin || p > PriorityMax {
		return errs.NewValueIsOutOfRangeError("priority", int(p), int(PriorityMin), int(PriorityMax))
	}
	return nil
}
