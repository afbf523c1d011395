package pickinglist

import (
	"fmt"

	"picking/internal/pkg/errs"
)

// Status represents the lifecycle state of a picking list.
// It implements a state machine with defined transitions to ensure
// lists follow the correct warehouse workflow.
//
// State transitions:
//
//	Created ──assign──> Assigned ──start──> InProgress ──complete──> Completed
//	   │                    │
//	   ├──────── start ─────┘ (implicit assignment)
//	   │                    │
//	   └──cancel──> Cancelled <──cancel──┘
//
// Completed and Cancelled are terminal; there is no path back to Created
// or out of a terminal status. Any call naming a transition not present
// above fails with a StateConflictError.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a picking list is first consolidated.
	Created

	// Assigned indicates the list has been assigned to a worker but picking
	// has not started yet.
	Assigned

	// InProgress indicates a worker has started picking the list.
	InProgress

	// Completed indicates every item on the list was resolved and the list
	// was closed by its worker. Terminal.
	Completed

	// Cancelled indicates the list was withdrawn before picking started.
	// Terminal; cancelled lists are never deleted.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Created:    "created",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "created",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a status from its wire representation.
// Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Created, Assigned, InProgress, Completed, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("in_progress" etc.).
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Created -> Assigned
//
// Any other source status fails with a StateConflictError.
func (s Status) Assign() (Status, error) {
	if s != Created {
		return 0, errs.NewStateConflictError("picking list", s.String(), "assign")
	}

	return Assigned, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Created -> InProgress (implicit assignment to the starting worker)
//   - Assigned -> InProgress
//
// Any other source status fails with a StateConflictError. The aggregate
// additionally checks that the starting worker matches the assignee.
func (s Status) Start() (Status, error) {
	if s != Created && s != Assigned {
		return 0, errs.NewStateConflictError("picking list", s.String(), "start")
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Any other source status fails with a StateConflictError. The aggregate
// additionally requires every item to have left the pending status.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewStateConflictError("picking list", s.String(), "complete")
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//   - Assigned -> Cancelled
//
// Once picking is in progress the only forward path is per-item resolution
// followed by complete; cancel fails with a StateConflictError.
func (s Status) Cancel() (Status, error) {
	if s != Created && s != Assigned {
		return 0, errs.NewStateConflictError("picking list", s.String(), "cancel")
	}

	return Cancelled, nil
}
