package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each error kind. Use errors.Is against these to branch
// on the error class without inspecting messages.
var (
	// ErrObjectNotFound indicates a referenced object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates a value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange indicates a value is outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired indicates a required value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrStateConflict indicates an operation is not valid for the current
	// status of an object, including transitions lost to a concurrent actor.
	ErrStateConflict = errors.New("state conflict")

	// ErrLocationUnresolved indicates a SKU has no resolvable storage location
	// in the requested warehouse.
	ErrLocationUnresolved = errors.New("location unresolved")

	// ErrExternalDependency indicates an external collaborator was unreachable
	// or failed; the underlying cause is always attached.
	ErrExternalDependency = errors.New("external dependency failed")
)

// sanitize removes line breaks from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError is returned when an object referenced by ID cannot be found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and ID.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails a validation rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value lies outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// StateConflictError is returned when an operation names a transition that is
// not legal for the object's current status, or when a concurrent actor already
// transitioned the object (a guarded update affected zero rows).
type StateConflictError struct {
	ParamName string
	Status    any
	Action    string
	Cause     error
}

// NewStateConflictError creates a StateConflictError for the given object, status and action.
func NewStateConflictError(paramName string, status any, action string) *StateConflictError {
	return &StateConflictError{ParamName: paramName, Status: status, Action: action}
}

// NewStateConflictErrorWithCause creates a StateConflictError wrapping an underlying cause.
func NewStateConflictErrorWithCause(paramName string, status any, action string, cause error) *StateConflictError {
	return &StateConflictError{ParamName: paramName, Status: status, Action: action, Cause: cause}
}

func (e *StateConflictError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s %s in status %v", ErrStateConflict, e.Action, e.ParamName, e.Status)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// LocationUnresolvedError is returned when a SKU in an order set has no
// resolvable storage location in the given warehouse.
type LocationUnresolvedError struct {
	SKU       string
	Warehouse string
	Cause     error
}

// NewLocationUnresolvedError creates a LocationUnresolvedError for the given SKU and warehouse.
func NewLocationUnresolvedError(sku, warehouse string) *LocationUnresolvedError {
	return &LocationUnresolvedError{SKU: sku, Warehouse: warehouse}
}

// NewLocationUnresolvedErrorWithCause creates a LocationUnresolvedError wrapping an underlying cause.
func NewLocationUnresolvedErrorWithCause(sku, warehouse string, cause error) *LocationUnresolvedError {
	return &LocationUnresolvedError{SKU: sku, Warehouse: warehouse, Cause: cause}
}

func (e *LocationUnresolvedError) Error() string {
	msg := fmt.Sprintf("%s: sku is: %s, warehouse is: %s", ErrLocationUnresolved, e.SKU, e.Warehouse)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *LocationUnresolvedError) Unwrap() error {
	return ErrLocationUnresolved
}

// ExternalDependencyError is returned when an external collaborator call failed
// or timed out. The dependency name and underlying cause are always preserved.
type ExternalDependencyError struct {
	Dependency string
	Cause      error
}

// NewExternalDependencyError creates an ExternalDependencyError for the given
// dependency, wrapping the underlying cause.
func NewExternalDependencyError(dependency string, cause error) *ExternalDependencyError {
	return &ExternalDependencyError{Dependency: dependency, Cause: cause}
}

func (e *ExternalDependencyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrExternalDependency, e.Dependency, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrExternalDependency, e.Dependency)
}

func (e *ExternalDependencyError) Unwrap() error {
	return ErrExternalDependency
}
