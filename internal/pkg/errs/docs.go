// Package errs provides standardized error types for the picking application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - StateConflictError: For illegal status transitions and lost concurrent races
//   - LocationUnresolvedError: For SKUs with no resolvable storage location
//   - ExternalDependencyError: For failed or timed-out collaborator calls
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrStateConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach lets callers branch on error classes with
// errors.Is rather than string matching, which the API layer relies on to
// translate failures into worker-actionable responses.
package errs
