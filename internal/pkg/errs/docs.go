// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the dispatch core:
//   - ObjectNotFoundError: a lookup by identifier matched no record
//   - ValueIsInvalidError / ValueIsRequiredError: validation failures
//   - ConflictError: lost race or redundant state transition
//   - PermissionDeniedError: actor may not mutate the targeted record
//   - StoreUnavailableError: transient persistence failure, retryable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Only StoreUnavailableError is eligible for caller-side retry; all other
// classes are terminal for the request and are surfaced to the end user.
package errs
