// Package errs provides standardized error types for the supply chain backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrCapacityExceeded)
//   - a struct type carrying the structured error fields
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() to the sentinel
//
// The generic validation errors (value required/invalid/out of range, object
// not found) cover constructor and repository failures. The domain errors
// (status conflict, capacity exceeded, forbidden, transient store) form the
// taxonomy that transition callers branch on: a status conflict carries the
// actual current status, a capacity rejection carries both the required and
// available amounts, so callers can display operationally meaningful numbers
// instead of a generic failure.
package errs
