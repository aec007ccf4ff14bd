package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fulfillment pipeline taxonomy.
var (
	ErrStatusConflict   = errors.New("order status conflict")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrForbidden        = errors.New("operation forbidden")
	ErrTransientStore   = errors.New("transient store failure")
)

// StatusConflictError indicates that an order's actual status differs from the
// status a transition expects. Carries the actual status so the caller can
// re-fetch and decide, instead of retrying blindly. Never auto-retried.
type StatusConflictError struct {
	OrderID        string
	ExpectedStatus string
	ActualStatus   string
}

func NewStatusConflictError(orderID, expectedStatus, actualStatus string) *StatusConflictError {
	return &StatusConflictError{
		OrderID:        orderID,
		ExpectedStatus: expectedStatus,
		ActualStatus:   actualStatus,
	}
}

func (e *StatusConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s is %s, expected %s",
		ErrStatusConflict, e.OrderID, e.ActualStatus, e.ExpectedStatus))
}

func (e *StatusConflictError) Unwrap() error {
	return ErrStatusConflict
}

// CapacityExceededError indicates that the required amount exceeds the
// currently available capacity of a resource. Terminal for that resource
// choice; the caller should pick a different resource, not retry this one.
type CapacityExceededError struct {
	ResourceID string
	Required   float64
	Available  float64
}

func NewCapacityExceededError(resourceID string, required, available float64) *CapacityExceededError {
	return &CapacityExceededError{ResourceID: resourceID, Required: required, Available: available}
}

func (e *CapacityExceededError) Error() string {
	return sanitize(fmt.Sprintf("%s: resource %s requires %g, available %g",
		ErrCapacityExceeded, e.ResourceID, e.Required, e.Available))
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// ForbiddenError indicates a failed ownership or eligibility precondition,
// such as a driver completing an order assigned to someone else or a worker
// at the weekly hour ceiling. Terminal, not retried.
type ForbiddenError struct {
	ParamName string
	Reason    string
}

func NewForbiddenError(paramName, reason string) *ForbiddenError {
	return &ForbiddenError{ParamName: paramName, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s (param: %s)", ErrForbidden, e.Reason, e.ParamName))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// TransientStoreError indicates that the underlying unit of work failed to
// begin or commit. The whole transition is safe to retry from scratch since
// every attempt re-checks its preconditions.
type TransientStoreError struct {
	Op    string
	Cause error
}

func NewTransientStoreError(op string, cause error) *TransientStoreError {
	return &TransientStoreError{Op: op, Cause: cause}
}

func (e *TransientStoreError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrTransientStore, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrTransientStore, e.Op))
}

func (e *TransientStoreError) Unwrap() error {
	return ErrTransientStore
}
