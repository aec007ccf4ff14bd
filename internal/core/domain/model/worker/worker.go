// Package worker contains the delivery worker aggregate. Drivers and
// assistants share one structure: a weekly worked-hours counter gated by a
// fixed 40-hour ceiling. Truck assignment reads the gate; it never mutates
// hours. Hours accrue through a separate write path and are reset weekly.
package worker

import (
	"errors"
	"fmt"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
)

// ErrWorkerIsNotConstructed is returned when a DeliveryWorker was not created
// through NewDeliveryWorker or RestoreDeliveryWorker.
var ErrWorkerIsNotConstructed = errors.New(
	"DeliveryWorker must be created via NewDeliveryWorker or RestoreDeliveryWorker constructor",
)

// WeeklyHourCeiling is the fixed weekly working-hour budget. A worker at or
// above the ceiling is ineligible for new truck assignments but stays visible
// in listings so callers can show why.
const WeeklyHourCeiling = 40.0

// Role distinguishes the two crew positions on a truck assignment.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleDriver drives the truck and confirms final delivery.
	RoleDriver

	// RoleAssistant accompanies the driver; every assignment needs one.
	RoleAssistant
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "Unknown",
		RoleDriver:    "Driver",
		RoleAssistant: "Assistant",
	}
}

// RoleFromString parses a persisted role value.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "Driver":
		return RoleDriver, nil
	case "Assistant":
		return RoleAssistant, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the Role is Driver or Assistant.
func (r Role) Validate() error {
	if r != RoleDriver && r != RoleAssistant {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable role name.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// DeliveryWorker is a driver or assistant employed at a store.
//
// Invariants:
//   - worked hours are never negative
//   - eligibility for new assignment is workedHours < WeeklyHourCeiling;
//     exactly 40 hours is already ineligible
type DeliveryWorker struct {
	// id is the worker's user identifier
	id kernel.ID

	// storeID is the store the worker is employed at
	storeID kernel.ID

	// name is the worker's display name
	name string

	// role is Driver or Assistant
	role Role

	// workedHours is the hours worked in the current week
	workedHours float64

	// isConstructed ensures the worker was created via a constructor
	isConstructed bool
}

// NewDeliveryWorker creates a worker with zero worked hours.
func NewDeliveryWorker(id, storeID kernel.ID, name string, role Role) (*DeliveryWorker, error) {
	w := &DeliveryWorker{isConstructed: true}

	if err := errors.Join(
		w.setID(id),
		w.setStoreID(storeID),
		w.setName(name),
		w.setRole(role),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreDeliveryWorker reconstructs a worker from persistence with its
// current weekly hours.
func RestoreDeliveryWorker(
	id, storeID kernel.ID,
	name string,
	role Role,
	workedHours float64,
) (*DeliveryWorker, error) {
	w, err := NewDeliveryWorker(id, storeID, name, role)
	if err != nil {
		return nil, err
	}
	if err = w.SetWeeklyHours(workedHours); err != nil {
		return nil, err
	}
	return w, nil
}

// Validate ensures the DeliveryWorker was created through a constructor.
func (w *DeliveryWorker) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkerIsNotConstructed
	}
	return nil
}

// IsEqual compares two workers by identifier.
func (w *DeliveryWorker) IsEqual(other *DeliveryWorker) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the worker's user identifier.
func (w *DeliveryWorker) ID() kernel.ID {
	return w.id
}

// StoreID returns the employing store's identifier.
func (w *DeliveryWorker) StoreID() kernel.ID {
	return w.storeID
}

// Name returns the worker's display name.
func (w *DeliveryWorker) Name() string {
	return w.name
}

// Role returns whether the worker is a driver or an assistant.
func (w *DeliveryWorker) Role() Role {
	return w.role
}

// WorkedHours returns the hours worked in the current week.
func (w *DeliveryWorker) WorkedHours() float64 {
	return w.workedHours
}

// CanAssign reports whether the worker is eligible for a new truck
// assignment. The boundary is strict: a worker at exactly the ceiling is
// ineligible, one just below it is eligible.
func (w *DeliveryWorker) CanAssign() bool {
	return w.workedHours < WeeklyHourCeiling
}

// SetWeeklyHours records externally accrued hours. Assignment never calls
// this; hours change only through the dedicated accrual path. Values may
// exceed the ceiling (overtime is recorded, it just blocks new assignments).
func (w *DeliveryWorker) SetWeeklyHours(hours float64) error {
	if hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("workedHours",
			fmt.Errorf("%g is negative", hours))
	}
	w.workedHours = hours
	return nil
}

// ResetWeeklyHours zeroes the weekly counter at the start of a new week.
func (w *DeliveryWorker) ResetWeeklyHours() {
	w.workedHours = 0
}

func (w *DeliveryWorker) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *DeliveryWorker) setStoreID(storeID kernel.ID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	w.storeID = storeID
	return nil
}

func (w *DeliveryWorker) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

func (w *DeliveryWorker) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	w.role = role
	return nil
}
