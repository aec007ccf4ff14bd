// Package trip contains the train trip aggregate: a scheduled departure with
// finite cargo capacity serving one destination store. The trip is the
// authoritative capacity ledger for the PENDING -> TRAIN transition: capacity
// is only ever consumed through Reserve, never released, and never written by
// any other code path.
package trip

import (
	"errors"
	"fmt"
	"time"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
)

// ErrTripIsNotConstructed is returned when a Trip instance was not created
// through NewTrip or RestoreTrip.
var ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip or RestoreTrip constructor")

// Trip is a scheduled train departure with finite cargo capacity.
//
// Invariants:
//   - 0 <= available capacity <= total capacity, before and after every call
//   - available capacity only decreases, via Reserve; there is no release or
//     refund path (a reservation is sacrificed even if the order is later
//     abandoned upstream)
//   - every reserved order is recorded exactly once
type Trip struct {
	// id is the unique trip identifier
	id kernel.ID

	// destinationStoreID is the store this departure serves
	destinationStoreID kernel.ID

	// departureDate is the scheduled day of departure
	departureDate time.Time

	// departureTime is the scheduled time of day, "HH:MM:SS"
	departureTime string

	// totalCapacity is the train's fixed cargo capacity for this trip
	totalCapacity float64

	// availableCapacity is the remaining unreserved capacity
	availableCapacity float64

	// orderIDs records orders reserved onto this trip
	orderIDs []kernel.ID

	// isConstructed ensures the trip was created via a constructor
	isConstructed bool
}

// NewTrip creates a trip with its full capacity available.
func NewTrip(
	id kernel.ID,
	destinationStoreID kernel.ID,
	departureDate time.Time,
	departureTime string,
	totalCapacity float64,
) (*Trip, error) {
	t := &Trip{isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setDestinationStoreID(destinationStoreID),
		t.setDepartureDate(departureDate),
		t.setDepartureTime(departureTime),
		t.setTotalCapacity(totalCapacity),
	); err != nil {
		return nil, err
	}

	t.availableCapacity = totalCapacity
	return t, nil
}

// RestoreTrip reconstructs a trip from persistence, including its remaining
// capacity and reserved orders. Rows violating the capacity invariant are
// rejected.
func RestoreTrip(
	id kernel.ID,
	destinationStoreID kernel.ID,
	departureDate time.Time,
	departureTime string,
	totalCapacity float64,
	availableCapacity float64,
	orderIDs []kernel.ID,
) (*Trip, error) {
	t, err := NewTrip(id, destinationStoreID, departureDate, departureTime, totalCapacity)
	if err != nil {
		return nil, err
	}

	if availableCapacity < 0 || availableCapacity > totalCapacity {
		return nil, errs.NewValueIsOutOfRangeError("availableCapacity",
			availableCapacity, 0, totalCapacity)
	}

	for _, orderID := range orderIDs {
		if err = orderID.Validate(); err != nil {
			return nil, err
		}
	}

	t.availableCapacity = availableCapacity
	t.orderIDs = make([]kernel.ID, len(orderIDs))
	copy(t.orderIDs, orderIDs)
	return t, nil
}

// Validate ensures the Trip was created through a constructor.
func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

// IsEqual compares two trips by identifier.
func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the trip identifier.
func (t *Trip) ID() kernel.ID {
	return t.id
}

// DestinationStoreID returns the store this departure serves.
func (t *Trip) DestinationStoreID() kernel.ID {
	return t.destinationStoreID
}

// DepartureDate returns the scheduled departure day.
func (t *Trip) DepartureDate() time.Time {
	return t.departureDate
}

// DepartureTime returns the scheduled time of day.
func (t *Trip) DepartureTime() string {
	return t.departureTime
}

// TotalCapacity returns the trip's fixed cargo capacity.
func (t *Trip) TotalCapacity() float64 {
	return t.totalCapacity
}

// AvailableCapacity returns the remaining unreserved capacity. The value is
// advisory outside a transaction: Reserve is the sole arbiter.
func (t *Trip) AvailableCapacity() float64 {
	return t.availableCapacity
}

// OrderIDs returns a copy of the orders reserved onto this trip.
func (t *Trip) OrderIDs() []kernel.ID {
	ids := make([]kernel.ID, len(t.orderIDs))
	copy(ids, t.orderIDs)
	return ids
}

// ServesStore reports whether this trip's destination matches the given
// store. An order may only be dispatched onto a trip serving its destination.
func (t *Trip) ServesStore(storeID kernel.ID) bool {
	return t.destinationStoreID.IsEqual(storeID)
}

// Reserve atomically (within the enclosing unit of work) checks and consumes
// cargo capacity for an order. The accept condition is amount <= available;
// an exact fit succeeds and a zero amount trivially succeeds. Rejections
// carry both the required and available numbers for caller display. Available
// capacity never goes negative.
func (t *Trip) Reserve(orderID kernel.ID, amount float64) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%g is negative", amount))
	}
	if amount > t.availableCapacity {
		return errs.NewCapacityExceededError(t.id.String(), amount, t.availableCapacity)
	}

	t.availableCapacity -= amount
	t.orderIDs = append(t.orderIDs, orderID)
	return nil
}

func (t *Trip) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setDestinationStoreID(storeID kernel.ID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	t.destinationStoreID = storeID
	return nil
}

func (t *Trip) setDepartureDate(departureDate time.Time) error {
	if departureDate.IsZero() {
		return errs.NewValueIsRequiredError("departureDate")
	}
	t.departureDate = departureDate
	return nil
}

func (t *Trip) setDepartureTime(departureTime string) error {
	if departureTime == "" {
		return errs.NewValueIsRequiredError("departureTime")
	}
	t.departureTime = departureTime
	return nil
}

func (t *Trip) setTotalCapacity(totalCapacity float64) error {
	if totalCapacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalCapacity",
			fmt.Errorf("%g is not greater than 0", totalCapacity))
	}
	t.totalCapacity = totalCapacity
	return nil
}
