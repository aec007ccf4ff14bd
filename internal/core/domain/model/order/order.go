package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a customer order moving through the
// fulfillment pipeline.
//
// Order maintains these invariants:
//   - status follows the strictly linear pipeline (see Status)
//   - the carrier variant is always consistent with the status
//   - required capacity is recomputed from current line items at every call,
//     never cached across a transition
//   - state is only mutated through the transition methods, each of which
//     rejects a request made against a stale status with a typed conflict
//     error naming the actual status
type Order struct {
	// id is the unique order identifier
	id kernel.ID

	// customerID identifies the ordering customer
	customerID kernel.ID

	// storeID is the destination store the order must reach
	storeID kernel.ID

	// subCityID is the destination sub-region for final delivery; may be zero
	subCityID kernel.ID

	// orderedAt is the placement timestamp
	orderedAt time.Time

	// totalPrice is the order's monetary value
	totalPrice float64

	// items are the order line items; capacity is derived from them
	items []Item

	// status is the current pipeline state
	status Status

	// carrier identifies the resource currently responsible for the order
	carrier Carrier

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly placed order in Pending status with no carrier.
// An order with no line items is legal: its required capacity is zero and it
// trivially fits any trip.
func NewOrder(
	id kernel.ID,
	customerID kernel.ID,
	storeID kernel.ID,
	subCityID kernel.ID,
	orderedAt time.Time,
	totalPrice float64,
	items []Item,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		carrier:       UnassignedCarrier(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStoreID(storeID),
		o.setOrderedAt(orderedAt),
		o.setTotalPrice(totalPrice),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	// subCityID is optional
	o.subCityID = subCityID

	return o, nil
}

// RestoreOrder reconstructs an order from persistence in an arbitrary
// pipeline state. The carrier must be structurally consistent with the
// status; inconsistent rows are rejected rather than silently repaired.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	storeID kernel.ID,
	subCityID kernel.ID,
	orderedAt time.Time,
	totalPrice float64,
	items []Item,
	status Status,
	carrier Carrier,
) (*Order, error) {
	o, err := NewOrder(id, customerID, storeID, subCityID, orderedAt, totalPrice, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = carrier.MatchesStatus(status); err != nil {
		return nil, err
	}

	o.status = status
	o.carrier = carrier
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// StoreID returns the destination store identifier.
func (o *Order) StoreID() kernel.ID {
	return o.storeID
}

// SubCityID returns the destination sub-region identifier; may be zero.
func (o *Order) SubCityID() kernel.ID {
	return o.subCityID
}

// OrderedAt returns the placement timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// TotalPrice returns the order's monetary value.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current pipeline state.
func (o *Order) Status() Status {
	return o.status
}

// Carrier returns the resource currently responsible for the order.
func (o *Order) Carrier() Carrier {
	return o.carrier
}

// RequiredCapacity returns the cargo capacity the order consumes, summed over
// line items as quantity times per-unit space rate. An order with no items
// requires zero capacity.
func (o *Order) RequiredCapacity() float64 {
	var total float64
	for _, item := range o.items {
		total += item.SpaceRequired()
	}
	return total
}

// DispatchToTrain moves the order from Pending onto a train trip.
// Capacity and destination gating happens at the trip aggregate; this method
// enforces only the status edge and the carrier link.
func (o *Order) DispatchToTrain(tripID kernel.ID) error {
	carrier, err := InTransitCarrier(tripID)
	if err != nil {
		return err
	}
	if err = o.guardStatus(Pending); err != nil {
		return err
	}

	o.status = OnTrain
	o.carrier = carrier
	return nil
}

// AcceptAtStore moves the order from OnTrain into the destination store's
// inventory. The accepting store is by definition the order's destination.
func (o *Order) AcceptAtStore() error {
	carrier, err := InStoreCarrier(o.storeID)
	if err != nil {
		return err
	}
	if err = o.guardStatus(OnTrain); err != nil {
		return err
	}

	o.status = InStore
	o.carrier = carrier
	return nil
}

// AssignToTruck moves the order from InStore onto a truck crew. The hour
// ceiling gate for the driver and assistant is checked by the caller against
// the worker aggregates; this method enforces the status edge and the
// ternary crew link.
func (o *Order) AssignToTruck(truckID, driverID, assistantID kernel.ID) error {
	carrier, err := OnTruckCarrier(truckID, driverID, assistantID)
	if err != nil {
		return err
	}
	if err = o.guardStatus(InStore); err != nil {
		return err
	}

	o.status = OnTruck
	o.carrier = carrier
	return nil
}

// MarkDelivered completes the order. Only the driver the order is assigned to
// may confirm delivery; anyone else gets a forbidden error.
func (o *Order) MarkDelivered(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if err := o.guardStatus(OnTruck); err != nil {
		return err
	}
	if !o.carrier.DriverID().IsEqual(driverID) {
		return errs.NewForbiddenError("driverID", "order is not assigned to this driver")
	}

	carrier, err := DeliveredCarrier(driverID)
	if err != nil {
		return err
	}

	o.status = Delivered
	o.carrier = carrier
	return nil
}

// EnsureStatus reports a conflict when the order's current status differs
// from the status a transition expects. Non-mutating; handlers check it
// before touching any other aggregate so a stale order surfaces as a status
// conflict rather than a downstream ledger failure.
func (o *Order) EnsureStatus(expected Status) error {
	return o.guardStatus(expected)
}

// guardStatus rejects a transition requested against a stale status. The
// returned conflict error names the actual current status so a racing caller
// can re-fetch and decide instead of retrying blindly.
func (o *Order) guardStatus(expected Status) error {
	if o.status != expected {
		return errs.NewStatusConflictError(o.id.String(), expected.String(), o.status.String())
	}
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStoreID(storeID kernel.ID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderedAt")
	}
	o.orderedAt = orderedAt
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%g is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
