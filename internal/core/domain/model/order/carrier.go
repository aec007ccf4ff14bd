package order

import (
	"errors"
	"fmt"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
)

// CarrierKind discriminates the Carrier variant.
type CarrierKind int

const (
	// CarrierUnassigned means no resource is responsible for the order yet.
	CarrierUnassigned CarrierKind = iota

	// CarrierInTransit means the order rides a train trip.
	CarrierInTransit

	// CarrierInStore means the destination store holds the order.
	CarrierInStore

	// CarrierOnTruck means a truck crew is delivering the order.
	CarrierOnTruck

	// CarrierDelivered means delivery is complete; the delivering driver is
	// retained for audit.
	CarrierDelivered
)

// Carrier is a tagged variant describing which resource is currently
// responsible for an order. Exactly the fields belonging to the active kind
// are set; all others are zero. This makes the status/carrier consistency
// invariant structural instead of a convention over nullable foreign keys.
type Carrier struct {
	kind        CarrierKind
	tripID      kernel.ID
	storeID     kernel.ID
	truckID     kernel.ID
	driverID    kernel.ID
	assistantID kernel.ID
}

// UnassignedCarrier returns the carrier of a freshly placed order.
func UnassignedCarrier() Carrier {
	return Carrier{kind: CarrierUnassigned}
}

// InTransitCarrier returns a carrier bound to a train trip.
func InTransitCarrier(tripID kernel.ID) (Carrier, error) {
	if err := tripID.Validate(); err != nil {
		return Carrier{}, err
	}
	return Carrier{kind: CarrierInTransit, tripID: tripID}, nil
}

// InStoreCarrier returns a carrier bound to the destination store.
func InStoreCarrier(storeID kernel.ID) (Carrier, error) {
	if err := storeID.Validate(); err != nil {
		return Carrier{}, err
	}
	return Carrier{kind: CarrierInStore, storeID: storeID}, nil
}

// OnTruckCarrier returns a carrier bound to a truck crew. All three
// identifiers are required; a truck assignment is a ternary link.
func OnTruckCarrier(truckID, driverID, assistantID kernel.ID) (Carrier, error) {
	if err := errors.Join(
		truckID.Validate(),
		driverID.Validate(),
		assistantID.Validate(),
	); err != nil {
		return Carrier{}, err
	}
	return Carrier{
		kind:        CarrierOnTruck,
		truckID:     truckID,
		driverID:    driverID,
		assistantID: assistantID,
	}, nil
}

// DeliveredCarrier returns the terminal carrier, retaining the driver who
// completed the delivery.
func DeliveredCarrier(driverID kernel.ID) (Carrier, error) {
	if err := driverID.Validate(); err != nil {
		return Carrier{}, err
	}
	return Carrier{kind: CarrierDelivered, driverID: driverID}, nil
}

// Kind returns the active variant.
func (c Carrier) Kind() CarrierKind {
	return c.kind
}

// TripID returns the train trip id; zero unless the order is in transit.
func (c Carrier) TripID() kernel.ID {
	return c.tripID
}

// StoreID returns the holding store id; zero unless the order is in store.
func (c Carrier) StoreID() kernel.ID {
	return c.storeID
}

// TruckID returns the truck id; zero unless the order is on a truck.
func (c Carrier) TruckID() kernel.ID {
	return c.truckID
}

// DriverID returns the responsible driver id; zero unless the order is on a
// truck or delivered.
func (c Carrier) DriverID() kernel.ID {
	return c.driverID
}

// AssistantID returns the assistant id; zero unless the order is on a truck.
func (c Carrier) AssistantID() kernel.ID {
	return c.assistantID
}

// MatchesStatus validates the structural invariant between a carrier variant
// and an order status: each status has exactly one legal carrier kind.
func (c Carrier) MatchesStatus(s Status) error {
	expected := map[Status]CarrierKind{
		Pending:   CarrierUnassigned,
		OnTrain:   CarrierInTransit,
		InStore:   CarrierInStore,
		OnTruck:   CarrierOnTruck,
		Delivered: CarrierDelivered,
	}

	kind, ok := expected[s]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	if c.kind != kind {
		return errs.NewValueIsInvalidErrorWithCause("carrier",
			fmt.Errorf("carrier kind %d is inconsistent with status %s", c.kind, s))
	}
	return nil
}
