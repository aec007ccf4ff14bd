package order

import (
	"fmt"

	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
)

// Status represents the fulfillment state of an order. The pipeline is
// strictly linear: no skip-ahead, no backward transition, no branches.
//
//	Pending -> OnTrain -> InStore -> OnTruck -> Delivered
//
// String forms match the persisted wire values of the surrounding system
// ("PENDING", "TRAIN", "IN-STORE", "TRUCK", "DELIVERED").
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status at order placement, before the order is
	// dispatched from the main warehouse.
	Pending

	// OnTrain indicates the order occupies cargo capacity on a scheduled
	// train trip towards its destination store.
	OnTrain

	// InStore indicates the destination store has taken the order into its
	// inventory and it awaits truck assignment.
	InStore

	// OnTruck indicates the order is out for final delivery with a truck,
	// a driver and an assistant.
	OnTruck

	// Delivered is the final status. No further transitions are allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		OnTrain:   "TRAIN",
		InStore:   "IN-STORE",
		OnTruck:   "TRUCK",
		Delivered: "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		OnTrain:   "TRAIN",
		InStore:   "IN-STORE",
		OnTruck:   "TRUCK",
		Delivered: "DELIVERED",
	}
}

// StatusFromString parses a persisted status value. Returns an error for any
// string that is not one of the five valid wire values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the five valid pipeline states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form of the status, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the status that follows s in the pipeline, or Unknown when s
// is Delivered or invalid.
func (s Status) Next() Status {
	switch s {
	case Pending:
		return OnTrain
	case OnTrain:
		return InStore
	case InStore:
		return OnTruck
	case OnTruck:
		return Delivered
	default:
		return Unknown
	}
}

// CanTransitionTo reports whether moving from s to next follows the single
// directed edge the pipeline allows from s.
func (s Status) CanTransitionTo(next Status) bool {
	n := s.Next()
	return n != Unknown && n == next
}
