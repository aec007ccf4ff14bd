package commands

import (
	"errors"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/guard"
)

var ErrDispatchToTrainCommandIsNotConstructed = errors.New(
	"DispatchToTrainCommand must be created via NewDispatchToTrainCommand constructor",
)

// DispatchToTrainCommand represents a request to route a pending order onto
// a scheduled train trip, consuming trip capacity.
type DispatchToTrainCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	tripID  kernel.ID

	guard guard.ConstructorGuard
}

// NewDispatchToTrainCommand creates a command to dispatch the given order
// onto the given trip.
func NewDispatchToTrainCommand(orderID, tripID kernel.ID) (DispatchToTrainCommand, error) {
	cmd := DispatchToTrainCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTripID(tripID),
	); err != nil {
		return DispatchToTrainCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchToTrainCommand) Validate() error {
	return c.guard.Validate(ErrDispatchToTrainCommandIsNotConstructed)
}

// OrderID returns the order to dispatch.
func (c DispatchToTrainCommand) OrderID() kernel.ID {
	return c.orderID
}

// TripID returns the target trip.
func (c DispatchToTrainCommand) TripID() kernel.ID {
	return c.tripID
}

func (c *DispatchToTrainCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DispatchToTrainCommand) setTripID(tripID kernel.ID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}
