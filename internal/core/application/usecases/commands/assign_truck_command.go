package commands

import (
	"errors"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/guard"
)

var ErrAssignTruckCommandIsNotConstructed = errors.New(
	"AssignTruckCommand must be created via NewAssignTruckCommand constructor",
)

// AssignTruckCommand represents a request to load an in-store order onto a
// truck with a driver and assistant crew for last-mile delivery.
type AssignTruckCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.ID
	truckID     kernel.ID
	driverID    kernel.ID
	assistantID kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignTruckCommand creates a command to assign the given order to the
// given truck and crew. The driver and assistant must be distinct workers.
func NewAssignTruckCommand(orderID, truckID, driverID, assistantID kernel.ID) (AssignTruckCommand, error) {
	cmd := AssignTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTruckID(truckID),
		cmd.setCrew(driverID, assistantID),
	); err != nil {
		return AssignTruckCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTruckCommand) Validate() error {
	return c.guard.Validate(ErrAssignTruckCommandIsNotConstructed)
}

// OrderID returns the order being assigned.
func (c AssignTruckCommand) OrderID() kernel.ID {
	return c.orderID
}

// TruckID returns the truck to load the order onto.
func (c AssignTruckCommand) TruckID() kernel.ID {
	return c.truckID
}

// DriverID returns the crew driver's identifier.
func (c AssignTruckCommand) DriverID() kernel.ID {
	return c.driverID
}

// AssistantID returns the crew assistant's identifier.
func (c AssignTruckCommand) AssistantID() kernel.ID {
	return c.assistantID
}

func (c *AssignTruckCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignTruckCommand) setTruckID(truckID kernel.ID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}

	c.truckID = truckID
	return nil
}

func (c *AssignTruckCommand) setCrew(driverID, assistantID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if err := assistantID.Validate(); err != nil {
		return err
	}
	if driverID.IsEqual(assistantID) {
		return errs.NewValueIsInvalidError("assistantID")
	}

	c.driverID = driverID
	c.assistantID = assistantID
	return nil
}
