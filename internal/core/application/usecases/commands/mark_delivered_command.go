package commands

import (
	"errors"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a driver confirming that an order on their
// truck reached the customer.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	driverID kernel.ID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command for the given driver to confirm
// delivery of the given order.
func NewMarkDeliveredCommand(orderID, driverID kernel.ID) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c MarkDeliveredCommand) OrderID() kernel.ID {
	return c.orderID
}

// DriverID returns the confirming driver's identifier.
func (c MarkDeliveredCommand) DriverID() kernel.ID {
	return c.driverID
}

func (c *MarkDeliveredCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkDeliveredCommand) setDriverID(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
