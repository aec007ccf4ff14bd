package commands

import (
	"errors"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/guard"
)

var ErrAcceptAtStoreCommandIsNotConstructed = errors.New(
	"AcceptAtStoreCommand must be created via NewAcceptAtStoreCommand constructor",
)

// AcceptAtStoreCommand represents a store manager confirming that an order
// arrived off the train and is now held in store inventory.
type AcceptAtStoreCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	storeID   kernel.ID
	managerID kernel.ID

	guard guard.ConstructorGuard
}

// NewAcceptAtStoreCommand creates a command for the manager of the given
// store to accept the given order.
func NewAcceptAtStoreCommand(orderID, storeID, managerID kernel.ID) (AcceptAtStoreCommand, error) {
	cmd := AcceptAtStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStoreID(storeID),
		cmd.setManagerID(managerID),
	); err != nil {
		return AcceptAtStoreCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptAtStoreCommand) Validate() error {
	return c.guard.Validate(ErrAcceptAtStoreCommandIsNotConstructed)
}

// OrderID returns the order being accepted.
func (c AcceptAtStoreCommand) OrderID() kernel.ID {
	return c.orderID
}

// StoreID returns the store the acting manager belongs to.
func (c AcceptAtStoreCommand) StoreID() kernel.ID {
	return c.storeID
}

// ManagerID returns the acting store manager's identifier.
func (c AcceptAtStoreCommand) ManagerID() kernel.ID {
	return c.managerID
}

func (c *AcceptAtStoreCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptAtStoreCommand) setStoreID(storeID kernel.ID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *AcceptAtStoreCommand) setManagerID(managerID kernel.ID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}

	c.managerID = managerID
	return nil
}
