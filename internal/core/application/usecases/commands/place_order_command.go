package commands

import (
	"errors"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/order"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to register a new customer order.
// The order enters the pipeline in PENDING status with no carrier and stays
// there until a dispatcher routes it onto a train trip.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	storeID    kernel.ID
	subCityID  kernel.ID
	totalPrice float64
	items      []order.Item

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order destined for
// the given store. subCityID is optional: a zero ID means the order has no
// last-mile sub-city routing yet. At least one line item is required.
func NewPlaceOrderCommand(
	customerID kernel.ID,
	storeID kernel.ID,
	subCityID kernel.ID,
	totalPrice float64,
	items []order.Item,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setStoreID(storeID),
		cmd.setTotalPrice(totalPrice),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.subCityID = subCityID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// StoreID returns the destination store identifier.
func (c PlaceOrderCommand) StoreID() kernel.ID {
	return c.storeID
}

// SubCityID returns the optional sub-city identifier. May be zero.
func (c PlaceOrderCommand) SubCityID() kernel.ID {
	return c.subCityID
}

// TotalPrice returns the order's total price.
func (c PlaceOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

// Items returns the order line items.
func (c PlaceOrderCommand) Items() []order.Item {
	return c.items
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setStoreID(storeID kernel.ID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *PlaceOrderCommand) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidError("totalPrice")
	}

	c.totalPrice = totalPrice
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
