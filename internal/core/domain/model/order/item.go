package order

import (
	"errors"
	"fmt"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line item. Its space consumption is quantity times the
// product's per-unit space rate; the order's required cargo capacity is the
// sum over all items.
type Item struct {
	productID kernel.ID
	quantity  int
	spaceRate float64

	isConstructed bool
}

// NewItem creates a validated line item. Quantity must be positive; the space
// rate must not be negative (a zero rate models products that consume no
// cargo space).
func NewItem(productID kernel.ID, quantity int, spaceRate float64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if spaceRate < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("spaceRate",
			fmt.Errorf("%g is negative", spaceRate))
	}

	return Item{
		productID:     productID,
		quantity:      quantity,
		spaceRate:     spaceRate,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the product identifier.
func (i Item) ProductID() kernel.ID {
	return i.productID
}

// Quantity returns the ordered unit count.
func (i Item) Quantity() int {
	return i.quantity
}

// SpaceRate returns the per-unit space consumption rate.
func (i Item) SpaceRate() float64 {
	return i.spaceRate
}

// SpaceRequired returns the cargo capacity this line item consumes.
func (i Item) SpaceRequired() float64 {
	return float64(i.quantity) * i.spaceRate
}
