package queries

import (
	"errors"
	"time"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// GetDriverOrdersQuery retrieves a driver's orders: those loaded on their
// truck awaiting confirmation, and those they have already delivered.
type GetDriverOrdersQuery struct {
	driverID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a query for the given driver's active load.
func NewGetDriverOrdersQuery(driverID kernel.ID) (GetDriverOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverOrdersQuery{}, err
	}

	return GetDriverOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose load is listed.
func (q GetDriverOrdersQuery) DriverID() kernel.ID {
	return q.driverID
}

// GetDriverOrdersQueryResponse is one order assigned to the driver.
type GetDriverOrdersQueryResponse struct {
	OrderID    string
	StoreID    string
	TruckID    string
	Status     string
	OrderedAt  time.Time
	TotalPrice float64
}
