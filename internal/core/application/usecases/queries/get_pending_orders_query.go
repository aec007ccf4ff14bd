package queries

import (
	"errors"
	"time"

	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves all orders awaiting train dispatch, with
// the capacity each would consume.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for the dispatch backlog.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse is one backlog row. RequiredCapacity is
// computed from the order's line items; an order with no items needs zero.
type GetPendingOrdersQueryResponse struct {
	OrderID          string
	StoreID          string
	OrderedAt        time.Time
	TotalPrice       float64
	RequiredCapacity float64
}
