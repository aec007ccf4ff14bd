// Package ports defines repository and unit-of-work interfaces for the
// fulfillment domain. These contracts sit between the application layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a freshly placed order with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration of
	// the enclosing transaction. Transition handlers use this to serialize
	// concurrent attempts against the same order: the loser of the race
	// re-reads the winner's committed status and fails its precondition.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)
}
