package ports

import (
	"context"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for train trip aggregates.
// Trips are created by the scheduling system; this backend only reads them
// and consumes their capacity.
type TripRepository interface {
	// Add persists a new trip. Used by schedule import and tests.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// Update persists changes to an existing trip, including its remaining
	// capacity and order assignments.
	Update(ctx context.Context, aggregate *trip.Trip) error

	// Get retrieves a trip by its identifier.
	Get(ctx context.Context, id kernel.ID) (*trip.Trip, error)

	// GetForUpdate retrieves a trip and locks its row for the duration of
	// the enclosing transaction, serializing concurrent reservations so two
	// orders cannot both take the trip's last capacity unit.
	GetForUpdate(ctx context.Context, id kernel.ID) (*trip.Trip, error)
}
