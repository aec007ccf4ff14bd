package ports

import (
	"context"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for delivery worker
// aggregates (drivers and assistants).
type WorkerRepository interface {
	// Add persists a new worker.
	Add(ctx context.Context, aggregate *worker.DeliveryWorker) error

	// Update persists changes to an existing worker's weekly hours.
	Update(ctx context.Context, aggregate *worker.DeliveryWorker) error

	// Get retrieves a worker by user identifier.
	Get(ctx context.Context, id kernel.ID) (*worker.DeliveryWorker, error)

	// GetForUpdate retrieves a worker and locks their row for the duration
	// of the enclosing transaction, so the hour-gate read for a truck
	// assignment cannot interleave with a concurrent hour accrual.
	GetForUpdate(ctx context.Context, id kernel.ID) (*worker.DeliveryWorker, error)

	// ResetAllHours zeroes weekly hour counters and returns the number of
	// workers affected. A zero storeID resets every store; a concrete
	// storeID limits the reset to that store's roster. Invoked by the
	// weekly reset job.
	ResetAllHours(ctx context.Context, storeID kernel.ID) (int64, error)
}
