package workerrepo

import (
	"context"
	"errors"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/worker"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkerRepository implements ports.WorkerRepository using GORM.
type GormWorkerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormWorkerRepository creates a new GORM worker repository.
func NewGormWorkerRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkerRepository {
	return &GormWorkerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new worker.
func (r *GormWorkerRepository) Add(ctx context.Context, aggregate *worker.DeliveryWorker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a worker's weekly hours. Worked hours legitimately go to
// zero at the weekly reset, so the write names its columns explicitly
// instead of relying on non-zero field updates.
func (r *GormWorkerRepository) Update(ctx context.Context, aggregate *worker.DeliveryWorker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryWorkerDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"store_id":     dto.StoreID,
			"name":         dto.Name,
			"role":         dto.Role,
			"worked_hours": dto.WorkedHours,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("workerID", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a worker by user identifier.
func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.ID) (*worker.DeliveryWorker, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a worker and locks their row until the enclosing
// transaction ends.
func (r *GormWorkerRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*worker.DeliveryWorker, error) {
	return r.get(ctx, id, true)
}

// ResetAllHours zeroes weekly hour counters, across all stores or for one
// store's roster, and returns the number of rows changed. Workers already at
// zero are skipped.
func (r *GormWorkerRepository) ResetAllHours(ctx context.Context, storeID kernel.ID) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&DeliveryWorkerDTO{}).
		Where("worked_hours <> 0")

	if !storeID.IsZero() {
		query = query.Where("store_id = ?", storeID.String())
	}

	result := query.Update("worked_hours", 0)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *GormWorkerRepository) get(ctx context.Context, id kernel.ID, forUpdate bool) (*worker.DeliveryWorker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto DeliveryWorkerDTO
	if err := query.First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workerID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
