package triprepo

import (
	"context"
	"errors"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/trip"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTripRepository implements ports.TripRepository using GORM.
type GormTripRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormTripRepository creates a new GORM trip repository.
func NewGormTripRepository(db *gorm.DB, tracker aggregateTracker) *GormTripRepository {
	return &GormTripRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new trip with its full capacity available.
func (r *GormTripRepository) Add(ctx context.Context, aggregate *trip.Trip) error {
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

// Update saves a trip's remaining capacity and any new reservations.
// Reservation rows are append-only: existing rows are left alone and new
// ones inserted.
func (r *GormTripRepository) Update(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Omit("Orders").
		Model(&TripDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"available_capacity": dto.AvailableCapacity})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tripID", dto.ID)
	}

	if len(dto.Orders) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Orders).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a trip with its reservations.
func (r *GormTripRepository) Get(ctx context.Context, id kernel.ID) (*trip.Trip, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a trip and locks its row until the enclosing
// transaction ends, serializing concurrent capacity reservations.
func (r *GormTripRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*trip.Trip, error) {
	return r.get(ctx, id, true)
}

func (r *GormTripRepository) get(ctx context.Context, id kernel.ID, forUpdate bool) (*trip.Trip, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("Orders")
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto TripDTO
	if err := query.First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tripID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
