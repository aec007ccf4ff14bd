package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCandidateTripsQueryHandler lists trips with remaining capacity toward a
// destination store.
type GetCandidateTripsQueryHandler struct {
	db *gorm.DB
}

// NewGetCandidateTripsQueryHandler creates a handler for candidate trip queries.
func NewGetCandidateTripsQueryHandler(db *gorm.DB) GetCandidateTripsQueryHandler {
	return GetCandidateTripsQueryHandler{db: db}
}

// Handle executes the query. Fully booked trips are excluded; results are
// sorted by departure so the dispatcher sees the earliest option first.
func (h GetCandidateTripsQueryHandler) Handle(
	ctx context.Context,
	query GetCandidateTripsQuery,
) ([]GetCandidateTripsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trips := make([]GetCandidateTripsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			destination_store_id,
			departure_date,
			departure_time,
			total_capacity,
			available_capacity
		FROM trips
		WHERE destination_store_id = ?
		  AND departure_date >= ?
		  AND available_capacity > 0
		ORDER BY departure_date, departure_time, id
	`, query.StoreID().String(), query.OnOrAfter()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCandidateTripsQueryResponse

		err = rows.Scan(
			&resp.TripID,
			&resp.DestinationStore,
			&resp.DepartureDate,
			&resp.DepartureTime,
			&resp.TotalCapacity,
			&resp.AvailableCapacity,
		)
		if err != nil {
			return nil, err
		}

		trips = append(trips, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}
