// Package queries contains the read side of the fulfillment pipeline.
// Query handlers bypass the aggregates and read projection rows straight
// from the database; they never mutate state, so a dispatcher acting on a
// stale snapshot is caught later by the transition's own precondition.
package queries

import (
	"errors"
	"time"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/guard"
)

var ErrGetCandidateTripsQueryIsNotConstructed = errors.New(
	"GetCandidateTripsQuery must be created via NewGetCandidateTripsQuery constructor",
)

// GetCandidateTripsQuery retrieves trips a dispatcher could route an order
// onto: right destination, departing on or after the given date, with some
// capacity left. The listing is advisory; the dispatch transition re-checks
// capacity authoritatively.
type GetCandidateTripsQuery struct {
	storeID   kernel.ID
	onOrAfter time.Time

	guard guard.ConstructorGuard
}

// NewGetCandidateTripsQuery creates a query for trips serving the given
// destination store departing on or after the given date.
func NewGetCandidateTripsQuery(storeID kernel.ID, onOrAfter time.Time) (GetCandidateTripsQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetCandidateTripsQuery{}, err
	}

	return GetCandidateTripsQuery{
		storeID:   storeID,
		onOrAfter: onOrAfter,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCandidateTripsQuery) Validate() error {
	return q.guard.Validate(ErrGetCandidateTripsQueryIsNotConstructed)
}

// StoreID returns the destination store filter.
func (q GetCandidateTripsQuery) StoreID() kernel.ID {
	return q.storeID
}

// OnOrAfter returns the earliest departure date to include.
func (q GetCandidateTripsQuery) OnOrAfter() time.Time {
	return q.onOrAfter
}

// GetCandidateTripsQueryResponse is one candidate trip row.
type GetCandidateTripsQueryResponse struct {
	TripID            string
	DestinationStore  string
	DepartureDate     time.Time
	DepartureTime     string
	TotalCapacity     float64
	AvailableCapacity float64
}
