package commands

import (
	"context"
	"fmt"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/order"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
)

// DispatchToTrainResult reports the outcome of a successful dispatch: the
// order's new status, the capacity consumed, and what the trip has left.
type DispatchToTrainResult struct {
	OrderID           string
	Status            string
	TripID            string
	CapacityUsed      float64
	RemainingCapacity float64
}

// DispatchToTrainCommandHandler routes pending orders onto train trips.
// The dispatch is the only writer of the trip capacity ledger: the order's
// required capacity is recomputed from its line items, checked against the
// trip's available capacity, and deducted in the same transaction that flips
// the order to TRAIN. There is no compensating release; capacity returns
// only when the scheduling system rolls the trip over.
type DispatchToTrainCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewDispatchToTrainCommandHandler creates a handler for train dispatch.
func NewDispatchToTrainCommandHandler(uowFactory DispatchUoWFactory) DispatchToTrainCommandHandler {
	return DispatchToTrainCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command. Both the order and the trip rows
// are locked for the duration of the transaction, always in that sequence,
// so concurrent dispatches against the same trip serialize and the loser
// sees the winner's deduction.
func (h DispatchToTrainCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchToTrainCommand,
) (DispatchToTrainResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchToTrainResult{}, err
	}

	var result DispatchToTrainResult

	uow := h.uowFactory.Create()

	err := inTransaction(ctx, uow, func(ctx context.Context) error {
		aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		trip, err := uow.TripRepository().GetForUpdate(ctx, cmd.TripID())
		if err != nil {
			return err
		}

		// The status edge goes first: a stale order must surface as a
		// conflict naming its actual status, not as a capacity failure,
		// and the trip ledger must stay untouched.
		if err = aggregate.EnsureStatus(order.Pending); err != nil {
			return err
		}

		if !trip.ServesStore(aggregate.StoreID()) {
			return errs.NewValueIsInvalidErrorWithCause("tripID", fmt.Errorf(
				"trip %s serves store %s, order is destined for %s",
				trip.ID(), trip.DestinationStoreID(), aggregate.StoreID(),
			))
		}

		required := aggregate.RequiredCapacity()

		if err = trip.Reserve(aggregate.ID(), required); err != nil {
			return err
		}
		if err = aggregate.DispatchToTrain(trip.ID()); err != nil {
			return err
		}

		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}
		if err = uow.TripRepository().Update(ctx, trip); err != nil {
			return err
		}

		result = DispatchToTrainResult{
			OrderID:           aggregate.ID().String(),
			Status:            aggregate.Status().String(),
			TripID:            trip.ID().String(),
			CapacityUsed:      required,
			RemainingCapacity: trip.AvailableCapacity(),
		}
		return nil
	})
	if err != nil {
		return DispatchToTrainResult{}, err
	}

	return result, nil
}
