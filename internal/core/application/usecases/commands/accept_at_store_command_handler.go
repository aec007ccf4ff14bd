package commands

import (
	"context"

	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
)

// AcceptAtStoreResult reports the order's status after store acceptance.
type AcceptAtStoreResult struct {
	OrderID string
	Status  string
}

// AcceptAtStoreCommandHandler moves orders from TRAIN into store inventory.
type AcceptAtStoreCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptAtStoreCommandHandler creates a handler for store acceptance.
func NewAcceptAtStoreCommandHandler(uowFactory OrderUoWFactory) AcceptAtStoreCommandHandler {
	return AcceptAtStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command. A manager can only accept orders
// destined for their own store; the order must currently be on the train.
func (h AcceptAtStoreCommandHandler) Handle(
	ctx context.Context,
	cmd AcceptAtStoreCommand,
) (AcceptAtStoreResult, error) {
	if err := cmd.Validate(); err != nil {
		return AcceptAtStoreResult{}, err
	}

	var result AcceptAtStoreResult

	uow := h.uowFactory.Create()

	err := inTransaction(ctx, uow, func(ctx context.Context) error {
		aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if !aggregate.StoreID().IsEqual(cmd.StoreID()) {
			return errs.NewForbiddenError("storeID", "order is not destined for this store")
		}

		if err = aggregate.AcceptAtStore(); err != nil {
			return err
		}

		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		result = AcceptAtStoreResult{
			OrderID: aggregate.ID().String(),
			Status:  aggregate.Status().String(),
		}
		return nil
	})
	if err != nil {
		return AcceptAtStoreResult{}, err
	}

	return result, nil
}
