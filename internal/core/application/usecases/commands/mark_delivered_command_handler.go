package commands

import (
	"context"
)

// MarkDeliveredResult reports the order's terminal status after delivery.
type MarkDeliveredResult struct {
	OrderID string
	Status  string
}

// MarkDeliveredCommandHandler completes orders. DELIVERED is terminal: no
// transition leaves it, so a repeated confirmation fails the status guard.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery confirmation.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation. The ownership check (only the
// assigned driver may confirm) lives in the order aggregate.
func (h MarkDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkDeliveredCommand,
) (MarkDeliveredResult, error) {
	if err := cmd.Validate(); err != nil {
		return MarkDeliveredResult{}, err
	}

	var result MarkDeliveredResult

	uow := h.uowFactory.Create()

	err := inTransaction(ctx, uow, func(ctx context.Context) error {
		aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = aggregate.MarkDelivered(cmd.DriverID()); err != nil {
			return err
		}

		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		result = MarkDeliveredResult{
			OrderID: aggregate.ID().String(),
			Status:  aggregate.Status().String(),
		}
		return nil
	})
	if err != nil {
		return MarkDeliveredResult{}, err
	}

	return result, nil
}
