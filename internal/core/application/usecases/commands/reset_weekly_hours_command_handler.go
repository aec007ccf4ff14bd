package commands

import (
	"context"
)

// ResetWeeklyHoursCommandHandler zeroes worker hour counters at the start of
// each week, restoring assignment eligibility across the fleet or within one
// store.
type ResetWeeklyHoursCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewResetWeeklyHoursCommandHandler creates a handler for the weekly reset.
func NewResetWeeklyHoursCommandHandler(uowFactory WorkerUoWFactory) ResetWeeklyHoursCommandHandler {
	return ResetWeeklyHoursCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle performs the reset and returns the number of workers affected.
func (h ResetWeeklyHoursCommandHandler) Handle(
	ctx context.Context,
	cmd ResetWeeklyHoursCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var affected int64

	uow := h.uowFactory.Create()

	err := inTransaction(ctx, uow, func(ctx context.Context) error {
		n, err := uow.WorkerRepository().ResetAllHours(ctx, cmd.StoreID())
		if err != nil {
			return err
		}

		affected = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}
