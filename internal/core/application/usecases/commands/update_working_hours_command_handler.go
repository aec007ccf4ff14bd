package commands

import (
	"context"
)

// UpdateWorkingHoursResult reports a worker's hours and assignment
// eligibility after an accrual.
type UpdateWorkingHoursResult struct {
	WorkerID    string
	WorkedHours float64
	CanAssign   bool
}

// UpdateWorkingHoursCommandHandler records weekly hour accruals for
// delivery workers.
type UpdateWorkingHoursCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewUpdateWorkingHoursCommandHandler creates a handler for hour accrual.
func NewUpdateWorkingHoursCommandHandler(uowFactory WorkerUoWFactory) UpdateWorkingHoursCommandHandler {
	return UpdateWorkingHoursCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accrual. The worker row is locked so the write cannot
// interleave with a concurrent truck assignment's eligibility read.
func (h UpdateWorkingHoursCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateWorkingHoursCommand,
) (UpdateWorkingHoursResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateWorkingHoursResult{}, err
	}

	var result UpdateWorkingHoursResult

	uow := h.uowFactory.Create()

	err := inTransaction(ctx, uow, func(ctx context.Context) error {
		aggregate, err := uow.WorkerRepository().GetForUpdate(ctx, cmd.WorkerID())
		if err != nil {
			return err
		}

		if err = aggregate.SetWeeklyHours(cmd.Hours()); err != nil {
			return err
		}

		if err = uow.WorkerRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		result = UpdateWorkingHoursResult{
			WorkerID:    aggregate.ID().String(),
			WorkedHours: aggregate.WorkedHours(),
			CanAssign:   aggregate.CanAssign(),
		}
		return nil
	})
	if err != nil {
		return UpdateWorkingHoursResult{}, err
	}

	return result, nil
}
