package commands

import (
	"errors"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/guard"
)

var ErrUpdateWorkingHoursCommandIsNotConstructed = errors.New(
	"UpdateWorkingHoursCommand must be created via NewUpdateWorkingHoursCommand constructor",
)

// UpdateWorkingHoursCommand represents the payroll feed setting a worker's
// accumulated hours for the current week. Hours may exceed the weekly
// ceiling; the ceiling gates future assignments, not the record itself.
type UpdateWorkingHoursCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.ID
	hours    float64

	guard guard.ConstructorGuard
}

// NewUpdateWorkingHoursCommand creates a command to set the given worker's
// weekly hours. Negative hours are rejected.
func NewUpdateWorkingHoursCommand(workerID kernel.ID, hours float64) (UpdateWorkingHoursCommand, error) {
	cmd := UpdateWorkingHoursCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setHours(hours),
	); err != nil {
		return UpdateWorkingHoursCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWorkingHoursCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkingHoursCommandIsNotConstructed)
}

// WorkerID returns the worker whose hours are being set.
func (c UpdateWorkingHoursCommand) WorkerID() kernel.ID {
	return c.workerID
}

// Hours returns the new weekly hour total.
func (c UpdateWorkingHoursCommand) Hours() float64 {
	return c.hours
}

func (c *UpdateWorkingHoursCommand) setWorkerID(workerID kernel.ID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *UpdateWorkingHoursCommand) setHours(hours float64) error {
	if hours < 0 {
		return errs.NewValueIsInvalidError("hours")
	}

	c.hours = hours
	return nil
}
