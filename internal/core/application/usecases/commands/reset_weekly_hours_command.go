package commands

import (
	"errors"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/guard"
)

var ErrResetWeeklyHoursCommandIsNotConstructed = errors.New(
	"ResetWeeklyHoursCommand must be created via NewResetWeeklyHoursCommand constructor",
)

// ResetWeeklyHoursCommand represents the start-of-week rollover that zeroes
// worker hour counters. Issued fleet-wide by the weekly scheduler job, or
// scoped to one store for an out-of-band correction.
type ResetWeeklyHoursCommand struct {
	storeID kernel.ID

	guard guard.ConstructorGuard
}

// NewResetWeeklyHoursCommand creates a fleet-wide reset command.
func NewResetWeeklyHoursCommand() ResetWeeklyHoursCommand {
	return ResetWeeklyHoursCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// NewResetWeeklyHoursCommandForStore creates a reset command limited to one
// store's roster.
func NewResetWeeklyHoursCommandForStore(storeID kernel.ID) (ResetWeeklyHoursCommand, error) {
	if err := storeID.Validate(); err != nil {
		return ResetWeeklyHoursCommand{}, err
	}

	return ResetWeeklyHoursCommand{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c ResetWeeklyHoursCommand) Validate() error {
	return c.guard.Validate(ErrResetWeeklyHoursCommandIsNotConstructed)
}

// StoreID returns the store scope, or a zero ID for a fleet-wide reset.
func (c ResetWeeklyHoursCommand) StoreID() kernel.ID {
	return c.storeID
}
