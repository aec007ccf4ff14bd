package commands

import (
	"context"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/worker"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
)

// AssignTruckResult reports the order's status and crew after truck assignment.
type AssignTruckResult struct {
	OrderID     string
	Status      string
	TruckID     string
	DriverID    string
	AssistantID string
}

// AssignTruckCommandHandler moves in-store orders onto a truck crew.
// Both crew members are gated on the weekly hour ceiling at assignment time:
// a worker at or above the ceiling is ineligible. Assignment itself never
// mutates worked hours; accrual arrives separately from the payroll feed.
type AssignTruckCommandHandler struct {
	uowFactory CrewUoWFactory
}

// NewAssignTruckCommandHandler creates a handler for truck assignment.
func NewAssignTruckCommandHandler(uowFactory CrewUoWFactory) AssignTruckCommandHandler {
	return AssignTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck assignment command. The order row and both
// worker rows are locked so a concurrent hour accrual cannot slip a worker
// past the ceiling between the eligibility read and the commit.
func (h AssignTruckCommandHandler) Handle(
	ctx context.Context,
	cmd AssignTruckCommand,
) (AssignTruckResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignTruckResult{}, err
	}

	var result AssignTruckResult

	uow := h.uowFactory.Create()

	err := inTransaction(ctx, uow, func(ctx context.Context) error {
		aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		driver, err := uow.WorkerRepository().GetForUpdate(ctx, cmd.DriverID())
		if err != nil {
			return err
		}
		assistant, err := uow.WorkerRepository().GetForUpdate(ctx, cmd.AssistantID())
		if err != nil {
			return err
		}

		if err = checkCrewMember(driver, worker.RoleDriver, "driverID", aggregate.StoreID().String()); err != nil {
			return err
		}
		if err = checkCrewMember(assistant, worker.RoleAssistant, "assistantID", aggregate.StoreID().String()); err != nil {
			return err
		}

		if err = aggregate.AssignToTruck(cmd.TruckID(), driver.ID(), assistant.ID()); err != nil {
			return err
		}

		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		result = AssignTruckResult{
			OrderID:     aggregate.ID().String(),
			Status:      aggregate.Status().String(),
			TruckID:     cmd.TruckID().String(),
			DriverID:    driver.ID().String(),
			AssistantID: assistant.ID().String(),
		}
		return nil
	})
	if err != nil {
		return AssignTruckResult{}, err
	}

	return result, nil
}

// checkCrewMember verifies a worker's role, home store, and hour eligibility
// for an assignment at the given store.
func checkCrewMember(w *worker.DeliveryWorker, role worker.Role, paramName, storeID string) error {
	if w.Role() != role {
		return errs.NewForbiddenError(paramName, "worker does not hold the "+role.String()+" role")
	}
	if w.StoreID().String() != storeID {
		return errs.NewForbiddenError(paramName, "worker belongs to a different store")
	}
	if !w.CanAssign() {
		return errs.NewForbiddenError(paramName, "worker has reached the weekly hour ceiling")
	}
	return nil
}
