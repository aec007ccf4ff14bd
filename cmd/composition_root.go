package cmd

import (
	"log/slog"

	"github.com/sheronjay/supply-chain-management-sys/internal/adapters/out/postgres"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/application/usecases/commands"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/application/usecases/queries"
	"github.com/sheronjay/supply-chain-management-sys/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchToTrainCommandHandler() commands.DispatchToTrainCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchToTrainCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptAtStoreCommandHandler() commands.AcceptAtStoreCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptAtStoreCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignTruckCommandHandler() commands.AssignTruckCommandHandler {
	var f commands.CrewUoWFactory = FuncCrewUoWFactory(func() commands.CrewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateWorkingHoursCommandHandler() commands.UpdateWorkingHoursCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateWorkingHoursCommandHandler(f)
}

func (c *CompositionRoot) CreateResetWeeklyHoursCommandHandler() commands.ResetWeeklyHoursCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetWeeklyHoursCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCandidateTripsQueryHandler() queries.GetCandidateTripsQueryHandler {
	return queries.NewGetCandidateTripsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEligibleWorkersQueryHandler() queries.GetEligibleWorkersQueryHandler {
	return queries.NewGetEligibleWorkersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverOrdersQueryHandler() queries.GetDriverOrdersQueryHandler {
	return queries.NewGetDriverOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateResetWeeklyHoursCommandHandler(), logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncCrewUoWFactory func() commands.CrewUoW

func (f FuncCrewUoWFactory) Create() commands.CrewUoW {
	return f()
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}
