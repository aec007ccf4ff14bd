package commands_test

import (
	"testing"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/application/usecases/commands"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/worker"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateWorkingHoursCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	w := newWorker(t, "USR-21", "ST-CMB-01", worker.RoleDriver, 30)

	workerRepo := new(MockWorkerRepository)
	workerRepo.On("GetForUpdate", mock.Anything, mustID(t, "USR-21")).Return(w, nil)
	workerRepo.On("Update", mock.Anything, w).Return(nil)

	uow := new(MockUoW)
	expectTx(uow)
	uow.On("WorkerRepository").Return(workerRepo)

	factory := new(MockWorkerUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewUpdateWorkingHoursCommandHandler(factory)
	cmd, err := commands.NewUpdateWorkingHoursCommand(mustID(t, "USR-21"), 38.5)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "USR-21", result.WorkerID)
	assert.InDelta(t, 38.5, result.WorkedHours, 1e-9)
	assert.True(t, result.CanAssign)
	workerRepo.AssertExpectations(t)
}

func TestUpdateWorkingHoursCommandHandler_Handle_OvertimeDisablesAssignment(t *testing.T) {
	ctx := t.Context()

	w := newWorker(t, "USR-21", "ST-CMB-01", worker.RoleDriver, 39)

	workerRepo := new(MockWorkerRepository)
	workerRepo.On("GetForUpdate", mock.Anything, mustID(t, "USR-21")).Return(w, nil)
	workerRepo.On("Update", mock.Anything, w).Return(nil)

	uow := new(MockUoW)
	expectTx(uow)
	uow.On("WorkerRepository").Return(workerRepo)

	factory := new(MockWorkerUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewUpdateWorkingHoursCommandHandler(factory)
	cmd, err := commands.NewUpdateWorkingHoursCommand(mustID(t, "USR-21"), 41.5)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, cmd)

	// Overtime is recorded; the worker just becomes ineligible.
	require.NoError(t, err)
	assert.InDelta(t, 41.5, result.WorkedHours, 1e-9)
	assert.False(t, result.CanAssign)
}

func TestNewUpdateWorkingHoursCommand_NegativeHours(t *testing.T) {
	_, err := commands.NewUpdateWorkingHoursCommand(mustID(t, "USR-21"), -1)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestResetWeeklyHoursCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	workerRepo := new(MockWorkerRepository)
	workerRepo.On("ResetAllHours", mock.Anything, kernel.ID{}).Return(int64(17), nil)

	uow := new(MockUoW)
	expectTx(uow)
	uow.On("WorkerRepository").Return(workerRepo)

	factory := new(MockWorkerUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewResetWeeklyHoursCommandHandler(factory)

	affected, err := handler.Handle(ctx, commands.NewResetWeeklyHoursCommand())

	require.NoError(t, err)
	assert.Equal(t, int64(17), affected)
	uow.AssertCalled(t, "Commit", mock.Anything)
}

func TestResetWeeklyHoursCommandHandler_Handle_StoreScoped(t *testing.T) {
	ctx := t.Context()

	workerRepo := new(MockWorkerRepository)
	workerRepo.On("ResetAllHours", mock.Anything, mustID(t, "ST-CMB-01")).Return(int64(4), nil)

	uow := new(MockUoW)
	expectTx(uow)
	uow.On("WorkerRepository").Return(workerRepo)

	factory := new(MockWorkerUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewResetWeeklyHoursCommandHandler(factory)
	cmd, err := commands.NewResetWeeklyHoursCommandForStore(mustID(t, "ST-CMB-01"))
	require.NoError(t, err)

	affected, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(4), affected)
	workerRepo.AssertExpectations(t)
}
