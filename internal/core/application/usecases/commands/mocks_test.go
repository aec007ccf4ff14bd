package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/application/usecases/commands"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/order"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/trip"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/worker"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) Add(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Get(ctx context.Context, id kernel.ID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Add(ctx context.Context, w *worker.DeliveryWorker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Update(ctx context.Context, w *worker.DeliveryWorker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.ID) (*worker.DeliveryWorker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.DeliveryWorker), args.Error(1)
}

func (m *MockWorkerRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*worker.DeliveryWorker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.DeliveryWorker), args.Error(1)
}

func (m *MockWorkerRepository) ResetAllHours(ctx context.Context, storeID kernel.ID) (int64, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW implements every unit of work shape the handlers use; tests wire
// only the repositories the handler under test touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

func (m *MockUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockCrewUoWFactory struct{ mock.Mock }

func (m *MockCrewUoWFactory) Create() commands.CrewUoW {
	args := m.Called()
	return args.Get(0).(commands.CrewUoW)
}

type MockWorkerUoWFactory struct{ mock.Mock }

func (m *MockWorkerUoWFactory) Create() commands.WorkerUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkerUoW)
}

// expectTx wires the standard transaction lifecycle on a unit of work mock.
func expectTx(uow *MockUoW) {
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
}

func mustID(t *testing.T, value string) kernel.ID {
	t.Helper()

	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func mustItem(t *testing.T, productID string, quantity int, spaceRate float64) order.Item {
	t.Helper()

	item, err := order.NewItem(mustID(t, productID), quantity, spaceRate)
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T, orderID, storeID string, items ...order.Item) *order.Order {
	t.Helper()

	if len(items) == 0 {
		items = []order.Item{mustItem(t, "PROD-1", 2, 1.25)}
	}

	o, err := order.NewOrder(
		mustID(t, orderID),
		mustID(t, "CUS-1"),
		mustID(t, storeID),
		kernel.ID{},
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		199.90,
		items,
	)
	require.NoError(t, err)
	return o
}

func newOnTrainOrder(t *testing.T, orderID, storeID, tripID string) *order.Order {
	t.Helper()

	o := newPendingOrder(t, orderID, storeID)
	require.NoError(t, o.DispatchToTrain(mustID(t, tripID)))
	return o
}

func newInStoreOrder(t *testing.T, orderID, storeID string) *order.Order {
	t.Helper()

	o := newOnTrainOrder(t, orderID, storeID, "TR-1")
	require.NoError(t, o.AcceptAtStore())
	return o
}

func newOnTruckOrder(t *testing.T, orderID, storeID, driverID string) *order.Order {
	t.Helper()

	o := newInStoreOrder(t, orderID, storeID)
	require.NoError(t, o.AssignToTruck(mustID(t, "TRK-1"), mustID(t, driverID), mustID(t, "USR-22")))
	return o
}

func newTrip(t *testing.T, tripID, storeID string, totalCapacity float64) *trip.Trip {
	t.Helper()

	tr, err := trip.NewTrip(
		mustID(t, tripID),
		mustID(t, storeID),
		time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		"08:30",
		totalCapacity,
	)
	require.NoError(t, err)
	return tr
}

func newWorker(t *testing.T, workerID, storeID string, role worker.Role, hours float64) *worker.DeliveryWorker {
	t.Helper()

	w, err := worker.RestoreDeliveryWorker(
		mustID(t, workerID), mustID(t, storeID), "Test Worker", role, hours,
	)
	require.NoError(t, err)
	return w
}
