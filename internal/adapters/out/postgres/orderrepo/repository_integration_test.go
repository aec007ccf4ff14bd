package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/sheronjay/supply-chain-management-sys/internal/adapters/out/postgres/orderrepo"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/order"
	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence, including
// the round trip of every status and carrier combination, against a real
// PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) mustID(value string) kernel.ID {
	id, err := kernel.NewID(value)
	suite.Require().NoError(err)
	return id
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(orderID string) *order.Order {
	item, err := order.NewItem(suite.mustID("PROD-1"), 2, 1.25)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		suite.mustID(orderID),
		suite.mustID("CUS-1"),
		suite.mustID("ST-CMB-01"),
		kernel.ID{},
		time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		99.90,
		[]order.Item{item},
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-100")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(order.CarrierUnassigned, loaded.Carrier().Kind())
	suite.Len(loaded.Items(), 1)
	suite.InDelta(2.5, loaded.RequiredCapacity(), 1e-9)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), suite.mustID("ORD-404"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FullLifecycleRoundTrip() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-101")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Walk the whole pipeline, persisting and re-reading at every step.
	suite.Require().NoError(testOrder.DispatchToTrain(suite.mustID("TR-9")))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OnTrain, loaded.Status())
	suite.Equal("TR-9", loaded.Carrier().TripID().String())

	suite.Require().NoError(testOrder.AcceptAtStore())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InStore, loaded.Status())
	suite.Equal("ST-CMB-01", loaded.Carrier().StoreID().String())

	suite.Require().NoError(testOrder.AssignToTruck(
		suite.mustID("TRK-4"), suite.mustID("USR-21"), suite.mustID("USR-22"),
	))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OnTruck, loaded.Status())
	suite.Equal("USR-21", loaded.Carrier().DriverID().String())
	suite.Equal("USR-22", loaded.Carrier().AssistantID().String())

	suite.Require().NoError(testOrder.MarkDelivered(suite.mustID("USR-21")))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, loaded.Status())
	suite.Equal("USR-21", loaded.Carrier().DriverID().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	testOrder := suite.createTestOrder("ORD-102")

	err := suite.repository.Update(context.Background(), testOrder)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
