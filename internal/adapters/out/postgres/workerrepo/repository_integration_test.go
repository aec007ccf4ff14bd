package workerrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/sheronjay/supply-chain-management-sys/internal/adapters/out/postgres/workerrepo"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/kernel"
	"github.com/sheronjay/supply-chain-management-sys/internal/core/domain/model/worker"
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

// WorkerRepositoryIntegrationTestSuite verifies worker persistence and the
// weekly hour reset against a real PostgreSQL container.
type WorkerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *workerrepo.GormWorkerRepository
	tracker    *MockAggregateTracker
}

func (suite *WorkerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&workerrepo.DeliveryWorkerDTO{}))
}

func (suite *WorkerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_workers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = workerrepo.NewGormWorkerRepository(suite.db, suite.tracker)
}

func (suite *WorkerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *WorkerRepositoryIntegrationTestSuite) mustID(value string) kernel.ID {
	id, err := kernel.NewID(value)
	suite.Require().NoError(err)
	return id
}

func (suite *WorkerRepositoryIntegrationTestSuite) createTestWorker(
	workerID string, role worker.Role, hours float64,
) *worker.DeliveryWorker {
	w, err := worker.RestoreDeliveryWorker(
		suite.mustID(workerID), suite.mustID("ST-CMB-01"), "Test Worker", role, hours,
	)
	suite.Require().NoError(err)
	return w
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()

	w := suite.createTestWorker("USR-21", worker.RoleDriver, 38.5)
	suite.Require().NoError(suite.repository.Add(ctx, w))

	loaded, err := suite.repository.Get(ctx, w.ID())
	suite.Require().NoError(err)
	suite.Equal(worker.RoleDriver, loaded.Role())
	suite.InDelta(38.5, loaded.WorkedHours(), 1e-9)
	suite.True(loaded.CanAssign())
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), suite.mustID("USR-404"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestUpdate_ZeroHoursPersist() {
	ctx := context.Background()

	w := suite.createTestWorker("USR-21", worker.RoleAssistant, 12)
	suite.Require().NoError(suite.repository.Add(ctx, w))

	// Zero is a legitimate value and must actually be written.
	w.ResetWeeklyHours()
	suite.Require().NoError(suite.repository.Update(ctx, w))

	loaded, err := suite.repository.Get(ctx, w.ID())
	suite.Require().NoError(err)
	suite.InDelta(0.0, loaded.WorkedHours(), 1e-9)
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestResetAllHours() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestWorker("USR-21", worker.RoleDriver, 41)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestWorker("USR-22", worker.RoleAssistant, 15)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestWorker("USR-23", worker.RoleDriver, 0)))

	affected, err := suite.repository.ResetAllHours(ctx, kernel.ID{})
	suite.Require().NoError(err)
	suite.Equal(int64(2), affected)

	for _, id := range []string{"USR-21", "USR-22", "USR-23"} {
		loaded, loadErr := suite.repository.Get(ctx, suite.mustID(id))
		suite.Require().NoError(loadErr)
		suite.InDelta(0.0, loaded.WorkedHours(), 1e-9)
		suite.True(loaded.CanAssign())
	}
}

func (suite *WorkerRepositoryIntegrationTestSuite) TestResetAllHours_StoreScoped() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestWorker("USR-21", worker.RoleDriver, 41)))

	other, err := worker.RestoreDeliveryWorker(
		suite.mustID("USR-31"), suite.mustID("ST-GAL-02"), "Other Store", worker.RoleDriver, 20,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, other))

	affected, err := suite.repository.ResetAllHours(ctx, suite.mustID("ST-CMB-01"))
	suite.Require().NoError(err)
	suite.Equal(int64(1), affected)

	untouched, err := suite.repository.Get(ctx, suite.mustID("USR-31"))
	suite.Require().NoError(err)
	suite.InDelta(20.0, untouched.WorkedHours(), 1e-9)
}

func TestWorkerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerRepositoryIntegrationTestSuite))
}
