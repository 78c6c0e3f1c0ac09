package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"solarstore/internal/adapters/out/postgres/orderrepo"
	"solarstore/internal/core/domain/model/kernel"
	"solarstore/internal/core/domain/model/order"
	"solarstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers.
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(number string) *order.Order {
	customer, err := order.NewCustomer("Ada Obi", "ada@example.com", "+2348000000000", "1 Marina Rd")
	suite.Require().NoError(err)

	panel, err := order.NewItem("Solar Panel 300W", decimal.NewFromInt(95000), 2)
	suite.Require().NoError(err)
	inverter, err := order.NewItem("Inverter 3kVA", decimal.NewFromInt(240000), 1)
	suite.Require().NoError(err)

	items := []order.Item{panel, inverter}
	aggregate, err := order.NewOrder(kernel.NewUUID(), number, customer, items, order.TotalOf(items))
	suite.Require().NoError(err)

	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("000001")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var orderCount, itemCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Table("order_items").Count(&itemCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(2), itemCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddThenGet_Roundtrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("000042")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(testOrder))
	suite.Equal("000042", loaded.Number())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal("Ada Obi", loaded.Customer().Name())
	suite.Len(loaded.Items(), 2)
	suite.True(loaded.TotalPrice().Equal(testOrder.TotalPrice()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_Conflict() {
	ctx := context.Background()
	first := suite.createTestOrder("000007")
	second := suite.createTestOrder("000007")

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)

	// The conflicting order must not have been tracked.
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ChangesStatusOnly() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("000010")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	var before orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&before, "id = ?", testOrder.ID().Bytes()).Error)

	// Keep the clock strictly ahead of the insert timestamp so the
	// updated_at comparison below cannot tie.
	time.Sleep(10 * time.Millisecond)

	suite.Require().NoError(testOrder.ChangeStatus(order.Shipped))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, loaded.Status())
	suite.Len(loaded.Items(), 2)

	var after orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&after, "id = ?", testOrder.ID().Bytes()).Error)

	// The transition touches updated_at and nothing else of the record's
	// identity: created_at stays put.
	suite.True(after.UpdatedAt.After(before.UpdatedAt))
	suite.True(after.CreatedAt.Equal(before.CreatedAt))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_NotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("000099")

	err := suite.repository.Update(ctx, testOrder)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
