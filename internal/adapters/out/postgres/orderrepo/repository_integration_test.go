package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/model/publication"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using a PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(original.ID()))
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.InDelta(original.TotalPrice(), retrieved.TotalPrice(), 0)

	items := retrieved.Items()
	suite.Require().Len(items, 2)

	suite.Equal(publication.Book, items[0].Kind())
	suite.Equal("The Go Programming Language", items[0].Title())
	suite.Equal("Donovan", items[0].Author())
	suite.Equal("978-0134190440", items[0].ISBN())

	suite.Equal(publication.Magazine, items[1].Kind())
	suite.Equal(42, items[1].IssueNumber())
	suite.Equal("NGS", items[1].Publisher())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	unknown, err := kernel.OrderIDFromString("ord-00000000")
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, unknown)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsOrdersSortedByID() {
	ctx := context.Background()

	for range 5 {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder()))
	}

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 5)

	for i := 1; i < len(orders); i++ {
		suite.Less(orders[i-1].ID().String(), orders[i].ID().String())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_EmptyTable_ReturnsEmptySlice() {
	orders, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_LegalTransitions() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	for _, target := range []order.Status{order.Shipped, order.Delivered} {
		updated, err := suite.repository.UpdateStatus(ctx, testOrder.ID(), target)
		suite.Require().NoError(err)
		suite.Equal(target, updated.Status())
	}

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_IllegalTransition_LeavesRowUnchanged() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	_, err := suite.repository.UpdateStatus(ctx, testOrder.ID(), order.Delivered)

	suite.Require().ErrorIs(err, order.ErrInvalidTransition)

	var transitionErr *order.InvalidTransitionError
	suite.Require().ErrorAs(err, &transitionErr)
	suite.Equal(order.Pending, transitionErr.From)
	suite.Equal(order.Delivered, transitionErr.To)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_NonExistentOrder_ReturnsNotFoundError() {
	unknown, err := kernel.OrderIDFromString("ord-ffffffff")
	suite.Require().NoError(err)

	_, err = suite.repository.UpdateStatus(context.Background(), unknown, order.Shipped)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCancel_PendingAndShippedOrders() {
	ctx := context.Background()

	pending := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	shipped := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, shipped))
	_, err := suite.repository.UpdateStatus(ctx, shipped.ID(), order.Shipped)
	suite.Require().NoError(err)

	for _, id := range []kernel.OrderID{pending.ID(), shipped.ID()} {
		cancelled, cancelErr := suite.repository.Cancel(ctx, id)
		suite.Require().NoError(cancelErr)
		suite.Equal(order.Cancelled, cancelled.Status())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCancel_DeliveredOrder_ReturnsInvalidTransition() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	_, err := suite.repository.UpdateStatus(ctx, testOrder.ID(), order.Shipped)
	suite.Require().NoError(err)
	_, err = suite.repository.UpdateStatus(ctx, testOrder.ID(), order.Delivered)
	suite.Require().NoError(err)

	_, err = suite.repository.Cancel(ctx, testOrder.ID())

	suite.Require().ErrorIs(err, order.ErrInvalidTransition)
}

// TestConcurrentReads verifies that parallel readers all observe the same
// committed row.
func (suite *OrderRepositoryIntegrationTestSuite) TestConcurrentReads() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	results := make(chan *order.Order, 3)
	readErrors := make(chan error, 3)

	for range 3 {
		go func() {
			retrieved, readErr := suite.repository.Get(ctx, testOrder.ID())
			if readErr != nil {
				readErrors <- readErr
			} else {
				results <- retrieved
			}
		}()
	}

	for range 3 {
		select {
		case result := <-results:
			suite.True(result.ID().IsEqual(testOrder.ID()))
		case readErr := <-readErrors:
			suite.Failf("unexpected error in concurrent read", "%v", readErr)
		}
	}
}

// createTestOrder creates a basic two-line order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	book, err := publication.NewBook(
		"pub-1", "The Go Programming Language", "2015-10-26", 19.99, "Donovan", "978-0134190440")
	suite.Require().NoError(err)
	magazine, err := publication.NewMagazine(
		"pub-2", "National Geographic", "2023-06-15", 9.98, 42, "NGS")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewOrderID(), "cust-789012", []publication.Publication{book, magazine})
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
