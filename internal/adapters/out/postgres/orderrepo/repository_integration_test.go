package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"deliverypay/internal/adapters/out/postgres/orderrepo"
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/order"
	"deliverypay/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// order repository, covering the aggregate roundtrip with line items and
// the append-only history trail.
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.HistoryDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_history CASCADE").Error
	suite.Require().NoError(err)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(items []order.Item) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.Details{
			CustomerName:    "Aminata Diop",
			CustomerPhone:   "+221771234567",
			DeliveryAddress: "Sicap Liberte 4, Dakar",
			ArticleAmount:   kernel.MoneyFromInt(5000),
			DeliveryFee:     kernel.MoneyFromInt(500),
			ExpeditionFee:   kernel.MoneyFromInt(200),
			ReportDate:      kernel.NewReportDate(2024, time.March, 15),
		},
		items,
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RestoresFullAggregate() {
	ctx := context.Background()

	item, err := order.NewItem(kernel.NewUUID(), "Yassa poulet", 2, kernel.MoneyFromInt(2500))
	suite.Require().NoError(err)
	testOrder := suite.createTestOrder([]order.Item{item})

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), restored.ID())
	suite.Equal(testOrder.ShopID(), restored.ShopID())
	suite.Nil(restored.Courier())
	suite.Equal(order.StatusPending, restored.Status())
	suite.Equal(order.PaymentPending, restored.PaymentStatus())
	suite.Equal("Aminata Diop", restored.Details().CustomerName)
	suite.True(restored.Details().ArticleAmount.IsEqual(kernel.MoneyFromInt(5000)))
	suite.True(restored.Details().ReportDate.IsEqual(kernel.NewReportDate(2024, time.March, 15)))

	suite.Require().Len(restored.Items(), 1)
	suite.Equal(item.ID(), restored.Items()[0].ID())
	suite.Equal("Yassa poulet", restored.Items()[0].Name())
	suite.Equal(2, restored.Items()[0].Quantity())

	suite.Require().Len(restored.History(), 1)
	suite.Equal(order.HistoryActionCreated, restored.History()[0].Action())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	restored, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(restored)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_SecondEditorReadsCommittedState() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testOrder := suite.createTestOrder(nil)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	tx1 := suite.db.Begin()
	suite.Require().NoError(tx1.Error)
	repo1 := orderrepo.NewGormOrderRepository(tx1, suite.tracker)

	locked, err := repo1.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), locked.ID())

	details := locked.Details()
	details.ArticleAmount = kernel.MoneyFromInt(7000)
	suite.Require().NoError(locked.ChangeDetails(details, nil, kernel.NewUUID()))
	suite.Require().NoError(repo1.Update(ctx, locked))

	type lockedRead struct {
		amount kernel.Money
		err    error
	}
	read := make(chan lockedRead, 1)
	go func() {
		tx2 := suite.db.Begin()
		if tx2.Error != nil {
			read <- lockedRead{err: tx2.Error}
			return
		}
		defer tx2.Rollback()

		repo2 := orderrepo.NewGormOrderRepository(tx2, suite.tracker)
		other, getErr := repo2.GetForUpdate(ctx, testOrder.ID())
		if getErr != nil {
			read <- lockedRead{err: getErr}
			return
		}
		read <- lockedRead{amount: other.Details().ArticleAmount}
	}()

	// Let the second editor reach the row lock before the first commits.
	// Its snapshot must reflect the committed edit, never the stale state
	// both editors started from.
	time.Sleep(200 * time.Millisecond)
	suite.Require().NoError(tx1.Commit().Error)

	got := <-read
	suite.Require().NoError(got.err)
	suite.True(got.amount.IsEqual(kernel.MoneyFromInt(7000)))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_NonExistentOrder_ReturnsNotFoundError() {
	restored, err := suite.repository.GetForUpdate(context.Background(), kernel.NewUUID())

	suite.Nil(restored)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesItemsAndAppendsHistory() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	item, err := order.NewItem(kernel.NewUUID(), "Mafe", 1, kernel.MoneyFromInt(3000))
	suite.Require().NoError(err)
	testOrder := suite.createTestOrder([]order.Item{item})
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	replacement, err := order.NewItem(kernel.NewUUID(), "Domoda", 3, kernel.MoneyFromInt(1500))
	suite.Require().NoError(err)
	actorID := kernel.NewUUID()
	suite.Require().NoError(testOrder.ChangeDetails(order.Details{
		CustomerName:    "Aminata Diop",
		CustomerPhone:   "+221771234567",
		DeliveryAddress: "Sicap Liberte 4, Dakar",
		ArticleAmount:   kernel.MoneyFromInt(4500),
		DeliveryFee:     kernel.MoneyFromInt(500),
		ExpeditionFee:   kernel.MoneyFromInt(200),
		ReportDate:      kernel.NewReportDate(2024, time.March, 15),
	}, []order.Item{replacement}, actorID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.Details().ArticleAmount.IsEqual(kernel.MoneyFromInt(4500)))

	suite.Require().Len(restored.Items(), 1)
	suite.Equal(replacement.ID(), restored.Items()[0].ID())
	suite.Equal("Domoda", restored.Items()[0].Name())

	suite.Require().Len(restored.History(), 2)
	suite.Equal(order.HistoryActionCreated, restored.History()[0].Action())
	suite.Equal(order.HistoryActionUpdated, restored.History()[1].Action())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_PersistsPaymentOutcome() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testOrder := suite.createTestOrder(nil)
	actorID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	courierID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignCourier(courierID, actorID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.StatusInProgress, restored.Status())
	suite.Require().NotNil(restored.Courier())
	suite.Equal(courierID, *restored.Courier())
	suite.Require().Len(restored.History(), 2)
	suite.Equal(order.HistoryActionAssigned, restored.History()[1].Action())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testOrder := suite.createTestOrder(nil)

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_DeletesOrderWithChildren() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	item, err := order.NewItem(kernel.NewUUID(), "Pastels", 6, kernel.MoneyFromInt(500))
	suite.Require().NoError(err)
	testOrder := suite.createTestOrder([]order.Item{item})
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Remove(ctx, testOrder.ID()))

	_, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().Error(err)

	var itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.ItemDTO{}).Count(&itemCount).Error)
	suite.Zero(itemCount)

	var historyCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.HistoryDTO{}).Count(&historyCount).Error)
	suite.Zero(historyCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_NonExistentOrder_ReturnsError() {
	err := suite.repository.Remove(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
