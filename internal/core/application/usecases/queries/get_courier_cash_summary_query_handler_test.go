package queries_test

import (
	"context"
	"testing"
	"time"

	"deliverypay/internal/adapters/out/postgres/cashrepo"
	"deliverypay/internal/adapters/out/postgres/orderrepo"
	"deliverypay/internal/core/application/usecases/queries"
	"deliverypay/internal/core/domain/model/courier"
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCourierCashSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCourierCashSummaryQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	cashRepo  *cashrepo.GormCashRepository
	courierID kernel.UUID
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.HistoryDTO{},
		&cashrepo.CashTransactionDTO{}, &cashrepo.ShortfallDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCourierCashSummaryQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.cashRepo = cashrepo.NewGormCashRepository(db, &mockAggregateTracker{})
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_history, courier_cash_transactions, courier_shortfalls CASCADE").Error
	suite.Require().NoError(err)

	suite.courierID = kernel.NewUUID()
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) periodStart() kernel.ReportDate {
	return kernel.NewReportDate(2024, time.March, 1)
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) periodEnd() kernel.ReportDate {
	return kernel.NewReportDate(2024, time.March, 31)
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) addOrder(
	courierID kernel.UUID,
	status order.Status,
	paymentStatus order.PaymentStatus,
	articleAmount int64,
	expeditionFee int64,
	reportDate kernel.ReportDate,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		&courierID,
		order.Details{
			CustomerName:    "Mariama Sow",
			DeliveryAddress: "Medina, Dakar",
			ArticleAmount:   kernel.MoneyFromInt(articleAmount),
			DeliveryFee:     kernel.MoneyFromInt(500),
			ExpeditionFee:   kernel.MoneyFromInt(expeditionFee),
			ReportDate:      reportDate,
		},
		kernel.ZeroMoney(),
		status,
		paymentStatus,
		nil,
		nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) addTransaction(
	txType courier.CashTransactionType,
	status courier.CashTransactionStatus,
	amount int64,
	reportDate kernel.ReportDate,
) *courier.CashTransaction {
	tx, err := courier.RestoreCashTransaction(
		kernel.NewUUID(), suite.courierID, txType, kernel.MoneyFromInt(amount), status, reportDate)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.cashRepo.AddTransaction(context.Background(), tx))
	return tx
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) addShortfall(
	status courier.ShortfallStatus,
	amount int64,
	reportDate kernel.ReportDate,
) *courier.Shortfall {
	shortfall, err := courier.RestoreShortfall(
		kernel.NewUUID(), suite.courierID, kernel.MoneyFromInt(amount), status, reportDate)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.cashRepo.AddShortfall(context.Background(), shortfall))
	return shortfall
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) handle() *queries.GetCourierCashSummaryQueryResponse {
	query, err := queries.NewGetCourierCashSummaryQuery(
		suite.courierID, suite.periodStart(), suite.periodEnd())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	return result
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) TestHandle_NoActivity_AllZero() {
	result := suite.handle()

	suite.True(result.TotalOrdersAmount.IsEqual(kernel.ZeroMoney()))
	suite.True(result.TotalRemittances.IsEqual(kernel.ZeroMoney()))
	suite.True(result.TotalExpenses.IsEqual(kernel.ZeroMoney()))
	suite.True(result.TotalPendingShortfalls.IsEqual(kernel.ZeroMoney()))
	suite.True(result.AmountExpected.IsEqual(kernel.ZeroMoney()))
	suite.True(result.AmountConfirmed.IsEqual(kernel.ZeroMoney()))
	suite.Empty(result.Events)
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) TestHandle_CashOrderRemittanceAndShortfall() {
	day := kernel.NewReportDate(2024, time.March, 15)

	cashOrder := suite.addOrder(
		suite.courierID, order.StatusDelivered, order.PaymentCash, 3000, 0, day)
	suite.addTransaction(
		courier.CashTransactionRemittance, courier.CashTransactionStatusConfirmed, 1000, day)
	shortfall := suite.addShortfall(courier.ShortfallStatusPending, 200, day)

	result := suite.handle()

	suite.True(result.TotalOrdersAmount.IsEqual(kernel.MoneyFromInt(3000)))
	suite.True(result.TotalRemittances.IsEqual(kernel.MoneyFromInt(1000)))
	suite.True(result.TotalPendingShortfalls.IsEqual(kernel.MoneyFromInt(200)))
	suite.True(result.AmountExpected.IsEqual(kernel.MoneyFromInt(2000)))
	suite.True(result.AmountConfirmed.IsEqual(kernel.MoneyFromInt(800)))

	// The remittance backs the totals but is not an event itself.
	suite.Require().Len(result.Events, 2)
	suite.Equal(queries.CashEventOrder, result.Events[0].Kind)
	suite.Equal(cashOrder.ID(), result.Events[0].ReferenceID)
	suite.True(result.Events[0].Amount.IsEqual(kernel.MoneyFromInt(3000)))
	suite.Equal(queries.CashEventShortfall, result.Events[1].Kind)
	suite.Equal(shortfall.ID(), result.Events[1].ReferenceID)
	suite.True(result.Events[1].Amount.IsEqual(kernel.MoneyFromInt(200)))
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) TestHandle_PaidToSupplierOrder_FrontedFeeIsNegative() {
	day := kernel.NewReportDate(2024, time.March, 10)

	suite.addOrder(
		suite.courierID, order.StatusDelivered, order.PaymentPaidToSupplier, 5000, 200, day)

	result := suite.handle()

	suite.True(result.TotalOrdersAmount.IsEqual(kernel.MoneyFromInt(-200)))
	suite.True(result.AmountExpected.IsEqual(kernel.MoneyFromInt(-200)))

	suite.Require().Len(result.Events, 1)
	suite.True(result.Events[0].Amount.IsEqual(kernel.MoneyFromInt(-200)))
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) TestHandle_FailedDeliveryCash_Counted() {
	day := kernel.NewReportDate(2024, time.March, 12)

	suite.addOrder(
		suite.courierID, order.StatusFailedDelivery, order.PaymentCash, 1500, 0, day)

	result := suite.handle()

	suite.True(result.TotalOrdersAmount.IsEqual(kernel.MoneyFromInt(1500)))
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) TestHandle_ExpensesCounted() {
	day := kernel.NewReportDate(2024, time.March, 20)

	expense := suite.addTransaction(
		courier.CashTransactionExpense, courier.CashTransactionStatusPending, 350, day)

	result := suite.handle()

	suite.True(result.TotalExpenses.IsEqual(kernel.MoneyFromInt(350)))
	suite.Require().Len(result.Events, 1)
	suite.Equal(queries.CashEventExpense, result.Events[0].Kind)
	suite.Equal(expense.ID(), result.Events[0].ReferenceID)
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) TestHandle_IgnoresOutOfScopeRows() {
	day := kernel.NewReportDate(2024, time.March, 15)

	// Another courier's order.
	suite.addOrder(kernel.NewUUID(), order.StatusDelivered, order.PaymentCash, 9000, 0, day)
	// Outside the period.
	suite.addOrder(suite.courierID, order.StatusDelivered, order.PaymentCash, 9000, 0,
		suite.periodEnd().AddDays(1))
	// Still en route, nothing collected yet.
	suite.addOrder(suite.courierID, order.StatusEnRoute, order.PaymentPending, 9000, 0, day)
	// Customer paid the shop and no expedition fee was fronted.
	suite.addOrder(suite.courierID, order.StatusDelivered, order.PaymentPaidToSupplier, 9000, 0, day)
	// Unconfirmed remittance hand-over.
	suite.addTransaction(
		courier.CashTransactionRemittance, courier.CashTransactionStatusPending, 700, day)
	// Shortfall the courier already covered.
	suite.addShortfall(courier.ShortfallStatusSettled, 400, day)

	result := suite.handle()

	suite.True(result.TotalOrdersAmount.IsEqual(kernel.ZeroMoney()))
	suite.True(result.TotalRemittances.IsEqual(kernel.ZeroMoney()))
	suite.True(result.TotalPendingShortfalls.IsEqual(kernel.ZeroMoney()))
	suite.Empty(result.Events)
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) TestHandle_EventsSortedByDate() {
	suite.addShortfall(courier.ShortfallStatusPending, 100, kernel.NewReportDate(2024, time.March, 20))
	suite.addOrder(suite.courierID, order.StatusDelivered, order.PaymentCash, 2000, 0,
		kernel.NewReportDate(2024, time.March, 5))
	suite.addTransaction(courier.CashTransactionExpense, courier.CashTransactionStatusConfirmed,
		300, kernel.NewReportDate(2024, time.March, 12))

	result := suite.handle()

	suite.Require().Len(result.Events, 3)
	suite.Equal(queries.CashEventOrder, result.Events[0].Kind)
	suite.Equal(queries.CashEventExpense, result.Events[1].Kind)
	suite.Equal(queries.CashEventShortfall, result.Events[2].Kind)
	for i := 1; i < len(result.Events); i++ {
		suite.False(result.Events[i].Date.Before(result.Events[i-1].Date))
	}
}

func (suite *GetCourierCashSummaryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCourierCashSummaryQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCourierCashSummaryQuery constructor")
}

func TestGetCourierCashSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCourierCashSummaryQueryHandlerTestSuite))
}
