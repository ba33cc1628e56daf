package commands_test

import (
	"errors"
	"testing"

	"deliverypay/internal/core/application/usecases/commands"
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/ledger"
	"deliverypay/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDeliveredOrder(t *testing.T, shopID kernel.UUID) *order.Order {
	t.Helper()
	courierID := kernel.NewUUID()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), shopID, &courierID,
		order.Details{
			CustomerName:    "Awa Kone",
			CustomerPhone:   "+22501020304",
			DeliveryAddress: "Cocody, Abidjan",
			ArticleAmount:   kernel.MoneyFromInt(5000),
			DeliveryFee:     kernel.MoneyFromInt(500),
			ExpeditionFee:   kernel.MoneyFromInt(200),
			ReportDate:      testReportDate(t),
		},
		kernel.ZeroMoney(), order.StatusDelivered, order.PaymentCash, nil, nil)
	require.NoError(t, err)
	return o
}

func testUpdateOrderCommand(
	t *testing.T, orderID kernel.UUID, articleAmount kernel.Money, reportDate kernel.ReportDate,
) commands.UpdateOrderCommand {
	t.Helper()
	cmd, err := commands.NewUpdateOrderCommand(
		orderID, "Awa Kone", "+22501020304", "Cocody, Abidjan",
		articleAmount, kernel.MoneyFromInt(500), kernel.MoneyFromInt(200),
		reportDate, nil, kernel.NewUUID())
	require.NoError(t, err)
	return cmd
}

func TestUpdateOrderCommandHandler_Handle_AmountChange(t *testing.T) {
	ctx := t.Context()
	shopAggregate := testShop(t)
	orderAggregate := testDeliveredOrder(t, shopAggregate.ID())

	cmd := testUpdateOrderCommand(t, orderAggregate.ID(), kernel.MoneyFromInt(6000), testReportDate(t))

	// Same accounting day: the reversal and the reapplication collapse into
	// one delta, here the 1000 revenue difference.
	expected := ledger.Delta{RevenueArticles: kernel.MoneyFromInt(1000)}
	balance := testBalance(t, shopAggregate.ID(), expected)

	orderRepo := new(MockOrderRepository)
	shopRepo := new(MockShopRepository)
	balanceRepo := new(MockBalanceRepository)
	debtRepo := new(MockDebtRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderAggregate.ID()).Return(orderAggregate, nil).Once(),
		uow.On("ShopRepository").Return(shopRepo).Once(),
		shopRepo.On("Get", mock.Anything, shopAggregate.ID()).Return(shopAggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, orderAggregate).Return(nil).Once(),
		uow.On("BalanceRepository").Return(balanceRepo).Once(),
		balanceRepo.On("ApplyDelta", mock.Anything, shopAggregate.ID(), testReportDate(t),
			mock.MatchedBy(expected.IsEqual)).Return(balance, nil).Once(),
		uow.On("DebtRepository").Return(debtRepo).Once(),
		debtRepo.On("GetDailyBalanceDebt", mock.Anything, shopAggregate.ID(), testReportDate(t)).
			Return(nil, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, orderAggregate.ArticleAmount().IsEqual(kernel.MoneyFromInt(6000)))
	balanceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ReportDateChange(t *testing.T) {
	ctx := t.Context()
	shopAggregate := testShop(t)
	orderAggregate := testDeliveredOrder(t, shopAggregate.ID())

	oldDate := testReportDate(t)
	newDate, err := kernel.ReportDateFromString("2024-03-16")
	require.NoError(t, err)

	cmd := testUpdateOrderCommand(t, orderAggregate.ID(), kernel.MoneyFromInt(5000), newDate)

	contribution := ledger.Delta{
		OrdersDelivered: 1,
		RevenueArticles: kernel.MoneyFromInt(5000),
		DeliveryFees:    kernel.MoneyFromInt(500),
		PackagingFees:   kernel.MoneyFromInt(100),
		ExpeditionFees:  kernel.MoneyFromInt(200),
	}
	reversal := contribution.Negate()

	// The old day keeps a positive residual after the reversal, the new day
	// gains the full contribution. Neither side needs a debt.
	oldBalance := testBalance(t, shopAggregate.ID(), ledger.Delta{RevenueArticles: kernel.MoneyFromInt(9000)})
	newBalance := testBalance(t, shopAggregate.ID(), contribution)

	orderRepo := new(MockOrderRepository)
	shopRepo := new(MockShopRepository)
	balanceRepo := new(MockBalanceRepository)
	debtRepo := new(MockDebtRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderAggregate.ID()).Return(orderAggregate, nil).Once(),
		uow.On("ShopRepository").Return(shopRepo).Once(),
		shopRepo.On("Get", mock.Anything, shopAggregate.ID()).Return(shopAggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, orderAggregate).Return(nil).Once(),
		uow.On("BalanceRepository").Return(balanceRepo).Once(),
		balanceRepo.On("ApplyDelta", mock.Anything, shopAggregate.ID(), oldDate,
			mock.MatchedBy(reversal.IsEqual)).Return(oldBalance, nil).Once(),
		uow.On("DebtRepository").Return(debtRepo).Once(),
		debtRepo.On("GetDailyBalanceDebt", mock.Anything, shopAggregate.ID(), oldDate).
			Return(nil, nil).Once(),
		uow.On("BalanceRepository").Return(balanceRepo).Once(),
		balanceRepo.On("ApplyDelta", mock.Anything, shopAggregate.ID(), newDate,
			mock.MatchedBy(contribution.IsEqual)).Return(newBalance, nil).Once(),
		uow.On("DebtRepository").Return(debtRepo).Once(),
		debtRepo.On("GetDailyBalanceDebt", mock.Anything, shopAggregate.ID(), newDate).
			Return(nil, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	balanceRepo.AssertExpectations(t)
	debtRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd := testUpdateOrderCommand(t, orderID, kernel.MoneyFromInt(5000), testReportDate(t))

	notFound := errors.New("order not found")
	orderRepo := new(MockOrderRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, notFound)
	uow.AssertExpectations(t)
}
