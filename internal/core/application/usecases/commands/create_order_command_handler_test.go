package commands_test

import (
	"errors"
	"testing"

	"deliverypay/internal/core/application/usecases/commands"
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/ledger"
	"deliverypay/internal/core/domain/model/shop"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared fixtures for the command handler tests.
func testReportDate(t *testing.T) kernel.ReportDate {
	t.Helper()
	d, err := kernel.ReportDateFromString("2024-03-15")
	require.NoError(t, err)
	return d
}

func testShop(t *testing.T) *shop.Shop {
	t.Helper()
	s, err := shop.NewShop(kernel.NewUUID(), "Boutique Awa", "", true, kernel.MoneyFromInt(100))
	require.NoError(t, err)
	return s
}

func testBalance(t *testing.T, shopID kernel.UUID, delta ledger.Delta) *ledger.DailyBalance {
	t.Helper()
	b, err := ledger.NewDailyBalance(shopID, testReportDate(t))
	require.NoError(t, err)
	b.Apply(delta)
	return b
}

func testCreateOrderCommand(t *testing.T, shopID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), shopID,
		"Awa Kone", "+22501020304", "Cocody, Abidjan",
		kernel.MoneyFromInt(5000), kernel.MoneyFromInt(500), kernel.MoneyFromInt(200),
		testReportDate(t), nil, kernel.NewUUID())
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shopAggregate := testShop(t)
	cmd := testCreateOrderCommand(t, shopAggregate.ID())

	// A fresh order is pending: only the orders_sent marker hits the ledger,
	// the balance stays non-negative and no debt write happens.
	balance := testBalance(t, shopAggregate.ID(), ledger.Delta{OrdersSent: 1})

	orderRepo := new(MockOrderRepository)
	shopRepo := new(MockShopRepository)
	balanceRepo := new(MockBalanceRepository)
	debtRepo := new(MockDebtRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShopRepository").Return(shopRepo).Once(),
		shopRepo.On("Get", mock.Anything, shopAggregate.ID()).Return(shopAggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("BalanceRepository").Return(balanceRepo).Once(),
		balanceRepo.On("ApplyDelta", mock.Anything, shopAggregate.ID(), mock.Anything, mock.Anything).
			Return(balance, nil).Once(),
		uow.On("DebtRepository").Return(debtRepo).Once(),
		debtRepo.On("GetDailyBalanceDebt", mock.Anything, shopAggregate.ID(), mock.Anything).
			Return(nil, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	shopRepo.AssertExpectations(t)
	balanceRepo.AssertExpectations(t)
	debtRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockLedgerUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_ShopNotFound(t *testing.T) {
	ctx := t.Context()
	shopID := kernel.NewUUID()
	cmd := testCreateOrderCommand(t, shopID)

	shopRepo := new(MockShopRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShopRepository").Return(shopRepo).Once(),
		shopRepo.On("Get", mock.Anything, shopID).Return(nil, errors.New("shop not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateOrderCommand(t, kernel.NewUUID())

	uow := new(MockLedgerUoW)
	factory := new(MockLedgerUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	shopAggregate := testShop(t)
	cmd := testCreateOrderCommand(t, shopAggregate.ID())
	balance := testBalance(t, shopAggregate.ID(), ledger.Delta{OrdersSent: 1})

	orderRepo := new(MockOrderRepository)
	shopRepo := new(MockShopRepository)
	balanceRepo := new(MockBalanceRepository)
	debtRepo := new(MockDebtRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShopRepository").Return(shopRepo).Once(),
		shopRepo.On("Get", mock.Anything, shopAggregate.ID()).Return(shopAggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("BalanceRepository").Return(balanceRepo).Once(),
		balanceRepo.On("ApplyDelta", mock.Anything, shopAggregate.ID(), mock.Anything, mock.Anything).
			Return(balance, nil).Once(),
		uow.On("DebtRepository").Return(debtRepo).Once(),
		debtRepo.On("GetDailyBalanceDebt", mock.Anything, shopAggregate.ID(), mock.Anything).
			Return(nil, nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
