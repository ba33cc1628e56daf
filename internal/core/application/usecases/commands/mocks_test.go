package commands_test

import (
	"context"
	"time"

	"deliverypay/internal/core/application/usecases/commands"
	"deliverypay/internal/core/domain/model/courier"
	"deliverypay/internal/core/domain/model/finance"
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/ledger"
	"deliverypay/internal/core/domain/model/order"
	"deliverypay/internal/core/domain/model/shop"
	"deliverypay/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the command handler tests. One mock per port; the
// unit of work mocks compose them per handler family.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Add(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShopRepository) Update(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

type MockBalanceRepository struct{ mock.Mock }

func (m *MockBalanceRepository) ApplyDelta(
	ctx context.Context,
	shopID kernel.UUID,
	reportDate kernel.ReportDate,
	delta ledger.Delta,
) (*ledger.DailyBalance, error) {
	args := m.Called(ctx, shopID, reportDate, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.DailyBalance), args.Error(1)
}
func (m *MockBalanceRepository) Get(
	ctx context.Context,
	shopID kernel.UUID,
	reportDate kernel.ReportDate,
) (*ledger.DailyBalance, error) {
	args := m.Called(ctx, shopID, reportDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.DailyBalance), args.Error(1)
}
func (m *MockBalanceRepository) GetAllWithPositiveRemittance(ctx context.Context) ([]*ledger.DailyBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.DailyBalance), args.Error(1)
}

type MockDebtRepository struct{ mock.Mock }

func (m *MockDebtRepository) Add(ctx context.Context, d *finance.Debt) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDebtRepository) Update(ctx context.Context, d *finance.Debt) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDebtRepository) GetDailyBalanceDebt(
	ctx context.Context,
	shopID kernel.UUID,
	date kernel.ReportDate,
) (*finance.Debt, error) {
	args := m.Called(ctx, shopID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Debt), args.Error(1)
}
func (m *MockDebtRepository) SumPendingByShop(ctx context.Context, shopID kernel.UUID) (kernel.Money, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).(kernel.Money), args.Error(1)
}
func (m *MockDebtRepository) SettleAllPending(
	ctx context.Context,
	shopID kernel.UUID,
	at time.Time,
) (kernel.Money, error) {
	args := m.Called(ctx, shopID, at)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockRemittanceRepository struct{ mock.Mock }

func (m *MockRemittanceRepository) Add(ctx context.Context, r *finance.Remittance) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRemittanceRepository) Update(ctx context.Context, r *finance.Remittance) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRemittanceRepository) Get(ctx context.Context, id kernel.UUID) (*finance.Remittance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Remittance), args.Error(1)
}
func (m *MockRemittanceRepository) GetByShopAndDate(
	ctx context.Context,
	shopID kernel.UUID,
	date kernel.ReportDate,
) (*finance.Remittance, error) {
	args := m.Called(ctx, shopID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Remittance), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockCashRepository struct{ mock.Mock }

func (m *MockCashRepository) AddTransaction(ctx context.Context, tx *courier.CashTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockCashRepository) UpdateTransaction(ctx context.Context, tx *courier.CashTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockCashRepository) GetTransaction(
	ctx context.Context,
	id kernel.UUID,
) (*courier.CashTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.CashTransaction), args.Error(1)
}
func (m *MockCashRepository) AddShortfall(ctx context.Context, s *courier.Shortfall) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockCashRepository) UpdateShortfall(ctx context.Context, s *courier.Shortfall) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockCashRepository) GetShortfall(ctx context.Context, id kernel.UUID) (*courier.Shortfall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Shortfall), args.Error(1)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockLedgerUoW struct{ mockTx }

func (m *MockLedgerUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockLedgerUoW) ShopRepository() ports.ShopRepository {
	args := m.Called()
	return args.Get(0).(ports.ShopRepository)
}
func (m *MockLedgerUoW) BalanceRepository() ports.BalanceRepository {
	args := m.Called()
	return args.Get(0).(ports.BalanceRepository)
}
func (m *MockLedgerUoW) DebtRepository() ports.DebtRepository {
	args := m.Called()
	return args.Get(0).(ports.DebtRepository)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockAssignUoW struct{ mockTx }

func (m *MockAssignUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockAssignUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

type MockSettlementUoW struct{ mockTx }

func (m *MockSettlementUoW) BalanceRepository() ports.BalanceRepository {
	args := m.Called()
	return args.Get(0).(ports.BalanceRepository)
}
func (m *MockSettlementUoW) DebtRepository() ports.DebtRepository {
	args := m.Called()
	return args.Get(0).(ports.DebtRepository)
}
func (m *MockSettlementUoW) RemittanceRepository() ports.RemittanceRepository {
	args := m.Called()
	return args.Get(0).(ports.RemittanceRepository)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockCashUoW struct{ mockTx }

func (m *MockCashUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}
func (m *MockCashUoW) CashRepository() ports.CashRepository {
	args := m.Called()
	return args.Get(0).(ports.CashRepository)
}

type MockCashUoWFactory struct{ mock.Mock }

func (m *MockCashUoWFactory) Create() commands.CashUoW {
	args := m.Called()
	return args.Get(0).(commands.CashUoW)
}
