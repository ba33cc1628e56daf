package cmd

import (
	"log/slog"

	"deliverypay/internal/adapters/in/http"
	"deliverypay/internal/adapters/out/postgres"
	"deliverypay/internal/core/application/usecases/commands"
	"deliverypay/internal/core/application/usecases/queries"
	"deliverypay/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateConsolidateRemittancesCommandHandler() commands.ConsolidateRemittancesCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConsolidateRemittancesCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkRemittancePaidCommandHandler() commands.MarkRemittancePaidCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkRemittancePaidCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordCashTransactionCommandHandler() commands.RecordCashTransactionCommandHandler {
	var f commands.CashUoWFactory = FuncCashUoWFactory(func() commands.CashUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordCashTransactionCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmCashTransactionCommandHandler() commands.ConfirmCashTransactionCommandHandler {
	var f commands.CashUoWFactory = FuncCashUoWFactory(func() commands.CashUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmCashTransactionCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordShortfallCommandHandler() commands.RecordShortfallCommandHandler {
	var f commands.CashUoWFactory = FuncCashUoWFactory(func() commands.CashUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordShortfallCommandHandler(f)
}

func (c *CompositionRoot) CreateSettleShortfallCommandHandler() commands.SettleShortfallCommandHandler {
	var f commands.CashUoWFactory = FuncCashUoWFactory(func() commands.CashUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettleShortfallCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailyBalancesQueryHandler() queries.GetDailyBalancesQueryHandler {
	return queries.NewGetDailyBalancesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPayableRemittancesQueryHandler() queries.GetPayableRemittancesQueryHandler {
	return queries.NewGetPayableRemittancesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierCashSummaryQueryHandler() queries.GetCourierCashSummaryQueryHandler {
	return queries.NewGetCourierCashSummaryQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateRemoveOrderCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateMarkRemittancePaidCommandHandler(),
		c.CreateRecordCashTransactionCommandHandler(),
		c.CreateConfirmCashTransactionCommandHandler(),
		c.CreateRecordShortfallCommandHandler(),
		c.CreateSettleShortfallCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetDailyBalancesQueryHandler(),
		c.CreateGetPayableRemittancesQueryHandler(),
		c.CreateGetCourierCashSummaryQueryHandler(),
	)
}

// CreateJobManager wires the nightly remittance consolidation job.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateConsolidateRemittancesCommandHandler(), logger)
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncCashUoWFactory func() commands.CashUoW

func (f FuncCashUoWFactory) Create() commands.CashUoW {
	return f()
}
