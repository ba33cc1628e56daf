// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"deliverypay/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShopRepoFactory provides access to shop repository within a transaction.
	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// BalanceRepoFactory provides access to balance repository within a transaction.
	BalanceRepoFactory interface {
		BalanceRepository() ports.BalanceRepository
	}

	// DebtRepoFactory provides access to debt repository within a transaction.
	DebtRepoFactory interface {
		DebtRepository() ports.DebtRepository
	}

	// RemittanceRepoFactory provides access to remittance repository within a transaction.
	RemittanceRepoFactory interface {
		RemittanceRepository() ports.RemittanceRepository
	}

	// CourierRepoFactory provides access to courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// CashRepoFactory provides access to the courier cash repository within a transaction.
	CashRepoFactory interface {
		CashRepository() ports.CashRepository
	}

	// LedgerUoW manages transactions for order lifecycle commands: the order
	// write itself plus the balance and debt bookkeeping it triggers. Every
	// order mutation and its ledger consequences commit or roll back together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   balanceRepo := uow.BalanceRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	LedgerUoW interface {
		TxManager
		OrderRepoFactory
		ShopRepoFactory
		BalanceRepoFactory
		DebtRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// AssignUoW manages transactions for courier assignment.
	// Touches the order and courier aggregates, never the ledger: assignment
	// moves an order between states that carry no economics.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// SettlementUoW manages transactions for the remittance settlement cycle:
	// consolidating balances into remittances and paying them out while
	// settling the shop's pending debts.
	SettlementUoW interface {
		TxManager
		BalanceRepoFactory
		DebtRepoFactory
		RemittanceRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// CashUoW manages transactions for courier cash events.
	CashUoW interface {
		TxManager
		CourierRepoFactory
		CashRepoFactory
	}

	// CashUoWFactory creates new cash unit of work instances.
	CashUoWFactory interface {
		Create() CashUoW
	}
)
