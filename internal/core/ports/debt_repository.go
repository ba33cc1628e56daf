package ports

import (
	"context"
	"time"

	"deliverypay/internal/core/domain/model/finance"
	"deliverypay/internal/core/domain/model/kernel"
)

// DebtRepository defines the persistence contract for shop debts, both the
// derived daily-balance debts and manually recorded ones.
type DebtRepository interface {
	// Add persists a new debt.
	Add(ctx context.Context, aggregate *finance.Debt) error

	// Update persists changes to an existing debt.
	Update(ctx context.Context, aggregate *finance.Debt) error

	// GetDailyBalanceDebt retrieves the derived debt of a shop and day.
	// Returns nil without error when no such debt exists. Implementations
	// must lock the row so the debt synchronizer serializes with concurrent
	// ledger mutations.
	GetDailyBalanceDebt(
		ctx context.Context,
		shopID kernel.UUID,
		date kernel.ReportDate,
	) (*finance.Debt, error)

	// SumPendingByShop returns the total amount of the shop's pending debts.
	SumPendingByShop(ctx context.Context, shopID kernel.UUID) (kernel.Money, error)

	// SettleAllPending marks every pending debt of the shop as paid at the
	// given time. Returns the total amount settled.
	SettleAllPending(ctx context.Context, shopID kernel.UUID, at time.Time) (kernel.Money, error)
}
