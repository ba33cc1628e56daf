package ports

import (
	"context"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/ledger"
)

// BalanceRepository defines the persistence contract for the per-shop,
// per-day ledger balances.
type BalanceRepository interface {
	// ApplyDelta atomically adds a signed delta to the balance of a shop and
	// day, creating the row on first touch. Implementations must lock the row
	// for the duration of the enclosing transaction so that concurrent order
	// mutations serialize instead of losing updates.
	// Returns the balance after the delta has been applied.
	ApplyDelta(
		ctx context.Context,
		shopID kernel.UUID,
		reportDate kernel.ReportDate,
		delta ledger.Delta,
	) (*ledger.DailyBalance, error)

	// Get retrieves the balance of a shop and day.
	// Returns nil without error when no row exists yet.
	Get(ctx context.Context, shopID kernel.UUID, reportDate kernel.ReportDate) (*ledger.DailyBalance, error)

	// GetAllWithPositiveRemittance retrieves every balance whose derived
	// remittance amount is strictly positive. Used by the remittance
	// consolidator to find the days that owe the shop a payout.
	GetAllWithPositiveRemittance(ctx context.Context) ([]*ledger.DailyBalance, error)
}
