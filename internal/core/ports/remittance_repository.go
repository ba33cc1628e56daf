package ports

import (
	"context"

	"deliverypay/internal/core/domain/model/finance"
	"deliverypay/internal/core/domain/model/kernel"
)

// RemittanceRepository defines the persistence contract for shop remittances.
type RemittanceRepository interface {
	// Add persists a new remittance.
	Add(ctx context.Context, aggregate *finance.Remittance) error

	// Update persists changes to an existing remittance.
	Update(ctx context.Context, aggregate *finance.Remittance) error

	// Get retrieves a remittance by its unique identifier.
	// Implementations must lock the row so that marking a remittance paid
	// serializes with concurrent consolidation runs.
	Get(ctx context.Context, id kernel.UUID) (*finance.Remittance, error)

	// GetByShopAndDate retrieves the remittance of a shop and day.
	// Returns nil without error when none exists, which is what makes the
	// consolidator's insert-or-refresh cycle idempotent.
	GetByShopAndDate(
		ctx context.Context,
		shopID kernel.UUID,
		date kernel.ReportDate,
	) (*finance.Remittance, error)
}
