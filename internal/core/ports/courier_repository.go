package ports

import (
	"context"

	"deliverypay/internal/core/domain/model/courier"
	"deliverypay/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}

// CashRepository defines the persistence contract for courier cash events:
// remittance and expense transactions plus shortfalls. Both are written to an
// append-mostly log that the cash summary reads back.
type CashRepository interface {
	// AddTransaction persists a new cash transaction.
	AddTransaction(ctx context.Context, tx *courier.CashTransaction) error

	// UpdateTransaction persists changes to an existing cash transaction,
	// typically a back-office confirmation.
	UpdateTransaction(ctx context.Context, tx *courier.CashTransaction) error

	// GetTransaction retrieves a cash transaction by its unique identifier.
	GetTransaction(ctx context.Context, id kernel.UUID) (*courier.CashTransaction, error)

	// AddShortfall persists a new shortfall.
	AddShortfall(ctx context.Context, shortfall *courier.Shortfall) error

	// UpdateShortfall persists changes to an existing shortfall.
	UpdateShortfall(ctx context.Context, shortfall *courier.Shortfall) error

	// GetShortfall retrieves a shortfall by its unique identifier.
	GetShortfall(ctx context.Context, id kernel.UUID) (*courier.Shortfall, error)
}
