// Package ports defines repository interfaces for the reconciliation domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and deleting order entities
// together with their line items and audit history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Line items are replaced wholesale; history entries are append-only.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with items and history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and locks its row for the
	// duration of the enclosing transaction. Mutation handlers must read
	// their pre-mutation snapshot through this method so that concurrent
	// edits of the same order serialize; otherwise both could reverse the
	// same stale ledger impact.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Remove deletes an order aggregate and its items and history.
	// The caller is responsible for reversing the order's ledger impact
	// in the same transaction.
	Remove(ctx context.Context, id kernel.UUID) error
}
