// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order together with its line items and
// its full audit history, as a flat read model ready for serialization.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	order, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s: %s (%d items)\n", order.ID, order.Status, len(order.Items))
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by its identity.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := orderQuery.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identity of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse represents one order in the read model, with its
// line items and history entries already resolved.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	ShopID          kernel.UUID
	CourierID       *kernel.UUID
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	ArticleAmount   kernel.Money
	DeliveryFee     kernel.Money
	ExpeditionFee   kernel.Money
	AmountReceived  kernel.Money
	Status          string
	PaymentStatus   string
	ReportDate      kernel.ReportDate
	Items           []GetOrderQueryItem
	History         []GetOrderQueryHistoryEntry
}

// GetOrderQueryItem represents one order line item in the read model.
type GetOrderQueryItem struct {
	ID       kernel.UUID
	Name     string
	Quantity int
	Amount   kernel.Money
}

// GetOrderQueryHistoryEntry represents one audit trail row in the read model.
type GetOrderQueryHistoryEntry struct {
	ID        kernel.UUID
	Action    string
	ActorID   kernel.UUID
	Details   string
	CreatedAt time.Time
}
