// Package order provides domain entities and business logic for order management
// in the delivery platform. It implements the Order aggregate root with lifecycle
// management, payment state and the append-only audit trail.
//
// The package includes:
//   - Order: the aggregate root managing order identity, economics and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//   - PaymentStatus: the payment outcome recorded against an order
//   - Item: line items, replaced wholesale on edit
//   - HistoryEntry: the append-only audit trail of state-changing actions
//
// Key business rules:
//   - Orders must reference a valid shop and carry a valid report date
//   - Monetary fields are never negative
//   - Cancelling an order force-sets payment status to cancelled and clears
//     the received amount, regardless of caller input
//   - Delivered and failed deliveries both count as processed days' work
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
