package order

import (
	"fmt"

	"deliverypay/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders
// follow the correct delivery workflow while still permitting the
// administrative corrections the back office relies on (for example
// cancelling an order that was already marked delivered).
//
// Nominal flow:
//
//	Pending ──> InProgress ──> ReadyForPickup ──> EnRoute ──┬──> Delivered
//	   ^                                                    ├──> FailedDelivery
//	   │                                                    ├──> Cancelled
//	   └──────────────────────────────── Reported <─────────┤
//	                                                        └──> ReturnDeclared ──> Returned
//
// Delivered and FailedDelivery both count as processed for ledger purposes.
// Cancelled and Returned are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly created order.
	StatusPending

	// StatusInProgress indicates the order has been assigned to a courier.
	StatusInProgress

	// StatusReadyForPickup indicates the shop has prepared the order.
	StatusReadyForPickup

	// StatusEnRoute indicates the courier is delivering the order.
	StatusEnRoute

	// StatusDelivered indicates successful delivery. Counts as processed.
	StatusDelivered

	// StatusFailedDelivery indicates the courier attempted delivery and failed.
	// Counts as processed; any amount collected is recorded on the order.
	StatusFailedDelivery

	// StatusCancelled indicates the order was cancelled. Terminal.
	// Transitioning here force-clears payment state.
	StatusCancelled

	// StatusReported indicates a delivery problem was reported; the order
	// returns to Pending for another attempt.
	StatusReported

	// StatusReturnDeclared indicates the package is being returned to the shop.
	StatusReturnDeclared

	// StatusReturned indicates the package was returned to the shop. Terminal.
	StatusReturned
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusInProgress:     "in_progress",
		StatusReadyForPickup: "ready_for_pickup",
		StatusEnRoute:        "en_route",
		StatusDelivered:      "delivered",
		StatusFailedDelivery: "failed_delivery",
		StatusCancelled:      "cancelled",
		StatusReported:       "reported",
		StatusReturnDeclared: "return_declared",
		StatusReturned:       "returned",
	}
}

// getValidStatusStrings returns only valid Status values to support validation
// and parsing of caller-supplied status strings.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "pending",
		StatusInProgress:     "in_progress",
		StatusReadyForPickup: "ready_for_pickup",
		StatusEnRoute:        "en_route",
		StatusDelivered:      "delivered",
		StatusFailedDelivery: "failed_delivery",
		StatusCancelled:      "cancelled",
		StatusReported:       "reported",
		StatusReturnDeclared: "return_declared",
		StatusReturned:       "returned",
	}
}

// allowedTransitions defines the full transition relation of the state machine.
// The nominal delivery flow is extended with administrative corrections:
// any active order can be cancelled, and a processed outcome can be amended
// (Delivered <-> FailedDelivery) or escalated (Reported, ReturnDeclared).
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusInProgress, StatusCancelled},
		StatusInProgress:     {StatusReadyForPickup, StatusEnRoute, StatusCancelled},
		StatusReadyForPickup: {StatusEnRoute, StatusCancelled},
		StatusEnRoute: {
			StatusDelivered, StatusFailedDelivery, StatusCancelled,
			StatusReported, StatusReturnDeclared,
		},
		StatusDelivered:      {StatusFailedDelivery, StatusCancelled, StatusReturnDeclared},
		StatusFailedDelivery: {StatusDelivered, StatusCancelled, StatusReported, StatusReturnDeclared},
		StatusReported:       {StatusPending, StatusCancelled},
		StatusReturnDeclared: {StatusReturned, StatusCancelled},
		StatusReturned:       {},
		StatusCancelled:      {},
	}
}

// StatusFromString parses a caller-supplied status string.
// Returns an error for anything outside the known enumeration.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known order status", s),
	)
}

// Validate checks if the Status value is part of the known enumeration.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsProcessed reports whether the status counts toward orders_delivered in
// the daily ledger. Both a successful delivery and a failed attempt count
// as processed because the courier performed the trip either way.
func (s Status) IsProcessed() bool {
	return s == StatusDelivered || s == StatusFailedDelivery
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusReturned
}

// CanTransitionTo reports whether the state machine permits moving to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to target.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) if target is not a valid status or the transition is not allowed
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition from %s to %s is not allowed", s.String(), target.String()),
		)
	}

	return target, nil
}
