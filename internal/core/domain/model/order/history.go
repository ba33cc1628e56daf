package order

import (
	"time"

	"deliverypay/internal/core/domain/model/kernel"
)

// HistoryAction identifies the kind of state-changing action recorded in the
// order's audit trail.
type HistoryAction string

// History actions appended by the Order aggregate. The trail is append-only:
// entries are never mutated or deleted while the order exists.
const (
	HistoryActionCreated       HistoryAction = "created"
	HistoryActionUpdated       HistoryAction = "updated"
	HistoryActionStatusChanged HistoryAction = "status_changed"
	HistoryActionAssigned      HistoryAction = "assigned"
)

// HistoryEntry is one row of an order's append-only audit trail.
// Every state-changing operation on an order appends exactly one entry
// naming the acting user and describing the change.
type HistoryEntry struct {
	id        kernel.UUID
	action    HistoryAction
	actorID   kernel.UUID
	details   string
	createdAt time.Time
}

// NewHistoryEntry creates an audit entry for a state-changing action.
func NewHistoryEntry(action HistoryAction, actorID kernel.UUID, details string) HistoryEntry {
	return HistoryEntry{
		id:        kernel.NewUUID(),
		action:    action,
		actorID:   actorID,
		details:   details,
		createdAt: time.Now().UTC(),
	}
}

// RestoreHistoryEntry reconstructs an audit entry from persistent storage.
func RestoreHistoryEntry(
	id kernel.UUID,
	action HistoryAction,
	actorID kernel.UUID,
	details string,
	createdAt time.Time,
) HistoryEntry {
	return HistoryEntry{
		id:        id,
		action:    action,
		actorID:   actorID,
		details:   details,
		createdAt: createdAt,
	}
}

// ID returns the entry's unique identifier.
func (h HistoryEntry) ID() kernel.UUID {
	return h.id
}

// Action returns the kind of action recorded.
func (h HistoryEntry) Action() HistoryAction {
	return h.action
}

// ActorID returns the user who performed the action.
func (h HistoryEntry) ActorID() kernel.UUID {
	return h.actorID
}

// Details returns the human-readable description of the change.
func (h HistoryEntry) Details() string {
	return h.details
}

// CreatedAt returns when the action happened.
func (h HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}
