package courier

import (
	"errors"
	"fmt"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
	"deliverypay/internal/pkg/guard"
)

// Domain errors for shortfall operations.
var (
	// ErrShortfallIsNotConstructed is returned when using an improperly
	// initialized Shortfall.
	ErrShortfallIsNotConstructed = errors.New(
		"Shortfall must be created via NewShortfall constructor",
	)
	// ErrShortfallAlreadySettled is returned when settling a shortfall twice.
	ErrShortfallAlreadySettled = errors.New("shortfall is already settled")
)

// ShortfallStatus is the settlement state of a courier shortfall.
type ShortfallStatus int

const (
	// ShortfallStatusUnknown represents an invalid or undefined status.
	ShortfallStatusUnknown ShortfallStatus = iota

	// ShortfallStatusPending means the courier still owes the amount.
	ShortfallStatusPending

	// ShortfallStatusSettled means the courier covered the missing cash.
	ShortfallStatusSettled
)

func getShortfallStatusStrings() map[ShortfallStatus]string {
	return map[ShortfallStatus]string{
		ShortfallStatusUnknown: "unknown",
		ShortfallStatusPending: "pending",
		ShortfallStatusSettled: "settled",
	}
}

// ShortfallStatusFromString parses a status from its wire representation.
// Returns an error for anything outside the known enumeration.
func ShortfallStatusFromString(s string) (ShortfallStatus, error) {
	for status, str := range getShortfallStatusStrings() {
		if str == s && status != ShortfallStatusUnknown {
			return status, nil
		}
	}
	return ShortfallStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shortfall status",
		fmt.Errorf("%q is not a known shortfall status", s),
	)
}

// Validate checks if the status is part of the known enumeration.
func (s ShortfallStatus) Validate() error {
	if s != ShortfallStatusPending && s != ShortfallStatusSettled {
		return errs.NewValueIsInvalidErrorWithCause(
			"shortfall status",
			fmt.Errorf("%d is not a valid shortfall status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s ShortfallStatus) String() string {
	if str, ok := getShortfallStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Shortfall is cash a courier should have handed over but did not. It stays
// pending until the courier covers it, independently of any report period.
type Shortfall struct {
	id        kernel.UUID
	courierID kernel.UUID
	amount    kernel.Money
	status    ShortfallStatus
	date      kernel.ReportDate

	guard guard.ConstructorGuard
}

// NewShortfall records a new pending shortfall against a courier.
// The amount must be strictly positive.
func NewShortfall(
	id kernel.UUID,
	courierID kernel.UUID,
	amount kernel.Money,
	date kernel.ReportDate,
) (*Shortfall, error) {
	if err := errors.Join(
		id.Validate(),
		courierID.Validate(),
		date.Validate(),
	); err != nil {
		return nil, err
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, errs.NewValueIsInvalidError("shortfall amount")
	}

	return &Shortfall{
		id:        id,
		courierID: courierID,
		amount:    amount,
		status:    ShortfallStatusPending,
		date:      date,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreShortfall reconstructs a shortfall from persistent storage.
func RestoreShortfall(
	id kernel.UUID,
	courierID kernel.UUID,
	amount kernel.Money,
	status ShortfallStatus,
	date kernel.ReportDate,
) (*Shortfall, error) {
	s, err := NewShortfall(id, courierID, amount, date)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	s.status = status
	return s, nil
}

// Validate checks if the Shortfall was properly constructed.
func (s *Shortfall) Validate() error {
	if s == nil {
		return ErrShortfallIsNotConstructed
	}
	return s.guard.Validate(ErrShortfallIsNotConstructed)
}

// ID returns the shortfall's unique identifier.
func (s *Shortfall) ID() kernel.UUID {
	return s.id
}

// CourierID returns the courier who owes the amount.
func (s *Shortfall) CourierID() kernel.UUID {
	return s.courierID
}

// Amount returns the missing cash amount.
func (s *Shortfall) Amount() kernel.Money {
	return s.amount
}

// Status returns the settlement state.
func (s *Shortfall) Status() ShortfallStatus {
	return s.status
}

// Date returns the accounting day the shortfall was recorded on.
func (s *Shortfall) Date() kernel.ReportDate {
	return s.date
}

// Settle marks a pending shortfall as covered by the courier.
func (s *Shortfall) Settle() error {
	if s.status == ShortfallStatusSettled {
		return ErrShortfallAlreadySettled
	}
	s.status = ShortfallStatusSettled
	return nil
}
