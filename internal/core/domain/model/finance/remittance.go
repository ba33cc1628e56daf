package finance

import (
	"errors"
	"fmt"
	"time"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
	"deliverypay/internal/pkg/guard"
)

// Domain errors for remittance operations.
var (
	// ErrRemittanceIsNotConstructed is returned when a Remittance was not
	// created through a factory function.
	ErrRemittanceIsNotConstructed = errors.New(
		"Remittance must be created via NewRemittance constructor",
	)
	// ErrRemittanceNotPending is returned when paying a remittance that was
	// already paid.
	ErrRemittanceNotPending = errors.New("remittance is not pending")
)

// RemittanceStatus is the payment state of a remittance.
type RemittanceStatus int

const (
	// RemittanceStatusUnknown represents an invalid or undefined status.
	RemittanceStatusUnknown RemittanceStatus = iota

	// RemittanceStatusPending means the payout has been consolidated but not
	// yet handed over to the shop.
	RemittanceStatusPending

	// RemittanceStatusPaid means the payout was handed over; paying settles
	// the shop's pending debts in the same transaction.
	RemittanceStatusPaid
)

func getRemittanceStatusStrings() map[RemittanceStatus]string {
	return map[RemittanceStatus]string{
		RemittanceStatusUnknown: "unknown",
		RemittanceStatusPending: "pending",
		RemittanceStatusPaid:    "paid",
	}
}

// RemittanceStatusFromString parses a remittance status from its wire
// representation. Returns an error for anything outside the known enumeration.
func RemittanceStatusFromString(s string) (RemittanceStatus, error) {
	for status, str := range getRemittanceStatusStrings() {
		if str == s && status != RemittanceStatusUnknown {
			return status, nil
		}
	}
	return RemittanceStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"remittance status",
		fmt.Errorf("%q is not a known remittance status", s),
	)
}

// Validate checks if the RemittanceStatus is part of the known enumeration.
func (s RemittanceStatus) Validate() error {
	if s != RemittanceStatusPending && s != RemittanceStatusPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"remittance status",
			fmt.Errorf("%d is not a valid remittance status", s),
		)
	}
	return nil
}

// String returns the wire representation of the remittance status.
func (s RemittanceStatus) String() string {
	if str, ok := getRemittanceStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Remittance is a scheduled payout obligation from the platform to a shop
// for one accounting day. GrossAmount copies the ledger's remittance amount
// at consolidation time and DebtsConsolidated snapshots the pending debts at
// that moment; the payable net amount is always computed on read against
// the shop's current pending debts, so debts recorded after consolidation
// still reduce the payout.
type Remittance struct {
	id                kernel.UUID
	shopID            kernel.UUID
	remittanceDate    kernel.ReportDate
	grossAmount       kernel.Money
	debtsConsolidated kernel.Money
	status            RemittanceStatus
	paidAt            *time.Time
	paidBy            *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemittance creates a pending remittance for a shop and day.
func NewRemittance(
	shopID kernel.UUID,
	remittanceDate kernel.ReportDate,
	grossAmount kernel.Money,
	debtsConsolidated kernel.Money,
) (*Remittance, error) {
	if err := errors.Join(shopID.Validate(), remittanceDate.Validate()); err != nil {
		return nil, err
	}
	if grossAmount.IsNegative() || grossAmount.IsZero() {
		return nil, errs.NewValueIsInvalidError("gross amount")
	}
	if debtsConsolidated.IsNegative() {
		return nil, errs.NewValueIsInvalidError("debts consolidated")
	}

	return &Remittance{
		id:                kernel.NewUUID(),
		shopID:            shopID,
		remittanceDate:    remittanceDate,
		grossAmount:       grossAmount,
		debtsConsolidated: debtsConsolidated,
		status:            RemittanceStatusPending,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// RestoreRemittance reconstructs a Remittance from persistent storage.
func RestoreRemittance(
	id kernel.UUID,
	shopID kernel.UUID,
	remittanceDate kernel.ReportDate,
	grossAmount kernel.Money,
	debtsConsolidated kernel.Money,
	status RemittanceStatus,
	paidAt *time.Time,
	paidBy *kernel.UUID,
) (*Remittance, error) {
	if err := errors.Join(
		id.Validate(),
		shopID.Validate(),
		remittanceDate.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	r := &Remittance{
		id:                id,
		shopID:            shopID,
		remittanceDate:    remittanceDate,
		grossAmount:       grossAmount,
		debtsConsolidated: debtsConsolidated,
		status:            status,
		paidAt:            paidAt,
		guard:             guard.NewConstructorGuard(),
	}
	if paidBy != nil {
		if err := paidBy.Validate(); err != nil {
			return nil, err
		}
		by := *paidBy
		r.paidBy = &by
	}
	return r, nil
}

// Validate ensures the Remittance was properly constructed.
func (r *Remittance) Validate() error {
	if r == nil {
		return ErrRemittanceIsNotConstructed
	}
	return r.guard.Validate(ErrRemittanceIsNotConstructed)
}

// ID returns the remittance's unique identifier.
func (r *Remittance) ID() kernel.UUID {
	return r.id
}

// ShopID returns the shop being paid.
func (r *Remittance) ShopID() kernel.UUID {
	return r.shopID
}

// RemittanceDate returns the accounting day the payout covers.
func (r *Remittance) RemittanceDate() kernel.ReportDate {
	return r.remittanceDate
}

// GrossAmount returns the ledger's remittance amount at consolidation time.
func (r *Remittance) GrossAmount() kernel.Money {
	return r.grossAmount
}

// DebtsConsolidated returns the pending-debt snapshot taken at consolidation.
func (r *Remittance) DebtsConsolidated() kernel.Money {
	return r.debtsConsolidated
}

// NetAmount is the payable amount derived from the consolidation snapshot:
// gross_amount - debts_consolidated. Listings recompute the net against the
// shop's current pending debts instead, so this value can be stale the
// moment a new debt is recorded.
func (r *Remittance) NetAmount() kernel.Money {
	return r.grossAmount.Sub(r.debtsConsolidated)
}

// Status returns the payment state.
func (r *Remittance) Status() RemittanceStatus {
	return r.status
}

// PaidAt returns when the remittance was paid, nil while pending.
func (r *Remittance) PaidAt() *time.Time {
	return r.paidAt
}

// PaidBy returns the user who recorded the payment, nil while pending.
func (r *Remittance) PaidBy() *kernel.UUID {
	return r.paidBy
}

// Consolidate refreshes the gross amount and debt snapshot from the current
// ledger state. Only the amounts change; the status set at first insert is
// left untouched, which is what makes the settlement cycle idempotent.
func (r *Remittance) Consolidate(grossAmount, debtsConsolidated kernel.Money) error {
	if grossAmount.IsNegative() || grossAmount.IsZero() {
		return errs.NewValueIsInvalidError("gross amount")
	}
	if debtsConsolidated.IsNegative() {
		return errs.NewValueIsInvalidError("debts consolidated")
	}

	r.grossAmount = grossAmount
	r.debtsConsolidated = debtsConsolidated
	return nil
}

// MarkPaid records the payout. Only pending remittances can be paid.
func (r *Remittance) MarkPaid(by kernel.UUID, at time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if r.status != RemittanceStatusPending {
		return ErrRemittanceNotPending
	}

	r.status = RemittanceStatusPaid
	paid := at.UTC()
	r.paidAt = &paid
	r.paidBy = &by
	return nil
}
