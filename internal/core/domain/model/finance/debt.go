package finance

import (
	"errors"
	"fmt"
	"time"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
	"deliverypay/internal/pkg/guard"
)

// ErrDebtIsNotConstructed is returned when a Debt was not created through a
// factory function.
var ErrDebtIsNotConstructed = errors.New("Debt must be created via a Debt constructor")

// ErrDebtAlreadySettled is returned when settling a debt that is not pending.
var ErrDebtAlreadySettled = errors.New("debt is already settled")

// DebtType classifies who owns a debt record.
type DebtType int

const (
	// DebtTypeUnknown represents an invalid or undefined debt type.
	DebtTypeUnknown DebtType = iota

	// DebtTypeDailyBalance is a derived debt owned by the debt synchronizer:
	// exactly one such row may exist per shop and day, mirroring a negative
	// ledger balance. It is created, zeroed and upserted, never duplicated.
	DebtTypeDailyBalance

	// DebtTypeManual is a debt recorded by the admin workflow. The core only
	// reads these, except at settlement time.
	DebtTypeManual
)

func getDebtTypeStrings() map[DebtType]string {
	return map[DebtType]string{
		DebtTypeUnknown:      "unknown",
		DebtTypeDailyBalance: "daily_balance",
		DebtTypeManual:       "manual",
	}
}

// DebtTypeFromString parses a debt type from its wire representation.
// Returns an error for anything outside the known enumeration.
func DebtTypeFromString(s string) (DebtType, error) {
	for debtType, str := range getDebtTypeStrings() {
		if str == s && debtType != DebtTypeUnknown {
			return debtType, nil
		}
	}
	return DebtTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"debt type",
		fmt.Errorf("%q is not a known debt type", s),
	)
}

// Validate checks if the DebtType is part of the known enumeration.
func (t DebtType) Validate() error {
	if t != DebtTypeDailyBalance && t != DebtTypeManual {
		return errs.NewValueIsInvalidErrorWithCause(
			"debt type",
			fmt.Errorf("%d is not a valid debt type", t),
		)
	}
	return nil
}

// String returns the wire representation of the debt type.
func (t DebtType) String() string {
	if str, ok := getDebtTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// DebtStatus is the settlement state of a debt.
type DebtStatus int

const (
	// DebtStatusUnknown represents an invalid or undefined debt status.
	DebtStatusUnknown DebtStatus = iota

	// DebtStatusPending means the debt is outstanding and will be deducted
	// from the shop's next remittance.
	DebtStatusPending

	// DebtStatusPaid means the debt was settled.
	DebtStatusPaid
)

func getDebtStatusStrings() map[DebtStatus]string {
	return map[DebtStatus]string{
		DebtStatusUnknown: "unknown",
		DebtStatusPending: "pending",
		DebtStatusPaid:    "paid",
	}
}

// DebtStatusFromString parses a debt status from its wire representation.
// Returns an error for anything outside the known enumeration.
func DebtStatusFromString(s string) (DebtStatus, error) {
	for status, str := range getDebtStatusStrings() {
		if str == s && status != DebtStatusUnknown {
			return status, nil
		}
	}
	return DebtStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"debt status",
		fmt.Errorf("%q is not a known debt status", s),
	)
}

// Validate checks if the DebtStatus is part of the known enumeration.
func (s DebtStatus) Validate() error {
	if s != DebtStatusPending && s != DebtStatusPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"debt status",
			fmt.Errorf("%d is not a valid debt status", s),
		)
	}
	return nil
}

// String returns the wire representation of the debt status.
func (s DebtStatus) String() string {
	if str, ok := getDebtStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Debt is an amount a shop owes the platform. Daily-balance debts mirror a
// negative ledger balance for one day; manual debts come from the admin
// workflow. Pending debts are netted against remittances at consolidation
// and settled in bulk when a remittance is paid.
type Debt struct {
	id        kernel.UUID
	shopID    kernel.UUID
	date      *kernel.ReportDate
	debtType  DebtType
	amount    kernel.Money
	status    DebtStatus
	settledAt *time.Time

	guard guard.ConstructorGuard
}

// NewDailyBalanceDebt creates the derived debt mirroring a negative ledger
// balance for one shop and day. Amount must not be negative; a zero amount
// represents a cleared debt.
func NewDailyBalanceDebt(
	shopID kernel.UUID,
	date kernel.ReportDate,
	amount kernel.Money,
) (*Debt, error) {
	if err := errors.Join(shopID.Validate(), date.Validate()); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, errs.NewValueIsInvalidError("debt amount")
	}

	return &Debt{
		id:       kernel.NewUUID(),
		shopID:   shopID,
		date:     &date,
		debtType: DebtTypeDailyBalance,
		amount:   amount,
		status:   DebtStatusPending,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewManualDebt creates an admin-recorded debt against a shop.
func NewManualDebt(shopID kernel.UUID, amount kernel.Money) (*Debt, error) {
	if err := shopID.Validate(); err != nil {
		return nil, err
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, errs.NewValueIsInvalidError("debt amount")
	}

	return &Debt{
		id:       kernel.NewUUID(),
		shopID:   shopID,
		debtType: DebtTypeManual,
		amount:   amount,
		status:   DebtStatusPending,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreDebt reconstructs a Debt from persistent storage.
func RestoreDebt(
	id kernel.UUID,
	shopID kernel.UUID,
	date *kernel.ReportDate,
	debtType DebtType,
	amount kernel.Money,
	status DebtStatus,
	settledAt *time.Time,
) (*Debt, error) {
	if err := errors.Join(
		id.Validate(),
		shopID.Validate(),
		debtType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, errs.NewValueIsInvalidError("debt amount")
	}

	d := &Debt{
		id:        id,
		shopID:    shopID,
		debtType:  debtType,
		amount:    amount,
		status:    status,
		settledAt: settledAt,
		guard:     guard.NewConstructorGuard(),
	}
	if date != nil {
		if err := date.Validate(); err != nil {
			return nil, err
		}
		day := *date
		d.date = &day
	}
	return d, nil
}

// Validate ensures the Debt was properly constructed.
func (d *Debt) Validate() error {
	if d == nil {
		return ErrDebtIsNotConstructed
	}
	return d.guard.Validate(ErrDebtIsNotConstructed)
}

// ID returns the debt's unique identifier.
func (d *Debt) ID() kernel.UUID {
	return d.id
}

// ShopID returns the shop owing the debt.
func (d *Debt) ShopID() kernel.UUID {
	return d.shopID
}

// Date returns the accounting day for daily-balance debts, nil otherwise.
func (d *Debt) Date() *kernel.ReportDate {
	return d.date
}

// Type returns the debt's classification.
func (d *Debt) Type() DebtType {
	return d.debtType
}

// Amount returns the outstanding amount.
func (d *Debt) Amount() kernel.Money {
	return d.amount
}

// Status returns the settlement state.
func (d *Debt) Status() DebtStatus {
	return d.status
}

// SettledAt returns when the debt was settled, nil while pending.
func (d *Debt) SettledAt() *time.Time {
	return d.settledAt
}

// SetAmount replaces the outstanding amount. Used by the debt synchronizer
// to mirror the current ledger balance; a zero amount clears the debt.
func (d *Debt) SetAmount(amount kernel.Money) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("debt amount")
	}
	d.amount = amount
	return nil
}

// Reopen puts a settled debt back into pending with a new outstanding amount.
// Used by the debt synchronizer when a day's balance turns negative again
// after its debt was settled: the same row is reused so that at most one
// daily-balance debt exists per shop and day.
func (d *Debt) Reopen(amount kernel.Money) error {
	if d.status != DebtStatusPaid {
		return errs.NewValueIsInvalidErrorWithCause("debt status",
			errors.New("only a settled debt can be reopened"))
	}
	if amount.IsNegative() || amount.IsZero() {
		return errs.NewValueIsInvalidError("debt amount")
	}
	d.status = DebtStatusPending
	d.settledAt = nil
	d.amount = amount
	return nil
}

// Settle marks the debt as paid at the given time.
func (d *Debt) Settle(at time.Time) error {
	if d.status != DebtStatusPending {
		return ErrDebtAlreadySettled
	}
	d.status = DebtStatusPaid
	settled := at.UTC()
	d.settledAt = &settled
	return nil
}
