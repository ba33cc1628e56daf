package courier

import (
	"errors"
	"fmt"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
	"deliverypay/internal/pkg/guard"
)

// Domain errors for cash transaction operations.
var (
	// ErrCashTransactionIsNotConstructed is returned when using an improperly
	// initialized CashTransaction.
	ErrCashTransactionIsNotConstructed = errors.New(
		"CashTransaction must be created via NewCashTransaction constructor",
	)
	// ErrCashTransactionNotPending is returned when confirming a transaction
	// that is not pending.
	ErrCashTransactionNotPending = errors.New("cash transaction is not pending")
)

// CashTransactionType classifies a courier cash event.
type CashTransactionType int

const (
	// CashTransactionUnknown represents an invalid or undefined type.
	CashTransactionUnknown CashTransactionType = iota

	// CashTransactionRemittance is cash the courier handed over to the platform.
	CashTransactionRemittance

	// CashTransactionExpense is cash the courier spent on behalf of the platform.
	CashTransactionExpense
)

func getCashTransactionTypeStrings() map[CashTransactionType]string {
	return map[CashTransactionType]string{
		CashTransactionUnknown:    "unknown",
		CashTransactionRemittance: "remittance",
		CashTransactionExpense:    "expense",
	}
}

// CashTransactionTypeFromString parses a caller-supplied type string.
func CashTransactionTypeFromString(s string) (CashTransactionType, error) {
	switch s {
	case "remittance":
		return CashTransactionRemittance, nil
	case "expense":
		return CashTransactionExpense, nil
	default:
		return CashTransactionUnknown, errs.NewValueIsInvalidErrorWithCause(
			"cash transaction type",
			fmt.Errorf("%q is not a known cash transaction type", s),
		)
	}
}

// Validate checks if the type is part of the known enumeration.
func (t CashTransactionType) Validate() error {
	if t != CashTransactionRemittance && t != CashTransactionExpense {
		return errs.NewValueIsInvalidErrorWithCause(
			"cash transaction type",
			fmt.Errorf("%d is not a valid cash transaction type", t),
		)
	}
	return nil
}

// String returns the wire representation of the type.
func (t CashTransactionType) String() string {
	if str, ok := getCashTransactionTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// CashTransactionStatus is the confirmation state of a cash event.
type CashTransactionStatus int

const (
	// CashTransactionStatusUnknown represents an invalid or undefined status.
	CashTransactionStatusUnknown CashTransactionStatus = iota

	// CashTransactionStatusPending means the event was recorded but not yet
	// validated by the back office.
	CashTransactionStatusPending

	// CashTransactionStatusConfirmed means the back office validated the event.
	// Only confirmed remittances count toward a courier's handed-over cash.
	CashTransactionStatusConfirmed
)

func getCashTransactionStatusStrings() map[CashTransactionStatus]string {
	return map[CashTransactionStatus]string{
		CashTransactionStatusUnknown:   "unknown",
		CashTransactionStatusPending:   "pending",
		CashTransactionStatusConfirmed: "confirmed",
	}
}

// CashTransactionStatusFromString parses a status from its wire
// representation. Returns an error for anything outside the known enumeration.
func CashTransactionStatusFromString(s string) (CashTransactionStatus, error) {
	for status, str := range getCashTransactionStatusStrings() {
		if str == s && status != CashTransactionStatusUnknown {
			return status, nil
		}
	}
	return CashTransactionStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"cash transaction status",
		fmt.Errorf("%q is not a known cash transaction status", s),
	)
}

// Validate checks if the status is part of the known enumeration.
func (s CashTransactionStatus) Validate() error {
	if s != CashTransactionStatusPending && s != CashTransactionStatusConfirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"cash transaction status",
			fmt.Errorf("%d is not a valid cash transaction status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s CashTransactionStatus) String() string {
	if str, ok := getCashTransactionStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CashTransaction is an append-mostly courier cash event: either cash handed
// back to the platform (remittance) or cash spent for the platform (expense).
type CashTransaction struct {
	id         kernel.UUID
	courierID  kernel.UUID
	txType     CashTransactionType
	amount     kernel.Money
	status     CashTransactionStatus
	reportDate kernel.ReportDate

	guard guard.ConstructorGuard
}

// NewCashTransaction records a new pending cash event for a courier.
//
// Business rules:
//   - amount must be strictly positive
//   - the event is bucketed by report date like every other cash flow
func NewCashTransaction(
	id kernel.UUID,
	courierID kernel.UUID,
	txType CashTransactionType,
	amount kernel.Money,
	reportDate kernel.ReportDate,
) (*CashTransaction, error) {
	if err := errors.Join(
		id.Validate(),
		courierID.Validate(),
		txType.Validate(),
		reportDate.Validate(),
	); err != nil {
		return nil, err
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, errs.NewValueIsInvalidError("cash transaction amount")
	}

	return &CashTransaction{
		id:         id,
		courierID:  courierID,
		txType:     txType,
		amount:     amount,
		status:     CashTransactionStatusPending,
		reportDate: reportDate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreCashTransaction reconstructs a cash event from persistent storage.
func RestoreCashTransaction(
	id kernel.UUID,
	courierID kernel.UUID,
	txType CashTransactionType,
	amount kernel.Money,
	status CashTransactionStatus,
	reportDate kernel.ReportDate,
) (*CashTransaction, error) {
	t, err := NewCashTransaction(id, courierID, txType, amount, reportDate)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	t.status = status
	return t, nil
}

// Validate checks if the CashTransaction was properly constructed.
func (t *CashTransaction) Validate() error {
	if t == nil {
		return ErrCashTransactionIsNotConstructed
	}
	return t.guard.Validate(ErrCashTransactionIsNotConstructed)
}

// ID returns the transaction's unique identifier.
func (t *CashTransaction) ID() kernel.UUID {
	return t.id
}

// CourierID returns the courier the event belongs to.
func (t *CashTransaction) CourierID() kernel.UUID {
	return t.courierID
}

// Type returns the event classification.
func (t *CashTransaction) Type() CashTransactionType {
	return t.txType
}

// Amount returns the cash amount of the event.
func (t *CashTransaction) Amount() kernel.Money {
	return t.amount
}

// Status returns the confirmation state.
func (t *CashTransaction) Status() CashTransactionStatus {
	return t.status
}

// ReportDate returns the accounting day of the event.
func (t *CashTransaction) ReportDate() kernel.ReportDate {
	return t.reportDate
}

// Confirm marks a pending event as validated by the back office.
func (t *CashTransaction) Confirm() error {
	if t.status != CashTransactionStatusPending {
		return ErrCashTransactionNotPending
	}
	t.status = CashTransactionStatusConfirmed
	return nil
}
