package order

import (
	"fmt"

	"deliverypay/internal/pkg/errs"
)

// PaymentStatus represents how (and whether) an order has been paid.
// Together with Status it fully determines the ledger impact of an order:
// a cash delivery contributes its article amount to the shop's revenue,
// while a paid-to-supplier delivery contributes only delivery fees.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means no payment outcome has been recorded yet.
	PaymentPending

	// PaymentCash means the courier collected the article amount in cash.
	PaymentCash

	// PaymentPaidToSupplier means the customer paid the shop directly;
	// the platform only collects its fees.
	PaymentPaidToSupplier

	// PaymentCancelled is forced when the order itself is cancelled.
	PaymentCancelled
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:        "unknown",
		PaymentPending:        "pending",
		PaymentCash:           "cash",
		PaymentPaidToSupplier: "paid_to_supplier",
		PaymentCancelled:      "cancelled",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:        "pending",
		PaymentCash:           "cash",
		PaymentPaidToSupplier: "paid_to_supplier",
		PaymentCancelled:      "cancelled",
	}
}

// PaymentStatusFromString parses a caller-supplied payment status string.
// Returns an error for anything outside the known enumeration.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status",
		fmt.Errorf("%q is not a known payment status", s),
	)
}

// Validate checks if the PaymentStatus value is part of the known enumeration.
func (p PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}

// String returns the wire representation of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}
