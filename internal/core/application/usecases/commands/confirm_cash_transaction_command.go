package commands

import (
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/guard"
)

var ErrConfirmCashTransactionCommandIsNotConstructed = errors.New(
	"ConfirmCashTransactionCommand must be created via NewConfirmCashTransactionCommand constructor",
)

// ConfirmCashTransactionCommand represents a back-office validation of a
// pending courier cash event. Only confirmed remittances count toward the
// courier's handed-over cash in the summary.
type ConfirmCashTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmCashTransactionCommand creates a command to confirm a cash event.
func NewConfirmCashTransactionCommand(transactionID kernel.UUID) (ConfirmCashTransactionCommand, error) {
	if err := transactionID.Validate(); err != nil {
		return ConfirmCashTransactionCommand{}, err
	}

	return ConfirmCashTransactionCommand{
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCashTransactionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCashTransactionCommandIsNotConstructed)
}

// TransactionID returns the cash event being confirmed.
func (c ConfirmCashTransactionCommand) TransactionID() kernel.UUID {
	return c.transactionID
}
