package commands

import (
	"errors"

	"deliverypay/internal/core/domain/model/courier"
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
	"deliverypay/internal/pkg/guard"
)

var ErrRecordCashTransactionCommandIsNotConstructed = errors.New(
	"RecordCashTransactionCommand must be created via NewRecordCashTransactionCommand constructor",
)

// RecordCashTransactionCommand represents a request to log a courier cash
// event: cash handed over to the platform (remittance) or spent on its
// behalf (expense). The event starts pending and is confirmed by the back
// office through ConfirmCashTransactionCommand.
type RecordCashTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID kernel.UUID
	courierID     kernel.UUID
	txType        courier.CashTransactionType
	amount        kernel.Money
	reportDate    kernel.ReportDate

	guard guard.ConstructorGuard
}

// NewRecordCashTransactionCommand creates a command to log a cash event.
// The amount must be strictly positive.
func NewRecordCashTransactionCommand(
	transactionID kernel.UUID,
	courierID kernel.UUID,
	txType courier.CashTransactionType,
	amount kernel.Money,
	reportDate kernel.ReportDate,
) (RecordCashTransactionCommand, error) {
	cashCommand := RecordCashTransactionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cashCommand.setTransactionID(transactionID),
		cashCommand.setCourierID(courierID),
		cashCommand.setTxType(txType),
		cashCommand.setAmount(amount),
		cashCommand.setReportDate(reportDate),
	); err != nil {
		return RecordCashTransactionCommand{}, err
	}

	return cashCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordCashTransactionCommand) Validate() error {
	return c.guard.Validate(ErrRecordCashTransactionCommandIsNotConstructed)
}

// TransactionID returns the unique identifier for the cash event.
func (c RecordCashTransactionCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

// CourierID returns the courier the event belongs to.
func (c RecordCashTransactionCommand) CourierID() kernel.UUID {
	return c.courierID
}

// TxType returns the event classification.
func (c RecordCashTransactionCommand) TxType() courier.CashTransactionType {
	return c.txType
}

// Amount returns the cash amount.
func (c RecordCashTransactionCommand) Amount() kernel.Money {
	return c.amount
}

// ReportDate returns the accounting day of the event.
func (c RecordCashTransactionCommand) ReportDate() kernel.ReportDate {
	return c.reportDate
}

func (c *RecordCashTransactionCommand) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}

	c.transactionID = transactionID
	return nil
}

func (c *RecordCashTransactionCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *RecordCashTransactionCommand) setTxType(txType courier.CashTransactionType) error {
	if err := txType.Validate(); err != nil {
		return err
	}

	c.txType = txType
	return nil
}

func (c *RecordCashTransactionCommand) setAmount(amount kernel.Money) error {
	if amount.IsNegative() || amount.IsZero() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *RecordCashTransactionCommand) setReportDate(reportDate kernel.ReportDate) error {
	if err := reportDate.Validate(); err != nil {
		return err
	}

	c.reportDate = reportDate
	return nil
}
