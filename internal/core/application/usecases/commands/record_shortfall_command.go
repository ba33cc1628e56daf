package commands

import (
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
	"deliverypay/internal/pkg/guard"
)

var ErrRecordShortfallCommandIsNotConstructed = errors.New(
	"RecordShortfallCommand must be created via NewRecordShortfallCommand constructor",
)

// RecordShortfallCommand represents a request to record cash a courier
// should have handed over but did not. Shortfalls are deducted from the
// courier's confirmed cash in the summary until settled.
type RecordShortfallCommand struct { //nolint:recvcheck //using for validation
	shortfallID kernel.UUID
	courierID   kernel.UUID
	amount      kernel.Money
	reportDate  kernel.ReportDate

	guard guard.ConstructorGuard
}

// NewRecordShortfallCommand creates a command to record a courier shortfall.
// The amount must be strictly positive.
func NewRecordShortfallCommand(
	shortfallID kernel.UUID,
	courierID kernel.UUID,
	amount kernel.Money,
	reportDate kernel.ReportDate,
) (RecordShortfallCommand, error) {
	shortfallCommand := RecordShortfallCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shortfallCommand.setShortfallID(shortfallID),
		shortfallCommand.setCourierID(courierID),
		shortfallCommand.setAmount(amount),
		shortfallCommand.setReportDate(reportDate),
	); err != nil {
		return RecordShortfallCommand{}, err
	}

	return shortfallCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordShortfallCommand) Validate() error {
	return c.guard.Validate(ErrRecordShortfallCommandIsNotConstructed)
}

// ShortfallID returns the unique identifier for the shortfall.
func (c RecordShortfallCommand) ShortfallID() kernel.UUID {
	return c.shortfallID
}

// CourierID returns the courier who owes the amount.
func (c RecordShortfallCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Amount returns the missing cash amount.
func (c RecordShortfallCommand) Amount() kernel.Money {
	return c.amount
}

// ReportDate returns the accounting day the shortfall is recorded on.
func (c RecordShortfallCommand) ReportDate() kernel.ReportDate {
	return c.reportDate
}

func (c *RecordShortfallCommand) setShortfallID(shortfallID kernel.UUID) error {
	if err := shortfallID.Validate(); err != nil {
		return err
	}

	c.shortfallID = shortfallID
	return nil
}

func (c *RecordShortfallCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *RecordShortfallCommand) setAmount(amount kernel.Money) error {
	if amount.IsNegative() || amount.IsZero() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *RecordShortfallCommand) setReportDate(reportDate kernel.ReportDate) error {
	if err := reportDate.Validate(); err != nil {
		return err
	}

	c.reportDate = reportDate
	return nil
}
