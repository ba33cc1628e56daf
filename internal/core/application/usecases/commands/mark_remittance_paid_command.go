package commands

import (
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/guard"
)

var ErrMarkRemittancePaidCommandIsNotConstructed = errors.New(
	"MarkRemittancePaidCommand must be created via NewMarkRemittancePaidCommand constructor",
)

// MarkRemittancePaidCommand represents a request to record the payout of a
// remittance to its shop. Paying a remittance settles every pending debt of
// the shop in the same transaction, because the payout the shop actually
// receives is the net amount after debt deduction.
type MarkRemittancePaidCommand struct { //nolint:recvcheck //using for validation
	remittanceID kernel.UUID
	paidBy       kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkRemittancePaidCommand creates a command to pay out a remittance.
func NewMarkRemittancePaidCommand(remittanceID, paidBy kernel.UUID) (MarkRemittancePaidCommand, error) {
	paidCommand := MarkRemittancePaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paidCommand.setRemittanceID(remittanceID),
		paidCommand.setPaidBy(paidBy),
	); err != nil {
		return MarkRemittancePaidCommand{}, err
	}

	return paidCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkRemittancePaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkRemittancePaidCommandIsNotConstructed)
}

// RemittanceID returns the remittance being paid.
func (c MarkRemittancePaidCommand) RemittanceID() kernel.UUID {
	return c.remittanceID
}

// PaidBy returns the user recording the payout.
func (c MarkRemittancePaidCommand) PaidBy() kernel.UUID {
	return c.paidBy
}

func (c *MarkRemittancePaidCommand) setRemittanceID(remittanceID kernel.UUID) error {
	if err := remittanceID.Validate(); err != nil {
		return err
	}

	c.remittanceID = remittanceID
	return nil
}

func (c *MarkRemittancePaidCommand) setPaidBy(paidBy kernel.UUID) error {
	if err := paidBy.Validate(); err != nil {
		return err
	}

	c.paidBy = paidBy
	return nil
}
