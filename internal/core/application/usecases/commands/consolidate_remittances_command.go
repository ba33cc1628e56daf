package commands

import (
	"errors"

	"deliverypay/internal/pkg/guard"
)

var ErrConsolidateRemittancesCommandIsNotConstructed = errors.New(
	"ConsolidateRemittancesCommand must be created via NewConsolidateRemittancesCommand constructor",
)

// ConsolidateRemittancesCommand represents a request to refresh the payable
// remittances from the current ledger state. Carries no payload; the
// consolidator scans every balance that owes its shop a payout.
type ConsolidateRemittancesCommand struct {
	guard guard.ConstructorGuard
}

// NewConsolidateRemittancesCommand creates a consolidation command.
func NewConsolidateRemittancesCommand() (ConsolidateRemittancesCommand, error) {
	return ConsolidateRemittancesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConsolidateRemittancesCommand) Validate() error {
	return c.guard.Validate(ErrConsolidateRemittancesCommandIsNotConstructed)
}
