package commands

import (
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/guard"
)

var ErrSettleShortfallCommandIsNotConstructed = errors.New(
	"SettleShortfallCommand must be created via NewSettleShortfallCommand constructor",
)

// SettleShortfallCommand represents a request to mark a courier shortfall as
// covered.
type SettleShortfallCommand struct { //nolint:recvcheck //using for validation
	shortfallID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSettleShortfallCommand creates a command to settle a shortfall.
func NewSettleShortfallCommand(shortfallID kernel.UUID) (SettleShortfallCommand, error) {
	if err := shortfallID.Validate(); err != nil {
		return SettleShortfallCommand{}, err
	}

	return SettleShortfallCommand{
		shortfallID: shortfallID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleShortfallCommand) Validate() error {
	return c.guard.Validate(ErrSettleShortfallCommandIsNotConstructed)
}

// ShortfallID returns the shortfall being settled.
func (c SettleShortfallCommand) ShortfallID() kernel.UUID {
	return c.shortfallID
}
