package commands

import (
	"context"
)

// SettleShortfallCommandHandler marks a pending shortfall as covered.
type SettleShortfallCommandHandler struct {
	uowFactory CashUoWFactory
}

// NewSettleShortfallCommandHandler creates a handler for shortfall settlement.
func NewSettleShortfallCommandHandler(uowFactory CashUoWFactory) SettleShortfallCommandHandler {
	return SettleShortfallCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command.
func (h *SettleShortfallCommandHandler) Handle(ctx context.Context, cmd SettleShortfallCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cashRepo := uow.CashRepository()
	shortfall, err := cashRepo.GetShortfall(ctx, cmd.ShortfallID())
	if err != nil {
		return err
	}

	if err = shortfall.Settle(); err != nil {
		return err
	}

	if err = cashRepo.UpdateShortfall(ctx, shortfall); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
