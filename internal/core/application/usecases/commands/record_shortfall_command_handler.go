package commands

import (
	"context"

	"deliverypay/internal/core/domain/model/courier"
)

// RecordShortfallCommandHandler records a pending shortfall against a
// courier after verifying the courier exists.
type RecordShortfallCommandHandler struct {
	uowFactory CashUoWFactory
}

// NewRecordShortfallCommandHandler creates a handler for shortfall recording.
func NewRecordShortfallCommandHandler(uowFactory CashUoWFactory) RecordShortfallCommandHandler {
	return RecordShortfallCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shortfall command.
func (h *RecordShortfallCommandHandler) Handle(ctx context.Context, cmd RecordShortfallCommand) error {
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

	courierAggregate, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	shortfall, err := courier.NewShortfall(
		cmd.ShortfallID(),
		courierAggregate.ID(),
		cmd.Amount(),
		cmd.ReportDate(),
	)
	if err != nil {
		return err
	}

	if err = uow.CashRepository().AddShortfall(ctx, shortfall); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
