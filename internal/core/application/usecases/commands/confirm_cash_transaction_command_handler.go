package commands

import (
	"context"
)

// ConfirmCashTransactionCommandHandler confirms a pending cash event.
type ConfirmCashTransactionCommandHandler struct {
	uowFactory CashUoWFactory
}

// NewConfirmCashTransactionCommandHandler creates a handler for cash event confirmation.
func NewConfirmCashTransactionCommandHandler(uowFactory CashUoWFactory) ConfirmCashTransactionCommandHandler {
	return ConfirmCashTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
func (h *ConfirmCashTransactionCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmCashTransactionCommand,
) error {
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
	transaction, err := cashRepo.GetTransaction(ctx, cmd.TransactionID())
	if err != nil {
		return err
	}

	if err = transaction.Confirm(); err != nil {
		return err
	}

	if err = cashRepo.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
