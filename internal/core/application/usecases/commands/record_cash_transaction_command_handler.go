package commands

import (
	"context"

	"deliverypay/internal/core/domain/model/courier"
)

// RecordCashTransactionCommandHandler logs a pending cash event for a
// courier after verifying the courier exists.
type RecordCashTransactionCommandHandler struct {
	uowFactory CashUoWFactory
}

// NewRecordCashTransactionCommandHandler creates a handler for cash event logging.
func NewRecordCashTransactionCommandHandler(uowFactory CashUoWFactory) RecordCashTransactionCommandHandler {
	return RecordCashTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cash event command.
func (h *RecordCashTransactionCommandHandler) Handle(
	ctx context.Context,
	cmd RecordCashTransactionCommand,
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

	courierAggregate, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	transaction, err := courier.NewCashTransaction(
		cmd.TransactionID(),
		courierAggregate.ID(),
		cmd.TxType(),
		cmd.Amount(),
		cmd.ReportDate(),
	)
	if err != nil {
		return err
	}

	if err = uow.CashRepository().AddTransaction(ctx, transaction); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
