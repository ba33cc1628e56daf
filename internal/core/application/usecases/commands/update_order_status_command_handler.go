package commands

import (
	"context"

	"deliverypay/internal/core/domain/model/ledger"
)

// UpdateOrderStatusCommandHandler handles order lifecycle transitions and
// their ledger consequences. A correction of an already-processed order
// (delivered to cancelled, failed to delivered) reverses the previous
// snapshot's contribution before applying the new one, leaving the balance
// exactly as if the order had reached the final state directly.
type UpdateOrderStatusCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory LedgerUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	shopAggregate, err := uow.ShopRepository().Get(ctx, orderAggregate.ShopID())
	if err != nil {
		return err
	}

	beforeDelta := ledger.ImpactOf(orderAggregate, shopAggregate)
	beforeDate := orderAggregate.ReportDate()

	err = orderAggregate.ChangeStatus(
		cmd.Status(), cmd.AmountReceived(), cmd.PaymentStatus(), cmd.ActorID())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = applyOrderTransition(ctx, uow, shopAggregate, beforeDelta, beforeDate, orderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
