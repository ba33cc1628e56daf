package commands

import (
	"context"

	"deliverypay/internal/core/domain/model/ledger"
)

// RemoveOrderCommandHandler handles order deletion. The order row and the
// reversal of its entire ledger contribution commit atomically.
type RemoveOrderCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewRemoveOrderCommandHandler creates a handler for order deletion.
func NewRemoveOrderCommandHandler(uowFactory LedgerUoWFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
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

	if err = orderRepo.Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	delta := ledger.DeletionImpactOf(orderAggregate, shopAggregate)
	err = applyLedgerDelta(ctx, uow, orderAggregate.ShopID(), orderAggregate.ReportDate(), delta)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
