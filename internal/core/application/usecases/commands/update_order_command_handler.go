package commands

import (
	"context"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/ledger"
	"deliverypay/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles order edits. Because the economic fields
// or the accounting day may change, the handler reverses the order's previous
// ledger contribution and applies the new one in the same transaction.
type UpdateOrderCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order edit operations.
func NewUpdateOrderCommandHandler(uowFactory LedgerUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order edit command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var items []order.Item
	if cmd.Items() != nil {
		items = make([]order.Item, 0, len(cmd.Items()))
		for _, input := range cmd.Items() {
			item, err := order.NewItem(kernel.NewUUID(), input.Name, input.Quantity, input.Amount)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
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

	err = orderAggregate.ChangeDetails(
		order.Details{
			CustomerName:    cmd.CustomerName(),
			CustomerPhone:   cmd.CustomerPhone(),
			DeliveryAddress: cmd.DeliveryAddress(),
			ArticleAmount:   cmd.ArticleAmount(),
			DeliveryFee:     cmd.DeliveryFee(),
			ExpeditionFee:   cmd.ExpeditionFee(),
			ReportDate:      cmd.ReportDate(),
		},
		items,
		cmd.ActorID(),
	)
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
