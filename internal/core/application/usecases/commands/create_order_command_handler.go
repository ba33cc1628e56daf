package commands

import (
	"context"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/ledger"
	"deliverypay/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the order in Pending status and books its creation impact on the
// shop's daily balance in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a LedgerUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory LedgerUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The order row, its orders_sent ledger marker and any resulting debt change
// are persisted atomically or rolled back together.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewItem(kernel.NewUUID(), input.Name, input.Quantity, input.Amount)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shopAggregate, err := uow.ShopRepository().Get(ctx, cmd.ShopID())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ShopID(),
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	delta := ledger.CreationImpactOf(newOrder, shopAggregate)
	if err = applyLedgerDelta(ctx, uow, cmd.ShopID(), newOrder.ReportDate(), delta); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
