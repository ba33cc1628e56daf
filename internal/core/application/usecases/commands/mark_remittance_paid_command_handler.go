package commands

import (
	"context"
	"time"
)

// MarkRemittancePaidCommandHandler records a remittance payout and settles
// the shop's debts atomically. The remittance row is locked for the duration
// of the transaction, so two concurrent payouts of the same remittance
// serialize and the second one fails on the status check.
type MarkRemittancePaidCommandHandler struct {
	uowFactory SettlementUoWFactory
	now        func() time.Time
}

// NewMarkRemittancePaidCommandHandler creates a handler for remittance payout.
func NewMarkRemittancePaidCommandHandler(
	uowFactory SettlementUoWFactory,
) MarkRemittancePaidCommandHandler {
	return MarkRemittancePaidCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the payout command.
func (h *MarkRemittancePaidCommandHandler) Handle(ctx context.Context, cmd MarkRemittancePaidCommand) error {
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

	remittanceRepo := uow.RemittanceRepository()
	remittance, err := remittanceRepo.Get(ctx, cmd.RemittanceID())
	if err != nil {
		return err
	}

	paidAt := h.now()
	if err = remittance.MarkPaid(cmd.PaidBy(), paidAt); err != nil {
		return err
	}

	if err = remittanceRepo.Update(ctx, remittance); err != nil {
		return err
	}

	// The payout hands over gross minus pending debts, so the debts are
	// settled by the same act.
	if _, err = uow.DebtRepository().SettleAllPending(ctx, remittance.ShopID(), paidAt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
