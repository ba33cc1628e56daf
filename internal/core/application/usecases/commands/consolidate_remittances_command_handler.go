package commands

import (
	"context"

	"deliverypay/internal/core/domain/model/finance"
)

// ConsolidateRemittancesCommandHandler turns positive daily balances into
// payable remittances. For every balance whose remittance amount is positive
// it inserts a pending remittance, or refreshes the amounts of the one
// already on file. The shop's pending-debt total is snapshotted alongside
// the gross amount for audit; payable listings recompute the net against the
// debts outstanding at read time.
//
// The whole cycle is idempotent: a paid remittance is refreshed but never
// reopened, and re-running the consolidator without ledger changes writes
// the same amounts again.
type ConsolidateRemittancesCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewConsolidateRemittancesCommandHandler creates a handler for remittance consolidation.
func NewConsolidateRemittancesCommandHandler(
	uowFactory SettlementUoWFactory,
) ConsolidateRemittancesCommandHandler {
	return ConsolidateRemittancesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the consolidation command.
func (h *ConsolidateRemittancesCommandHandler) Handle(
	ctx context.Context,
	cmd ConsolidateRemittancesCommand,
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

	balances, err := uow.BalanceRepository().GetAllWithPositiveRemittance(ctx)
	if err != nil {
		return err
	}

	debtRepo := uow.DebtRepository()
	remittanceRepo := uow.RemittanceRepository()

	for _, balance := range balances {
		gross := balance.RemittanceAmount()

		pendingDebts, err := debtRepo.SumPendingByShop(ctx, balance.ShopID())
		if err != nil {
			return err
		}

		existing, err := remittanceRepo.GetByShopAndDate(ctx, balance.ShopID(), balance.ReportDate())
		if err != nil {
			return err
		}

		if existing == nil {
			remittance, err := finance.NewRemittance(
				balance.ShopID(), balance.ReportDate(), gross, pendingDebts)
			if err != nil {
				return err
			}
			if err = remittanceRepo.Add(ctx, remittance); err != nil {
				return err
			}
			continue
		}

		if err = existing.Consolidate(gross, pendingDebts); err != nil {
			return err
		}
		if err = remittanceRepo.Update(ctx, existing); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
