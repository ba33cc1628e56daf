package commands

import (
	"context"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/ledger"
	"deliverypay/internal/core/domain/model/order"
	"deliverypay/internal/core/domain/model/shop"
	"deliverypay/internal/core/domain/services"
)

// applyLedgerDelta adds a signed delta to the balance of a shop and day and
// reconciles the derived daily-balance debt against the resulting balance.
// Runs inside the caller's transaction; the balance row stays locked until
// commit, which serializes concurrent mutations of the same shop and day.
func applyLedgerDelta(
	ctx context.Context,
	uow LedgerUoW,
	shopID kernel.UUID,
	reportDate kernel.ReportDate,
	delta ledger.Delta,
) error {
	balance, err := uow.BalanceRepository().ApplyDelta(ctx, shopID, reportDate, delta)
	if err != nil {
		return err
	}

	debtRepo := uow.DebtRepository()
	existing, err := debtRepo.GetDailyBalanceDebt(ctx, shopID, reportDate)
	if err != nil {
		return err
	}

	debt, changed, err := services.NewDebtSynchronizer().Synchronize(balance, existing)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if existing == nil {
		return debtRepo.Add(ctx, debt)
	}
	return debtRepo.Update(ctx, debt)
}

// applyOrderTransition performs the reverse-then-reapply bookkeeping for an
// order mutation: the impact of the pre-mutation snapshot is subtracted and
// the impact of the current snapshot added. Handlers capture the before
// delta and report date prior to mutating the aggregate.
//
// An edit may move the order to another accounting day, in which case two
// balance rows are touched: the old day loses the order's contribution and
// the new day gains it.
func applyOrderTransition(
	ctx context.Context,
	uow LedgerUoW,
	s *shop.Shop,
	beforeDelta ledger.Delta,
	beforeDate kernel.ReportDate,
	after *order.Order,
) error {
	afterDelta := ledger.ImpactOf(after, s)
	afterDate := after.ReportDate()

	if beforeDate.IsEqual(afterDate) {
		return applyLedgerDelta(ctx, uow, s.ID(), afterDate, beforeDelta.Negate().Add(afterDelta))
	}

	if err := applyLedgerDelta(ctx, uow, s.ID(), beforeDate, beforeDelta.Negate()); err != nil {
		return err
	}
	return applyLedgerDelta(ctx, uow, s.ID(), afterDate, afterDelta)
}
