package services

import (
	"deliverypay/internal/core/domain/model/finance"
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/ledger"
)

// DebtSynchronizer is a domain service that keeps the derived daily-balance
// debt of a shop in step with the shop's ledger balance for a day.
//
// Business rules:
//   - A negative remittance amount (fees exceed revenue) is mirrored by a
//     pending debt carrying the absolute value
//   - When the balance recovers, the debt amount is driven back to zero
//     instead of deleting the row, so the audit trail survives
//   - A settled debt stays settled while the balance is non-negative; a fresh
//     deficit after settlement reopens the same row, so at most one
//     daily-balance debt exists per shop and day
//   - Synchronization is idempotent: applying it twice on the same balance
//     changes nothing the second time
type DebtSynchronizer struct{}

// NewDebtSynchronizer creates a new DebtSynchronizer instance.
func NewDebtSynchronizer() DebtSynchronizer {
	return DebtSynchronizer{}
}

// Synchronize reconciles the daily-balance debt of a shop and day against the
// current ledger balance.
//
// Parameters:
//   - balance: the shop's daily balance after a ledger mutation
//   - existing: the current daily-balance debt for that shop and day, or nil
//     when no debt row exists yet
//
// Returns the debt that must be persisted and true, or nil and false when no
// write is needed.
func (DebtSynchronizer) Synchronize(
	balance *ledger.DailyBalance,
	existing *finance.Debt,
) (*finance.Debt, bool, error) {
	if err := balance.Validate(); err != nil {
		return nil, false, err
	}

	desired := desiredDebtAmount(balance)

	if existing == nil {
		if desired.IsZero() {
			return nil, false, nil
		}
		debt, err := finance.NewDailyBalanceDebt(balance.ShopID(), balance.ReportDate(), desired)
		if err != nil {
			return nil, false, err
		}
		return debt, true, nil
	}

	if err := existing.Validate(); err != nil {
		return nil, false, err
	}
	if existing.Status() == finance.DebtStatusPaid {
		if desired.IsZero() {
			return nil, false, nil
		}
		if err := existing.Reopen(desired); err != nil {
			return nil, false, err
		}
		return existing, true, nil
	}
	if existing.Amount().IsEqual(desired) {
		return nil, false, nil
	}

	if err := existing.SetAmount(desired); err != nil {
		return nil, false, err
	}
	return existing, true, nil
}

// desiredDebtAmount is the absolute value of a negative remittance amount,
// or zero when the shop is owed money.
func desiredDebtAmount(balance *ledger.DailyBalance) kernel.Money {
	remittance := balance.RemittanceAmount()
	if remittance.IsNegative() {
		return remittance.Abs()
	}
	return kernel.ZeroMoney()
}
