package ledger

import (
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/guard"
)

// ErrDailyBalanceIsNotConstructed is returned when a DailyBalance was not
// created through a factory function.
var ErrDailyBalanceIsNotConstructed = errors.New(
	"DailyBalance must be created via NewDailyBalance constructor",
)

// DailyBalance is the per (shop, report date) aggregate of order economics.
//
// Invariant: at any quiescent moment the row equals the sum of the
// current-snapshot impacts of every order in scope for that shop and day,
// never the sum of all deltas ever applied. The reverse-then-reapply
// bookkeeping in the application layer preserves this under arbitrary
// sequences of edits.
type DailyBalance struct {
	shopID     kernel.UUID
	reportDate kernel.ReportDate

	ordersSent      int
	ordersDelivered int
	revenueArticles kernel.Money
	deliveryFees    kernel.Money
	packagingFees   kernel.Money
	expeditionFees  kernel.Money

	guard guard.ConstructorGuard
}

// NewDailyBalance creates an all-zero balance for a shop and day.
// This is the base row an upsert starts from when no row exists yet.
func NewDailyBalance(shopID kernel.UUID, reportDate kernel.ReportDate) (*DailyBalance, error) {
	if err := errors.Join(shopID.Validate(), reportDate.Validate()); err != nil {
		return nil, err
	}

	return &DailyBalance{
		shopID:     shopID,
		reportDate: reportDate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreDailyBalance reconstructs a balance row from persistent storage.
func RestoreDailyBalance(
	shopID kernel.UUID,
	reportDate kernel.ReportDate,
	ordersSent int,
	ordersDelivered int,
	revenueArticles kernel.Money,
	deliveryFees kernel.Money,
	packagingFees kernel.Money,
	expeditionFees kernel.Money,
) (*DailyBalance, error) {
	b, err := NewDailyBalance(shopID, reportDate)
	if err != nil {
		return nil, err
	}

	b.ordersSent = ordersSent
	b.ordersDelivered = ordersDelivered
	b.revenueArticles = revenueArticles
	b.deliveryFees = deliveryFees
	b.packagingFees = packagingFees
	b.expeditionFees = expeditionFees
	return b, nil
}

// Validate ensures the DailyBalance was properly constructed.
func (b *DailyBalance) Validate() error {
	if b == nil {
		return ErrDailyBalanceIsNotConstructed
	}
	return b.guard.Validate(ErrDailyBalanceIsNotConstructed)
}

// Apply adds a (possibly negative) delta to the balance in place.
func (b *DailyBalance) Apply(delta Delta) {
	b.ordersSent += delta.OrdersSent
	b.ordersDelivered += delta.OrdersDelivered
	b.revenueArticles = b.revenueArticles.Add(delta.RevenueArticles)
	b.deliveryFees = b.deliveryFees.Add(delta.DeliveryFees)
	b.packagingFees = b.packagingFees.Add(delta.PackagingFees)
	b.expeditionFees = b.expeditionFees.Add(delta.ExpeditionFees)
}

// ShopID returns the shop the balance belongs to.
func (b *DailyBalance) ShopID() kernel.UUID {
	return b.shopID
}

// ReportDate returns the accounting day of the balance.
func (b *DailyBalance) ReportDate() kernel.ReportDate {
	return b.reportDate
}

// OrdersSent returns the number of orders created for the day.
func (b *DailyBalance) OrdersSent() int {
	return b.ordersSent
}

// OrdersDelivered returns the number of processed trips for the day.
func (b *DailyBalance) OrdersDelivered() int {
	return b.ordersDelivered
}

// RevenueArticles returns the article revenue collected for the shop.
func (b *DailyBalance) RevenueArticles() kernel.Money {
	return b.revenueArticles
}

// DeliveryFees returns the delivery fees charged to the shop.
func (b *DailyBalance) DeliveryFees() kernel.Money {
	return b.deliveryFees
}

// PackagingFees returns the packaging fees charged to the shop.
func (b *DailyBalance) PackagingFees() kernel.Money {
	return b.packagingFees
}

// ExpeditionFees returns the pass-through shipping costs for the day.
func (b *DailyBalance) ExpeditionFees() kernel.Money {
	return b.expeditionFees
}

// RemittanceAmount is the derived net payable for the day:
// revenue_articles - delivery_fees - packaging_fees. Negative values mean
// the shop owes the platform and are turned into debts by the debt
// synchronizer; positive values become remittances at consolidation.
func (b *DailyBalance) RemittanceAmount() kernel.Money {
	return b.revenueArticles.Sub(b.deliveryFees).Sub(b.packagingFees)
}
