package ledger

import (
	"deliverypay/internal/core/domain/model/kernel"
)

// Delta is the signed contribution of one order snapshot to a shop's daily
// balance. Deltas are pure values: they can be added together and negated,
// which is what makes the reverse-then-reapply bookkeeping possible.
//
// A mutation on an existing order applies exactly two deltas to the ledger:
// the negation of the impact of the "before" snapshot and the impact of the
// "after" snapshot. Creation and deletion apply exactly one.
type Delta struct {
	// OrdersSent counts order existence: +1 on create, -1 on delete.
	OrdersSent int
	// OrdersDelivered counts processed trips (delivered or failed delivery).
	OrdersDelivered int
	// RevenueArticles is the article revenue collected for the shop.
	RevenueArticles kernel.Money
	// DeliveryFees is the platform's delivery fee charged to the shop.
	DeliveryFees kernel.Money
	// PackagingFees is the packaging fee charged when the shop opted in.
	PackagingFees kernel.Money
	// ExpeditionFees is the pass-through shipping cost tracked per day.
	ExpeditionFees kernel.Money
}

// Add returns the component-wise sum of two deltas.
func (d Delta) Add(other Delta) Delta {
	return Delta{
		OrdersSent:      d.OrdersSent + other.OrdersSent,
		OrdersDelivered: d.OrdersDelivered + other.OrdersDelivered,
		RevenueArticles: d.RevenueArticles.Add(other.RevenueArticles),
		DeliveryFees:    d.DeliveryFees.Add(other.DeliveryFees),
		PackagingFees:   d.PackagingFees.Add(other.PackagingFees),
		ExpeditionFees:  d.ExpeditionFees.Add(other.ExpeditionFees),
	}
}

// Negate returns the delta with every component's sign flipped.
// Applying a delta followed by its negation leaves a balance unchanged.
func (d Delta) Negate() Delta {
	return Delta{
		OrdersSent:      -d.OrdersSent,
		OrdersDelivered: -d.OrdersDelivered,
		RevenueArticles: d.RevenueArticles.Neg(),
		DeliveryFees:    d.DeliveryFees.Neg(),
		PackagingFees:   d.PackagingFees.Neg(),
		ExpeditionFees:  d.ExpeditionFees.Neg(),
	}
}

// IsZero reports whether every component is zero. Zero deltas are still
// applied to the ledger so that the balance row exists for the day.
func (d Delta) IsZero() bool {
	return d.OrdersSent == 0 &&
		d.OrdersDelivered == 0 &&
		d.RevenueArticles.IsZero() &&
		d.DeliveryFees.IsZero() &&
		d.PackagingFees.IsZero() &&
		d.ExpeditionFees.IsZero()
}

// IsEqual reports component-wise equality of two deltas.
func (d Delta) IsEqual(other Delta) bool {
	return d.OrdersSent == other.OrdersSent &&
		d.OrdersDelivered == other.OrdersDelivered &&
		d.RevenueArticles.IsEqual(other.RevenueArticles) &&
		d.DeliveryFees.IsEqual(other.DeliveryFees) &&
		d.PackagingFees.IsEqual(other.PackagingFees) &&
		d.ExpeditionFees.IsEqual(other.ExpeditionFees)
}

// RemittanceAmount is the net payable the delta contributes to the shop:
// article revenue minus the platform's delivery and packaging fees.
// Expedition fees are deliberately excluded; they are settled through the
// courier cash view, not the shop remittance.
func (d Delta) RemittanceAmount() kernel.Money {
	return d.RevenueArticles.Sub(d.DeliveryFees).Sub(d.PackagingFees)
}
