package ledger

import (
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/order"
	"deliverypay/internal/core/domain/model/shop"
)

// ImpactOf computes the ledger contribution of an order's current snapshot.
// It is a pure function over the (status, payment status) pair and the
// order's economic fields, unit-testable without a database:
//
//	status           payment           delivered  revenue          delivery  packaging  expedition
//	delivered        cash              1          article_amount   fee       opt-in     fee
//	delivered        paid_to_supplier  1          0                fee       opt-in     fee
//	failed_delivery  any               1          amount_received  fee       opt-in     fee
//	cancelled        cancelled         0          0                0         0          fee
//	any other        any               0          0                0         0          0
//
// OrdersSent is never contributed here: order existence is bookkept by the
// creation and deletion flows, not by status changes.
//
// The packaging fee applies only when the shop opted into packaging billing,
// and only in states that count as processed.
func ImpactOf(o *order.Order, s *shop.Shop) Delta {
	switch o.Status() {
	case order.StatusDelivered:
		revenue := kernel.ZeroMoney()
		if o.PaymentStatus() == order.PaymentCash {
			revenue = o.ArticleAmount()
		}
		return Delta{
			OrdersDelivered: 1,
			RevenueArticles: revenue,
			DeliveryFees:    o.DeliveryFee(),
			PackagingFees:   packagingFeeFor(s),
			ExpeditionFees:  o.ExpeditionFee(),
		}
	case order.StatusFailedDelivery:
		return Delta{
			OrdersDelivered: 1,
			RevenueArticles: o.AmountReceived(),
			DeliveryFees:    o.DeliveryFee(),
			PackagingFees:   packagingFeeFor(s),
			ExpeditionFees:  o.ExpeditionFee(),
		}
	case order.StatusCancelled:
		// A cancelled order keeps its expedition fee on the books: the
		// shipping charge was incurred regardless of the outcome.
		return Delta{
			ExpeditionFees: o.ExpeditionFee(),
		}
	default:
		// Pending, in progress, ready for pickup, en route, reported,
		// return declared and returned orders carry no economics yet.
		return Delta{}
	}
}

// CreationImpactOf is the single delta applied when an order is created:
// the snapshot impact plus the orders_sent existence marker.
func CreationImpactOf(o *order.Order, s *shop.Shop) Delta {
	return ImpactOf(o, s).Add(Delta{OrdersSent: 1})
}

// DeletionImpactOf is the single delta applied when an order is deleted:
// the exact reversal of everything the order currently contributes,
// including its orders_sent existence marker.
func DeletionImpactOf(o *order.Order, s *shop.Shop) Delta {
	return CreationImpactOf(o, s).Negate()
}

func packagingFeeFor(s *shop.Shop) kernel.Money {
	if s != nil && s.BillPackaging() {
		return s.PackagingPrice()
	}
	return kernel.ZeroMoney()
}
