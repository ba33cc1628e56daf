package ledger_test

import (
	"testing"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/ledger"
	"deliverypay/internal/core/domain/model/order"
	"deliverypay/internal/core/domain/model/shop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createShop(t *testing.T, billPackaging bool, packagingPrice int64) *shop.Shop {
	t.Helper()
	s, err := shop.NewShop(kernel.NewUUID(), "Test Shop", "", billPackaging, kernel.MoneyFromInt(packagingPrice))
	require.NoError(t, err)
	return s
}

func createOrderSnapshot(
	t *testing.T,
	s *shop.Shop,
	status order.Status,
	paymentStatus order.PaymentStatus,
	amountReceived int64,
) *order.Order {
	t.Helper()
	date, err := kernel.ReportDateFromString("2024-03-15")
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		s.ID(),
		nil,
		order.Details{
			CustomerName:    "Test Customer",
			CustomerPhone:   "+22501020304",
			DeliveryAddress: "Cocody, Abidjan",
			ArticleAmount:   kernel.MoneyFromInt(5000),
			DeliveryFee:     kernel.MoneyFromInt(500),
			ExpeditionFee:   kernel.MoneyFromInt(200),
			ReportDate:      date,
		},
		kernel.MoneyFromInt(amountReceived),
		status,
		paymentStatus,
		nil,
		nil,
	)
	require.NoError(t, err)
	return o
}

func TestImpactOf(t *testing.T) {
	billingShop := createShop(t, true, 100)
	plainShop := createShop(t, false, 0)

	t.Run("delivered cash order contributes full article amount", func(t *testing.T) {
		o := createOrderSnapshot(t, billingShop, order.StatusDelivered, order.PaymentCash, 0)

		d := ledger.ImpactOf(o, billingShop)

		assert.Equal(t, 0, d.OrdersSent)
		assert.Equal(t, 1, d.OrdersDelivered)
		assert.True(t, d.RevenueArticles.IsEqual(kernel.MoneyFromInt(5000)))
		assert.True(t, d.DeliveryFees.IsEqual(kernel.MoneyFromInt(500)))
		assert.True(t, d.PackagingFees.IsEqual(kernel.MoneyFromInt(100)))
		assert.True(t, d.ExpeditionFees.IsEqual(kernel.MoneyFromInt(200)))
	})

	t.Run("delivered paid to supplier order contributes no revenue", func(t *testing.T) {
		o := createOrderSnapshot(t, billingShop, order.StatusDelivered, order.PaymentPaidToSupplier, 0)

		d := ledger.ImpactOf(o, billingShop)

		assert.Equal(t, 1, d.OrdersDelivered)
		assert.True(t, d.RevenueArticles.IsZero())
		assert.True(t, d.DeliveryFees.IsEqual(kernel.MoneyFromInt(500)))
		assert.True(t, d.PackagingFees.IsEqual(kernel.MoneyFromInt(100)))
	})

	t.Run("failed delivery contributes the amount actually received", func(t *testing.T) {
		o := createOrderSnapshot(t, billingShop, order.StatusFailedDelivery, order.PaymentCash, 1500)

		d := ledger.ImpactOf(o, billingShop)

		assert.Equal(t, 1, d.OrdersDelivered)
		assert.True(t, d.RevenueArticles.IsEqual(kernel.MoneyFromInt(1500)))
		assert.True(t, d.DeliveryFees.IsEqual(kernel.MoneyFromInt(500)))
		assert.True(t, d.PackagingFees.IsEqual(kernel.MoneyFromInt(100)))
		assert.True(t, d.ExpeditionFees.IsEqual(kernel.MoneyFromInt(200)))
	})

	t.Run("cancelled order keeps only its expedition fee", func(t *testing.T) {
		o := createOrderSnapshot(t, billingShop, order.StatusCancelled, order.PaymentCancelled, 0)

		d := ledger.ImpactOf(o, billingShop)

		assert.Equal(t, 0, d.OrdersDelivered)
		assert.True(t, d.RevenueArticles.IsZero())
		assert.True(t, d.DeliveryFees.IsZero())
		assert.True(t, d.PackagingFees.IsZero())
		assert.True(t, d.ExpeditionFees.IsEqual(kernel.MoneyFromInt(200)))
	})

	t.Run("unprocessed order contributes nothing", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusPending,
			order.StatusInProgress,
			order.StatusReadyForPickup,
			order.StatusEnRoute,
			order.StatusReported,
			order.StatusReturnDeclared,
			order.StatusReturned,
		} {
			o := createOrderSnapshot(t, billingShop, status, order.PaymentPending, 0)
			assert.True(t, ledger.ImpactOf(o, billingShop).IsZero(), "status %s", status)
		}
	})

	t.Run("no packaging fee when the shop did not opt in", func(t *testing.T) {
		o := createOrderSnapshot(t, plainShop, order.StatusDelivered, order.PaymentCash, 0)

		d := ledger.ImpactOf(o, plainShop)

		assert.True(t, d.PackagingFees.IsZero())
	})
}

func TestCreationAndDeletionImpact(t *testing.T) {
	s := createShop(t, true, 100)

	t.Run("creation adds the orders sent marker", func(t *testing.T) {
		o := createOrderSnapshot(t, s, order.StatusPending, order.PaymentPending, 0)

		d := ledger.CreationImpactOf(o, s)

		assert.Equal(t, 1, d.OrdersSent)
		assert.Equal(t, 0, d.OrdersDelivered)
		assert.True(t, d.RevenueArticles.IsZero())
	})

	t.Run("deletion exactly reverses creation", func(t *testing.T) {
		o := createOrderSnapshot(t, s, order.StatusDelivered, order.PaymentCash, 0)

		sum := ledger.CreationImpactOf(o, s).Add(ledger.DeletionImpactOf(o, s))

		assert.True(t, sum.IsZero())
	})
}

// A status correction must leave the ledger as if the order had reached the
// final state directly: reversing the old snapshot's impact and applying the
// new one nets out to the difference between the two.
func TestImpactReversalOnCorrection(t *testing.T) {
	s := createShop(t, true, 100)

	t.Run("delivered then cancelled nets to expedition fee only", func(t *testing.T) {
		delivered := createOrderSnapshot(t, s, order.StatusDelivered, order.PaymentCash, 0)
		cancelled := createOrderSnapshot(t, s, order.StatusCancelled, order.PaymentCancelled, 0)

		net := ledger.ImpactOf(delivered, s).Negate().Add(ledger.ImpactOf(cancelled, s))
		asIfDirect := ledger.ImpactOf(cancelled, s).Add(ledger.ImpactOf(delivered, s).Negate())

		assert.Equal(t, net, asIfDirect)
		assert.Equal(t, -1, net.OrdersDelivered)
		assert.True(t, net.RevenueArticles.IsEqual(kernel.MoneyFromInt(-5000)))
		assert.True(t, net.ExpeditionFees.IsZero())
	})

	t.Run("failed delivery corrected to delivered adjusts revenue only", func(t *testing.T) {
		failed := createOrderSnapshot(t, s, order.StatusFailedDelivery, order.PaymentCash, 1500)
		delivered := createOrderSnapshot(t, s, order.StatusDelivered, order.PaymentCash, 0)

		net := ledger.ImpactOf(failed, s).Negate().Add(ledger.ImpactOf(delivered, s))

		assert.Equal(t, 0, net.OrdersDelivered)
		assert.True(t, net.RevenueArticles.IsEqual(kernel.MoneyFromInt(3500)))
		assert.True(t, net.DeliveryFees.IsZero())
		assert.True(t, net.PackagingFees.IsZero())
		assert.True(t, net.ExpeditionFees.IsZero())
	})
}
