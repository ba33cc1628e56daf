package order_test

import (
	"testing"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidDetails(t *testing.T) order.Details {
	t.Helper()
	date, err := kernel.ReportDateFromString("2024-03-15")
	require.NoError(t, err)

	return order.Details{
		CustomerName:    "Test Customer",
		CustomerPhone:   "+22501020304",
		DeliveryAddress: "Cocody, Abidjan",
		ArticleAmount:   kernel.MoneyFromInt(5000),
		DeliveryFee:     kernel.MoneyFromInt(500),
		ExpeditionFee:   kernel.MoneyFromInt(200),
		ReportDate:      date,
	}
}

func createValidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), createValidDetails(t), nil, kernel.NewUUID())
	require.NoError(t, err)
	require.NotNil(t, o)
	return o
}

func createEnRouteOrder(t *testing.T) *order.Order {
	t.Helper()
	o := createValidOrder(t)
	actorID := kernel.NewUUID()
	require.NoError(t, o.AssignCourier(kernel.NewUUID(), actorID))
	require.NoError(t, o.ChangeStatus(order.StatusEnRoute, nil, nil, actorID))
	return o
}

func paymentStatusPtr(s order.PaymentStatus) *order.PaymentStatus {
	return &s
}

func moneyPtr(m kernel.Money) *kernel.Money {
	return &m
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		shopID := kernel.NewUUID()

		o, err := order.NewOrder(id, shopID, createValidDetails(t), nil, kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.ShopID().IsEqual(shopID))
		assert.Nil(t, o.Courier())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.True(t, o.AmountReceived().IsZero())
	})

	t.Run("should record a creation history entry", func(t *testing.T) {
		actorID := kernel.NewUUID()

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), createValidDetails(t), nil, actorID)

		require.NoError(t, err)
		require.Len(t, o.History(), 1)
		entry := o.History()[0]
		assert.Equal(t, order.HistoryActionCreated, entry.Action())
		assert.True(t, entry.ActorID().IsEqual(actorID))
	})

	t.Run("should create order with items", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Robe wax", 2, kernel.MoneyFromInt(2500))
		require.NoError(t, err)

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), createValidDetails(t),
			[]order.Item{item}, kernel.NewUUID())

		require.NoError(t, err)
		require.Len(t, o.Items(), 1)
		assert.Equal(t, "Robe wax", o.Items()[0].Name())
	})

	t.Run("should return error with missing customer name", func(t *testing.T) {
		details := createValidDetails(t)
		details.CustomerName = ""

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), details, nil, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
	})

	t.Run("should return error with missing delivery address", func(t *testing.T) {
		details := createValidDetails(t)
		details.DeliveryAddress = ""

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), details, nil, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrDeliveryAddressIsRequired)
	})

	t.Run("should return error with negative amounts", func(t *testing.T) {
		details := createValidDetails(t)
		details.ArticleAmount = kernel.MoneyFromInt(-1)

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), details, nil, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrderChangeDetails(t *testing.T) {
	t.Run("should replace details and append history", func(t *testing.T) {
		o := createValidOrder(t)
		details := createValidDetails(t)
		details.ArticleAmount = kernel.MoneyFromInt(7000)

		err := o.ChangeDetails(details, nil, kernel.NewUUID())

		require.NoError(t, err)
		assert.True(t, o.ArticleAmount().IsEqual(kernel.MoneyFromInt(7000)))
		require.Len(t, o.History(), 2)
		assert.Equal(t, order.HistoryActionUpdated, o.History()[1].Action())
	})

	t.Run("should keep items when items is nil", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Robe wax", 1, kernel.MoneyFromInt(2500))
		require.NoError(t, err)
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), createValidDetails(t),
			[]order.Item{item}, kernel.NewUUID())
		require.NoError(t, err)

		err = o.ChangeDetails(createValidDetails(t), nil, kernel.NewUUID())

		require.NoError(t, err)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should replace items wholesale when provided", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Robe wax", 1, kernel.MoneyFromInt(2500))
		require.NoError(t, err)
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), createValidDetails(t),
			[]order.Item{item}, kernel.NewUUID())
		require.NoError(t, err)

		replacement, err := order.NewItem(kernel.NewUUID(), "Sac cuir", 3, kernel.MoneyFromInt(1000))
		require.NoError(t, err)

		err = o.ChangeDetails(createValidDetails(t), []order.Item{replacement}, kernel.NewUUID())

		require.NoError(t, err)
		require.Len(t, o.Items(), 1)
		assert.Equal(t, "Sac cuir", o.Items()[0].Name())
	})

	t.Run("should reject invalid details", func(t *testing.T) {
		o := createValidOrder(t)
		details := createValidDetails(t)
		details.CustomerName = ""

		assert.Error(t, o.ChangeDetails(details, nil, kernel.NewUUID()))
	})
}

func TestOrderChangeStatus(t *testing.T) {
	t.Run("should deliver en route order with cash payment", func(t *testing.T) {
		o := createEnRouteOrder(t)

		err := o.ChangeStatus(
			order.StatusDelivered, nil, paymentStatusPtr(order.PaymentCash), kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, order.PaymentCash, o.PaymentStatus())
	})

	t.Run("should record amount received on failed delivery", func(t *testing.T) {
		o := createEnRouteOrder(t)

		err := o.ChangeStatus(
			order.StatusFailedDelivery,
			moneyPtr(kernel.MoneyFromInt(1500)),
			paymentStatusPtr(order.PaymentCash),
			kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, order.StatusFailedDelivery, o.Status())
		assert.True(t, o.AmountReceived().IsEqual(kernel.MoneyFromInt(1500)))
	})

	t.Run("cancelling force-clears payment state regardless of input", func(t *testing.T) {
		o := createEnRouteOrder(t)
		require.NoError(t, o.ChangeStatus(
			order.StatusFailedDelivery,
			moneyPtr(kernel.MoneyFromInt(1500)),
			paymentStatusPtr(order.PaymentCash),
			kernel.NewUUID()))

		err := o.ChangeStatus(
			order.StatusCancelled,
			moneyPtr(kernel.MoneyFromInt(9999)),
			paymentStatusPtr(order.PaymentCash),
			kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, order.PaymentCancelled, o.PaymentStatus())
		assert.True(t, o.AmountReceived().IsZero())
	})

	t.Run("should append a status change history entry", func(t *testing.T) {
		o := createEnRouteOrder(t)
		before := len(o.History())

		require.NoError(t, o.ChangeStatus(
			order.StatusDelivered, nil, paymentStatusPtr(order.PaymentCash), kernel.NewUUID()))

		require.Len(t, o.History(), before+1)
		entry := o.History()[len(o.History())-1]
		assert.Equal(t, order.HistoryActionStatusChanged, entry.Action())
		assert.Contains(t, entry.Details(), "en_route")
		assert.Contains(t, entry.Details(), "delivered")
	})

	t.Run("should reject disallowed transition", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ChangeStatus(order.StatusDelivered, nil, nil, kernel.NewUUID())

		assert.Error(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should reject negative amount received", func(t *testing.T) {
		o := createEnRouteOrder(t)

		err := o.ChangeStatus(
			order.StatusFailedDelivery, moneyPtr(kernel.MoneyFromInt(-1)), nil, kernel.NewUUID())

		assert.Error(t, err)
	})
}

func TestOrderAssignCourier(t *testing.T) {
	t.Run("should assign courier and move to in progress", func(t *testing.T) {
		o := createValidOrder(t)
		courierID := kernel.NewUUID()

		err := o.AssignCourier(courierID, kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("should allow reassigning an active order", func(t *testing.T) {
		o := createEnRouteOrder(t)
		replacement := kernel.NewUUID()

		err := o.AssignCourier(replacement, kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, o.Status())
		assert.True(t, o.Courier().IsEqual(replacement))
	})

	t.Run("should reject assignment on processed order", func(t *testing.T) {
		o := createEnRouteOrder(t)
		require.NoError(t, o.ChangeStatus(
			order.StatusDelivered, nil, paymentStatusPtr(order.PaymentCash), kernel.NewUUID()))

		err := o.AssignCourier(kernel.NewUUID(), kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrOrderNotAssignable)
	})

	t.Run("should reject assignment on cancelled order", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusCancelled, nil, nil, kernel.NewUUID()))

		err := o.AssignCourier(kernel.NewUUID(), kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrOrderNotAssignable)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore full state", func(t *testing.T) {
		id := kernel.NewUUID()
		shopID := kernel.NewUUID()
		courierID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			id, shopID, &courierID, createValidDetails(t),
			kernel.MoneyFromInt(1500),
			order.StatusFailedDelivery, order.PaymentCash,
			nil, nil)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusFailedDelivery, o.Status())
		assert.True(t, o.AmountReceived().IsEqual(kernel.MoneyFromInt(1500)))
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("should return error with invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil, createValidDetails(t),
			kernel.ZeroMoney(), order.StatusUnknown, order.PaymentPending, nil, nil)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("should return error for nil order", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should return error for zero value order", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
