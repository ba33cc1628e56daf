package commands

import (
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
	"deliverypay/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to edit an order's descriptive and
// economic fields. A nil item list keeps the existing line items; a non-nil
// list replaces them wholesale.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	customerPhone   string
	deliveryAddress string
	articleAmount   kernel.Money
	deliveryFee     kernel.Money
	expeditionFee   kernel.Money
	reportDate      kernel.ReportDate
	items           []ItemInput
	actorID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an existing order.
// Validates identifiers, required customer fields, monetary amounts and the
// report date. Returns an error if any validation fails.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerPhone string,
	deliveryAddress string,
	articleAmount kernel.Money,
	deliveryFee kernel.Money,
	expeditionFee kernel.Money,
	reportDate kernel.ReportDate,
	items []ItemInput,
	actorID kernel.UUID,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setAmounts(articleAmount, deliveryFee, expeditionFee),
		orderCommand.setReportDate(reportDate),
		orderCommand.setActorID(actorID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	orderCommand.customerPhone = customerPhone
	orderCommand.items = items
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the recipient's name.
func (c UpdateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the recipient's phone number.
func (c UpdateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// DeliveryAddress returns the delivery destination.
func (c UpdateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// ArticleAmount returns the value of the goods being delivered.
func (c UpdateOrderCommand) ArticleAmount() kernel.Money {
	return c.articleAmount
}

// DeliveryFee returns the platform's delivery fee for the order.
func (c UpdateOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// ExpeditionFee returns the pass-through shipping cost for the order.
func (c UpdateOrderCommand) ExpeditionFee() kernel.Money {
	return c.expeditionFee
}

// ReportDate returns the accounting day the order is booked on.
func (c UpdateOrderCommand) ReportDate() kernel.ReportDate {
	return c.reportDate
}

// Items returns the replacement line items, nil to keep the current ones.
func (c UpdateOrderCommand) Items() []ItemInput {
	return c.items
}

// ActorID returns the user editing the order.
func (c UpdateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *UpdateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *UpdateOrderCommand) setAmounts(articleAmount, deliveryFee, expeditionFee kernel.Money) error {
	if articleAmount.IsNegative() {
		return errs.NewValueIsInvalidError("article amount")
	}
	if deliveryFee.IsNegative() {
		return errs.NewValueIsInvalidError("delivery fee")
	}
	if expeditionFee.IsNegative() {
		return errs.NewValueIsInvalidError("expedition fee")
	}

	c.articleAmount = articleAmount
	c.deliveryFee = deliveryFee
	c.expeditionFee = expeditionFee
	return nil
}

func (c *UpdateOrderCommand) setReportDate(reportDate kernel.ReportDate) error {
	if err := reportDate.Validate(); err != nil {
		return err
	}

	c.reportDate = reportDate
	return nil
}

func (c *UpdateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
