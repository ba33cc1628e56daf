package commands

import (
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
	"deliverypay/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// ItemInput describes one order line item as supplied by the caller.
// Item identity is generated when the order is created.
type ItemInput struct {
	Name     string
	Quantity int
	Amount   kernel.Money
}

// CreateOrderCommand represents a request to register a new delivery order
// for a shop. Carries the customer details and the economic fields from
// which the shop's daily ledger is derived.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, shopID, "Awa Kone", "+2250102",
//	    "Cocody", articleAmount, deliveryFee, expeditionFee, reportDate, items, actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	shopID          kernel.UUID
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

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates identifiers, required customer fields, monetary amounts and the
// report date. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	shopID kernel.UUID,
	customerName string,
	customerPhone string,
	deliveryAddress string,
	articleAmount kernel.Money,
	deliveryFee kernel.Money,
	expeditionFee kernel.Money,
	reportDate kernel.ReportDate,
	items []ItemInput,
	actorID kernel.UUID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setShopID(shopID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setAmounts(articleAmount, deliveryFee, expeditionFee),
		orderCommand.setReportDate(reportDate),
		orderCommand.setActorID(actorID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.customerPhone = customerPhone
	orderCommand.items = items
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShopID returns the shop the order belongs to.
func (c CreateOrderCommand) ShopID() kernel.UUID {
	return c.shopID
}

// CustomerName returns the recipient's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the recipient's phone number.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// DeliveryAddress returns the delivery destination.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// ArticleAmount returns the value of the goods being delivered.
func (c CreateOrderCommand) ArticleAmount() kernel.Money {
	return c.articleAmount
}

// DeliveryFee returns the platform's delivery fee for the order.
func (c CreateOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// ExpeditionFee returns the pass-through shipping cost for the order.
func (c CreateOrderCommand) ExpeditionFee() kernel.Money {
	return c.expeditionFee
}

// ReportDate returns the accounting day the order is booked on.
func (c CreateOrderCommand) ReportDate() kernel.ReportDate {
	return c.reportDate
}

// Items returns the order line items.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

// ActorID returns the user creating the order.
func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}

	c.shopID = shopID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setAmounts(articleAmount, deliveryFee, expeditionFee kernel.Money) error {
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

func (c *CreateOrderCommand) setReportDate(reportDate kernel.ReportDate) error {
	if err := reportDate.Validate(); err != nil {
		return err
	}

	c.reportDate = reportDate
	return nil
}

func (c *CreateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
