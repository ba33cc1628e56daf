package commands

import (
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/order"
	"deliverypay/internal/pkg/errs"
	"deliverypay/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order through its
// lifecycle: courier progress updates, final outcomes and back-office
// corrections all flow through this one command.
//
// The optional amountReceived records cash collected on a failed delivery;
// the optional paymentStatus records how the order was paid.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	status         order.Status
	amountReceived *kernel.Money
	paymentStatus  *order.PaymentStatus
	actorID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order.
// The transition itself is validated by the aggregate's state machine; the
// command validates identifiers, the target status and the optional amount.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	amountReceived *kernel.Money,
	paymentStatus *order.PaymentStatus,
	actorID kernel.UUID,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status),
		statusCommand.setAmountReceived(amountReceived),
		statusCommand.setPaymentStatus(paymentStatus),
		statusCommand.setActorID(actorID),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order being transitioned.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// AmountReceived returns the cash collected, nil when not supplied.
func (c UpdateOrderStatusCommand) AmountReceived() *kernel.Money {
	return c.amountReceived
}

// PaymentStatus returns the new payment status, nil to keep the current one.
func (c UpdateOrderStatusCommand) PaymentStatus() *order.PaymentStatus {
	return c.paymentStatus
}

// ActorID returns the user performing the transition.
func (c UpdateOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setAmountReceived(amountReceived *kernel.Money) error {
	if amountReceived != nil && amountReceived.IsNegative() {
		return errs.NewValueIsInvalidError("amount received")
	}

	c.amountReceived = amountReceived
	return nil
}

func (c *UpdateOrderStatusCommand) setPaymentStatus(paymentStatus *order.PaymentStatus) error {
	if paymentStatus != nil {
		if err := paymentStatus.Validate(); err != nil {
			return err
		}
	}

	c.paymentStatus = paymentStatus
	return nil
}

func (c *UpdateOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
