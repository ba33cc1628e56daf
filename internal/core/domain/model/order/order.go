package order

import (
	"errors"
	"fmt"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCustomerNameIsRequired is returned when the customer name is missing.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrDeliveryAddressIsRequired is returned when the delivery address is missing.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
	// ErrOrderNotAssignable is returned when a courier assignment is attempted on
	// an order that was already processed, cancelled or returned.
	ErrOrderNotAssignable = errors.New("order can no longer be assigned to a courier")
)

// Details groups the editable descriptive and economic fields of an order.
// It exists so that creation and edit flow through one validated path.
type Details struct {
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	ArticleAmount   kernel.Money
	DeliveryFee     kernel.Money
	ExpeditionFee   kernel.Money
	ReportDate      kernel.ReportDate
}

// Order represents a delivery order. It is the aggregate root that manages
// the order lifecycle from creation through courier assignment to a final
// outcome, and carries the economic fields from which the daily shop ledger
// is derived.
//
// Order follows these invariants:
//   - Must reference a valid shop and carry a valid report date
//   - Monetary fields are never negative
//   - Status transitions follow the state machine defined on Status
//   - Cancelling force-sets the payment status to cancelled and clears
//     any recorded received amount, regardless of caller input
//   - Every state-changing action appends exactly one history entry
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// shopID references the merchant the order belongs to
	shopID kernel.UUID

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// details are the editable descriptive and economic fields
	details Details

	// amountReceived is the cash actually collected on a failed delivery
	amountReceived kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// paymentStatus records how the order was paid
	paymentStatus PaymentStatus

	// items are the order's line items, replaced wholesale on edit
	items []Item

	// history is the append-only audit trail
	history []HistoryEntry

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in the Pending status with a Pending payment
// status, validating every field and appending the initial history entry.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - shopID: the owning shop (must be a valid UUID)
//   - details: descriptive and economic fields (validated)
//   - items: line items (may be empty, each must be constructed via NewItem)
//   - actorID: the user creating the order, recorded in the audit trail
func NewOrder(
	id kernel.UUID,
	shopID kernel.UUID,
	details Details,
	items []Item,
	actorID kernel.UUID,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopID(shopID),
		o.setDetails(details),
		o.setItems(items),
		actorID.Validate(),
	); err != nil {
		return nil, err
	}

	o.history = append(o.history, NewHistoryEntry(HistoryActionCreated, actorID, "order created"))
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its current status, line items and audit trail. The restored
// order behaves identically to one created through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	shopID kernel.UUID,
	courierID *kernel.UUID,
	details Details,
	amountReceived kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	items []Item,
	history []HistoryEntry,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopID(shopID),
		o.setDetails(details),
		o.setItems(items),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}

	if amountReceived.IsNegative() {
		return nil, errs.NewValueIsInvalidError("amount received")
	}

	o.amountReceived = amountReceived
	o.status = status
	o.paymentStatus = paymentStatus
	o.history = history
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ShopID returns the owning shop's identifier.
func (o *Order) ShopID() kernel.UUID {
	return o.shopID
}

// Courier returns the assigned courier's ID, or nil if unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Details returns the order's descriptive and economic fields.
func (o *Order) Details() Details {
	return o.details
}

// ArticleAmount returns the total value of the ordered articles.
func (o *Order) ArticleAmount() kernel.Money {
	return o.details.ArticleAmount
}

// DeliveryFee returns the delivery fee charged to the shop.
func (o *Order) DeliveryFee() kernel.Money {
	return o.details.DeliveryFee
}

// ExpeditionFee returns the pass-through shipping charge fronted by the courier.
func (o *Order) ExpeditionFee() kernel.Money {
	return o.details.ExpeditionFee
}

// AmountReceived returns the cash collected on a failed delivery.
func (o *Order) AmountReceived() kernel.Money {
	return o.amountReceived
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// ReportDate returns the accounting day the order belongs to.
func (o *Order) ReportDate() kernel.ReportDate {
	return o.details.ReportDate
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	return o.items
}

// History returns the order's append-only audit trail.
func (o *Order) History() []HistoryEntry {
	return o.history
}

// ChangeDetails replaces the order's editable fields and, when items is not
// nil, replaces the line items wholesale. Appends one history entry.
//
// The ledger consequences of an edit (article amount, fees or report date
// changing) are handled by the application layer through the
// reverse-then-reapply bookkeeping; the aggregate only guarantees field
// validity and the audit trail.
func (o *Order) ChangeDetails(details Details, items []Item, actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := o.setDetails(details); err != nil {
		return err
	}
	if items != nil {
		if err := o.setItems(items); err != nil {
			return err
		}
	}

	o.history = append(o.history, NewHistoryEntry(HistoryActionUpdated, actorID, "order updated"))
	return nil
}

// ChangeStatus transitions the order to newStatus, applying the optional
// payment status and received amount supplied by the caller.
//
// Policy rules enforced here:
//   - The transition must be allowed by the state machine
//   - On transition to Cancelled the payment status is force-set to
//     Cancelled and the received amount force-cleared, regardless of input
//   - amountReceived cannot be negative
func (o *Order) ChangeStatus(
	newStatus Status,
	amountReceived *kernel.Money,
	newPaymentStatus *PaymentStatus,
	actorID kernel.UUID,
) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	transitioned, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	previous := o.status
	o.status = transitioned

	if transitioned == StatusCancelled {
		o.paymentStatus = PaymentCancelled
		o.amountReceived = kernel.ZeroMoney()
	} else {
		if newPaymentStatus != nil {
			if err = newPaymentStatus.Validate(); err != nil {
				return err
			}
			o.paymentStatus = *newPaymentStatus
		}
		if amountReceived != nil {
			if amountReceived.IsNegative() {
				return errs.NewValueIsInvalidError("amount received")
			}
			o.amountReceived = *amountReceived
		}
	}

	o.history = append(o.history, NewHistoryEntry(
		HistoryActionStatusChanged,
		actorID,
		fmt.Sprintf("status changed from %s to %s", previous, transitioned),
	))
	return nil
}

// AssignCourier assigns the order to a courier, moving it to InProgress with
// a Pending payment status. Reassignment of an active order is allowed;
// processed, cancelled and returned orders cannot be assigned.
func (o *Order) AssignCourier(courierID kernel.UUID, actorID kernel.UUID) error {
	if err := errors.Join(courierID.Validate(), actorID.Validate()); err != nil {
		return err
	}
	if o.status.IsTerminal() || o.status.IsProcessed() {
		return ErrOrderNotAssignable
	}

	o.status = StatusInProgress
	o.paymentStatus = PaymentPending
	o.courierID = &courierID
	o.history = append(o.history, NewHistoryEntry(
		HistoryActionAssigned,
		actorID,
		fmt.Sprintf("assigned to courier %s", courierID),
	))
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shop id", err)
	}
	o.shopID = shopID
	return nil
}

func (o *Order) setDetails(details Details) error {
	if details.CustomerName == "" {
		return ErrCustomerNameIsRequired
	}
	if details.DeliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	if err := details.ReportDate.Validate(); err != nil {
		return err
	}
	if details.ArticleAmount.IsNegative() {
		return errs.NewValueIsInvalidError("article amount")
	}
	if details.DeliveryFee.IsNegative() {
		return errs.NewValueIsInvalidError("delivery fee")
	}
	if details.ExpeditionFee.IsNegative() {
		return errs.NewValueIsInvalidError("expedition fee")
	}

	o.details = details
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
