package order

import (
	"errors"
	"fmt"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item of an order. Items are value-like children of the
// Order aggregate: on edit the whole item list is replaced, never patched.
type Item struct {
	id       kernel.UUID
	name     string
	quantity int
	amount   kernel.Money

	isConstructed bool
}

// NewItem creates a validated line item.
//
// Business rules:
//   - name is required
//   - quantity must be positive
//   - amount cannot be negative
func NewItem(id kernel.UUID, name string, quantity int, amount kernel.Money) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if amount.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("item amount")
	}

	return Item{
		id:            id,
		name:          name,
		quantity:      quantity,
		amount:        amount,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item instance was properly constructed.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Amount returns the line amount.
func (i Item) Amount() kernel.Money {
	return i.amount
}
