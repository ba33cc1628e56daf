package shop

import (
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"
	"deliverypay/internal/pkg/guard"
)

// Domain errors for shop operations.
var (
	// ErrNameIsRequired is returned when attempting to create a shop without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPackagingPriceIsInvalid is returned when the packaging price is negative.
	ErrPackagingPriceIsInvalid = errs.NewValueIsInvalidError("packaging price")
	// ErrShopIsNotConstructed is returned when using an improperly initialized Shop.
	ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop constructor")
)

// Shop represents a merchant whose orders are delivered by the platform.
// It is an aggregate root holding the billing configuration that drives the
// daily ledger: whether packaging is billed to the shop and at what price.
//
// Business rules:
//   - Shop must have a valid UUID and a non-empty name
//   - Packaging price cannot be negative
//   - The packaging fee is charged per processed order only when
//     BillPackaging is enabled
type Shop struct {
	// id uniquely identifies the shop
	id kernel.UUID
	// name is the merchant's display name
	name string
	// phone is the merchant's contact number (optional)
	phone string
	// billPackaging enables per-order packaging billing for this shop
	billPackaging bool
	// packagingPrice is the per-order packaging fee charged when billing is enabled
	packagingPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewShop creates a new Shop aggregate with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: merchant display name (required)
//   - phone: contact number (optional)
//   - billPackaging: whether packaging is billed per processed order
//   - packagingPrice: the packaging fee (must not be negative)
func NewShop(
	id kernel.UUID,
	name string,
	phone string,
	billPackaging bool,
	packagingPrice kernel.Money,
) (*Shop, error) {
	s := &Shop{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setPackagingPrice(packagingPrice),
	); err != nil {
		return nil, err
	}

	s.phone = phone
	s.billPackaging = billPackaging
	return s, nil
}

// RestoreShop reconstructs a Shop aggregate from persistent storage.
// The restored shop behaves identically to one created via NewShop.
func RestoreShop(
	id kernel.UUID,
	name string,
	phone string,
	billPackaging bool,
	packagingPrice kernel.Money,
) (*Shop, error) {
	return NewShop(id, name, phone, billPackaging, packagingPrice)
}

// Validate ensures the Shop instance was properly constructed.
func (s *Shop) Validate() error {
	if s == nil {
		return ErrShopIsNotConstructed
	}
	return s.guard.Validate(ErrShopIsNotConstructed)
}

// IsEqual compares two shops by their unique identifiers.
func (s *Shop) IsEqual(other *Shop) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shop's unique identifier.
func (s *Shop) ID() kernel.UUID {
	return s.id
}

// Name returns the merchant's display name.
func (s *Shop) Name() string {
	return s.name
}

// Phone returns the merchant's contact number.
func (s *Shop) Phone() string {
	return s.phone
}

// BillPackaging reports whether packaging is billed to this shop.
func (s *Shop) BillPackaging() bool {
	return s.billPackaging
}

// PackagingPrice returns the per-order packaging fee.
func (s *Shop) PackagingPrice() kernel.Money {
	return s.packagingPrice
}

func (s *Shop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shop) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Shop) setPackagingPrice(price kernel.Money) error {
	if price.IsNegative() {
		return ErrPackagingPriceIsInvalid
	}
	s.packagingPrice = price
	return nil
}
