// Package shoprepo provides data transfer objects and mapping functions for
// shop persistence.
package shoprepo

import (
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/shop"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopDTO represents the database structure for persisting shop aggregates.
type ShopDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Phone          string          `gorm:"type:varchar(32)"`
	BillPackaging  bool            `gorm:"not null"`
	PackagingPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName specifies the database table name for shop entities.
func (ShopDTO) TableName() string {
	return "shops"
}

// fromDomain converts a shop domain aggregate to its database representation.
func fromDomain(aggregate *shop.Shop) ShopDTO {
	return ShopDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Phone:          aggregate.Phone(),
		BillPackaging:  aggregate.BillPackaging(),
		PackagingPrice: aggregate.PackagingPrice().Decimal(),
	}
}

// toDomain converts a database DTO to a shop domain aggregate.
func toDomain(dto ShopDTO) (*shop.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return shop.RestoreShop(
		id, dto.Name, dto.Phone, dto.BillPackaging, kernel.NewMoney(dto.PackagingPrice))
}
