// Package remittancerepo provides data transfer objects and mapping
// functions for remittance persistence. A shop has at most one remittance
// row per accounting day, which is what the consolidator's insert-or-refresh
// cycle relies on.
package remittancerepo

import (
	"time"

	"deliverypay/internal/core/domain/model/finance"
	"deliverypay/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RemittanceDTO represents the database structure for persisting remittances.
type RemittanceDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_remittances_shop_date"`
	RemittanceDate    time.Time       `gorm:"type:date;not null;uniqueIndex:idx_remittances_shop_date"`
	GrossAmount       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	DebtsConsolidated decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status            string          `gorm:"type:varchar(32);not null;index"`
	PaidAt            *time.Time
	PaidBy            *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for remittances.
func (RemittanceDTO) TableName() string {
	return "remittances"
}

// fromDomain converts a remittance domain aggregate to its database representation.
func fromDomain(aggregate *finance.Remittance) RemittanceDTO {
	var paidBy *uuid.UUID
	if by := aggregate.PaidBy(); by != nil {
		raw := by.Bytes()
		paidBy = &raw
	}

	return RemittanceDTO{
		ID:                aggregate.ID().Bytes(),
		ShopID:            aggregate.ShopID().Bytes(),
		RemittanceDate:    aggregate.RemittanceDate().Time(),
		GrossAmount:       aggregate.GrossAmount().Decimal(),
		DebtsConsolidated: aggregate.DebtsConsolidated().Decimal(),
		Status:            aggregate.Status().String(),
		PaidAt:            aggregate.PaidAt(),
		PaidBy:            paidBy,
	}
}

// toDomain converts a database DTO to a remittance domain aggregate.
func toDomain(dto RemittanceDTO) (*finance.Remittance, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	status, err := finance.RemittanceStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var paidBy *kernel.UUID
	if dto.PaidBy != nil {
		by, byErr := kernel.UUIDFromBytes((*dto.PaidBy)[:])
		if byErr != nil {
			return nil, byErr
		}
		paidBy = &by
	}

	return finance.RestoreRemittance(
		id,
		shopID,
		kernel.ReportDateFromTime(dto.RemittanceDate),
		kernel.NewMoney(dto.GrossAmount),
		kernel.NewMoney(dto.DebtsConsolidated),
		status,
		dto.PaidAt,
		paidBy,
	)
}
