// Package debtrepo provides data transfer objects and mapping functions for
// shop debt persistence. Derived daily-balance debts keep their report date;
// manual debts carry none. Settled debts stay on file with their settlement
// timestamp instead of being deleted.
package debtrepo

import (
	"time"

	"deliverypay/internal/core/domain/model/finance"
	"deliverypay/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtDTO represents the database structure for persisting debts.
type DebtDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date      *time.Time      `gorm:"type:date;index"`
	Type      string          `gorm:"type:varchar(32);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status    string          `gorm:"type:varchar(32);not null;index"`
	SettledAt *time.Time
}

// TableName specifies the database table name for debts.
func (DebtDTO) TableName() string {
	return "debts"
}

// fromDomain converts a debt domain aggregate to its database representation.
func fromDomain(aggregate *finance.Debt) DebtDTO {
	var date *time.Time
	if d := aggregate.Date(); d != nil {
		day := d.Time()
		date = &day
	}

	return DebtDTO{
		ID:        aggregate.ID().Bytes(),
		ShopID:    aggregate.ShopID().Bytes(),
		Date:      date,
		Type:      aggregate.Type().String(),
		Amount:    aggregate.Amount().Decimal(),
		Status:    aggregate.Status().String(),
		SettledAt: aggregate.SettledAt(),
	}
}

// toDomain converts a database DTO to a debt domain aggregate.
func toDomain(dto DebtDTO) (*finance.Debt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	debtType, err := finance.DebtTypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := finance.DebtStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var date *kernel.ReportDate
	if dto.Date != nil {
		day := kernel.ReportDateFromTime(*dto.Date)
		date = &day
	}

	return finance.RestoreDebt(
		id, shopID, date, debtType, kernel.NewMoney(dto.Amount), status, dto.SettledAt)
}
