// Package cashrepo provides data transfer objects and mapping functions for
// courier cash accountability: remittance and expense transactions plus
// shortfalls. Both tables are append-mostly logs that the courier cash
// summary reads back per day.
package cashrepo

import (
	"time"

	"deliverypay/internal/core/domain/model/courier"
	"deliverypay/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashTransactionDTO represents one courier cash event row.
type CashTransactionDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CourierID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type       string          `gorm:"type:varchar(32);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status     string          `gorm:"type:varchar(32);not null"`
	ReportDate time.Time       `gorm:"type:date;not null;index"`
}

// TableName specifies the database table name for courier cash transactions.
func (CashTransactionDTO) TableName() string {
	return "courier_cash_transactions"
}

// ShortfallDTO represents one courier shortfall row.
type ShortfallDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CourierID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status     string          `gorm:"type:varchar(32);not null;index"`
	ReportDate time.Time       `gorm:"type:date;not null"`
}

// TableName specifies the database table name for courier shortfalls.
func (ShortfallDTO) TableName() string {
	return "courier_shortfalls"
}

// transactionFromDomain converts a cash transaction to its database representation.
func transactionFromDomain(tx *courier.CashTransaction) CashTransactionDTO {
	return CashTransactionDTO{
		ID:         tx.ID().Bytes(),
		CourierID:  tx.CourierID().Bytes(),
		Type:       tx.Type().String(),
		Amount:     tx.Amount().Decimal(),
		Status:     tx.Status().String(),
		ReportDate: tx.ReportDate().Time(),
	}
}

// transactionToDomain converts a database DTO to a cash transaction.
func transactionToDomain(dto CashTransactionDTO) (*courier.CashTransaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	txType, err := courier.CashTransactionTypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := courier.CashTransactionStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCashTransaction(
		id,
		courierID,
		txType,
		kernel.NewMoney(dto.Amount),
		status,
		kernel.ReportDateFromTime(dto.ReportDate),
	)
}

// shortfallFromDomain converts a shortfall to its database representation.
func shortfallFromDomain(s *courier.Shortfall) ShortfallDTO {
	return ShortfallDTO{
		ID:         s.ID().Bytes(),
		CourierID:  s.CourierID().Bytes(),
		Amount:     s.Amount().Decimal(),
		Status:     s.Status().String(),
		ReportDate: s.Date().Time(),
	}
}

// shortfallToDomain converts a database DTO to a shortfall.
func shortfallToDomain(dto ShortfallDTO) (*courier.Shortfall, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	status, err := courier.ShortfallStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return courier.RestoreShortfall(
		id, courierID, kernel.NewMoney(dto.Amount), status, kernel.ReportDateFromTime(dto.ReportDate))
}
