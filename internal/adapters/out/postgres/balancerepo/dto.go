// Package balancerepo provides data transfer objects and mapping functions
// for the per-shop, per-day ledger balances. The (shop_id, report_date) pair
// is the primary key: one row accumulates everything a shop's orders
// contributed to one accounting day.
package balancerepo

import (
	"time"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceDTO represents the database structure for persisting daily balances.
type BalanceDTO struct {
	ShopID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ReportDate      time.Time       `gorm:"type:date;primaryKey"`
	OrdersSent      int             `gorm:"type:int;not null"`
	OrdersDelivered int             `gorm:"type:int;not null"`
	RevenueArticles decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	DeliveryFees    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PackagingFees   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	ExpeditionFees  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName specifies the database table name for daily balances.
func (BalanceDTO) TableName() string {
	return "daily_balances"
}

// toDomain converts a database DTO to a daily balance domain aggregate.
func toDomain(dto BalanceDTO) (*ledger.DailyBalance, error) {
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	return ledger.RestoreDailyBalance(
		shopID,
		kernel.ReportDateFromTime(dto.ReportDate),
		dto.OrdersSent,
		dto.OrdersDelivered,
		kernel.NewMoney(dto.RevenueArticles),
		kernel.NewMoney(dto.DeliveryFees),
		kernel.NewMoney(dto.PackagingFees),
		kernel.NewMoney(dto.ExpeditionFees),
	)
}
