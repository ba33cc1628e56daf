package debtrepo

import (
	"context"
	"errors"
	"time"

	"deliverypay/internal/core/domain/model/finance"
	"deliverypay/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDebtRepository implements DebtRepository using GORM.
type GormDebtRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDebtRepository creates a new GORM debt repository.
func NewGormDebtRepository(db *gorm.DB, tracker aggregateTracker) *GormDebtRepository {
	return &GormDebtRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new debt.
func (r *GormDebtRepository) Add(ctx context.Context, aggregate *finance.Debt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists changes to an existing debt.
func (r *GormDebtRepository) Update(ctx context.Context, aggregate *finance.Debt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DebtDTO{}).
		Where("id = ?", dto.ID).
		Select("Amount", "Status", "SettledAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetDailyBalanceDebt retrieves the derived debt of a shop and day, locking
// the row for the duration of the enclosing transaction. Returns nil without
// error when no such debt exists.
func (r *GormDebtRepository) GetDailyBalanceDebt(
	ctx context.Context,
	shopID kernel.UUID,
	date kernel.ReportDate,
) (*finance.Debt, error) {
	if err := errors.Join(shopID.Validate(), date.Validate()); err != nil {
		return nil, err
	}

	var dto DebtDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "shop_id = ? AND date = ? AND type = ?",
			shopID.Bytes(), date.Time(), finance.DebtTypeDailyBalance.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// SumPendingByShop returns the total amount of the shop's pending debts.
func (r *GormDebtRepository) SumPendingByShop(
	ctx context.Context,
	shopID kernel.UUID,
) (kernel.Money, error) {
	if err := shopID.Validate(); err != nil {
		return kernel.ZeroMoney(), err
	}

	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&DebtDTO{}).
		Where("shop_id = ? AND status = ?", shopID.Bytes(), finance.DebtStatusPending.String()).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return kernel.ZeroMoney(), err
	}

	return kernel.NewMoney(total), nil
}

// SettleAllPending marks every pending debt of the shop as paid at the given
// time. Returns the total amount settled.
func (r *GormDebtRepository) SettleAllPending(
	ctx context.Context,
	shopID kernel.UUID,
	at time.Time,
) (kernel.Money, error) {
	if err := shopID.Validate(); err != nil {
		return kernel.ZeroMoney(), err
	}

	total, err := r.SumPendingByShop(ctx, shopID)
	if err != nil {
		return kernel.ZeroMoney(), err
	}

	err = r.db.WithContext(ctx).Model(&DebtDTO{}).
		Where("shop_id = ? AND status = ?", shopID.Bytes(), finance.DebtStatusPending.String()).
		Updates(map[string]interface{}{
			"status":     finance.DebtStatusPaid.String(),
			"settled_at": at,
		}).Error
	if err != nil {
		return kernel.ZeroMoney(), err
	}

	return total, nil
}
