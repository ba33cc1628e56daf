package balancerepo

import (
	"context"
	"errors"

	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/core/domain/model/ledger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBalanceRepository implements BalanceRepository using GORM.
//
// ApplyDelta must run inside a transaction: it creates the row on first
// touch, locks it with SELECT ... FOR UPDATE and writes the accumulated
// values back, which serializes concurrent mutations of the same shop
// and day until the enclosing transaction commits.
type GormBalanceRepository struct {
	db *gorm.DB
}

// NewGormBalanceRepository creates a new GORM daily balance repository.
func NewGormBalanceRepository(db *gorm.DB) *GormBalanceRepository {
	return &GormBalanceRepository{db: db}
}

// ApplyDelta atomically adds a signed delta to the balance of a shop and day.
// Returns the balance after the delta has been applied.
func (r *GormBalanceRepository) ApplyDelta(
	ctx context.Context,
	shopID kernel.UUID,
	reportDate kernel.ReportDate,
	delta ledger.Delta,
) (*ledger.DailyBalance, error) {
	if err := errors.Join(shopID.Validate(), reportDate.Validate()); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	// Ensure the row exists. DO NOTHING keeps a concurrent first touch from
	// failing; whichever insert loses the race falls through to the locked
	// read below.
	seed := BalanceDTO{
		ShopID:          shopID.Bytes(),
		ReportDate:      reportDate.Time(),
		RevenueArticles: decimal.Zero,
		DeliveryFees:    decimal.Zero,
		PackagingFees:   decimal.Zero,
		ExpeditionFees:  decimal.Zero,
	}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error
	if err != nil {
		return nil, err
	}

	var dto BalanceDTO
	err = db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "shop_id = ? AND report_date = ?", shopID.Bytes(), reportDate.Time()).Error
	if err != nil {
		return nil, err
	}

	balance, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	balance.Apply(delta)

	err = db.Model(&BalanceDTO{}).
		Where("shop_id = ? AND report_date = ?", shopID.Bytes(), reportDate.Time()).
		Updates(map[string]interface{}{
			"orders_sent":      balance.OrdersSent(),
			"orders_delivered": balance.OrdersDelivered(),
			"revenue_articles": balance.RevenueArticles().Decimal(),
			"delivery_fees":    balance.DeliveryFees().Decimal(),
			"packaging_fees":   balance.PackagingFees().Decimal(),
			"expedition_fees":  balance.ExpeditionFees().Decimal(),
		}).Error
	if err != nil {
		return nil, err
	}

	return balance, nil
}

// Get retrieves the balance of a shop and day.
// Returns nil without error when no row exists yet.
func (r *GormBalanceRepository) Get(
	ctx context.Context,
	shopID kernel.UUID,
	reportDate kernel.ReportDate,
) (*ledger.DailyBalance, error) {
	if err := errors.Join(shopID.Validate(), reportDate.Validate()); err != nil {
		return nil, err
	}

	var dto BalanceDTO
	err := r.db.WithContext(ctx).
		First(&dto, "shop_id = ? AND report_date = ?", shopID.Bytes(), reportDate.Time()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllWithPositiveRemittance retrieves every balance whose derived
// remittance amount (revenue minus delivery and packaging fees) is
// strictly positive.
func (r *GormBalanceRepository) GetAllWithPositiveRemittance(
	ctx context.Context,
) ([]*ledger.DailyBalance, error) {
	var dtos []BalanceDTO
	err := r.db.WithContext(ctx).
		Where("revenue_articles - delivery_fees - packaging_fees > 0").
		Order("report_date, shop_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	balances := make([]*ledger.DailyBalance, 0, len(dtos))
	for _, dto := range dtos {
		balance, balanceErr := toDomain(dto)
		if balanceErr != nil {
			return nil, balanceErr
		}
		balances = append(balances, balance)
	}

	return balances, nil
}
