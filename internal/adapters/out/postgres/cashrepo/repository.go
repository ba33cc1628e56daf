package cashrepo

import (
	"context"
	"errors"

	"deliverypay/internal/core/domain/model/courier"
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCashRepository implements CashRepository using GORM.
type GormCashRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCashRepository creates a new GORM courier cash repository.
func NewGormCashRepository(db *gorm.DB, tracker aggregateTracker) *GormCashRepository {
	return &GormCashRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddTransaction persists a new cash transaction.
func (r *GormCashRepository) AddTransaction(ctx context.Context, tx *courier.CashTransaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	dto := transactionFromDomain(tx)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(tx.ID(), tx)
	return nil
}

// UpdateTransaction persists changes to an existing cash transaction.
func (r *GormCashRepository) UpdateTransaction(ctx context.Context, tx *courier.CashTransaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	dto := transactionFromDomain(tx)
	result := r.db.WithContext(ctx).Model(&CashTransactionDTO{}).
		Where("id = ?", dto.ID).
		Select("Status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(tx.ID(), tx)
	return nil
}

// GetTransaction retrieves a cash transaction by ID.
func (r *GormCashRepository) GetTransaction(
	ctx context.Context,
	id kernel.UUID,
) (*courier.CashTransaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CashTransactionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cash transaction", id.String())
		}
		return nil, err
	}

	return transactionToDomain(dto)
}

// AddShortfall persists a new shortfall.
func (r *GormCashRepository) AddShortfall(ctx context.Context, shortfall *courier.Shortfall) error {
	if err := shortfall.Validate(); err != nil {
		return err
	}

	dto := shortfallFromDomain(shortfall)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(shortfall.ID(), shortfall)
	return nil
}

// UpdateShortfall persists changes to an existing shortfall.
func (r *GormCashRepository) UpdateShortfall(ctx context.Context, shortfall *courier.Shortfall) error {
	if err := shortfall.Validate(); err != nil {
		return err
	}

	dto := shortfallFromDomain(shortfall)
	result := r.db.WithContext(ctx).Model(&ShortfallDTO{}).
		Where("id = ?", dto.ID).
		Select("Status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(shortfall.ID(), shortfall)
	return nil
}

// GetShortfall retrieves a shortfall by ID.
func (r *GormCashRepository) GetShortfall(ctx context.Context, id kernel.UUID) (*courier.Shortfall, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShortfallDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shortfall", id.String())
		}
		return nil, err
	}

	return shortfallToDomain(dto)
}
