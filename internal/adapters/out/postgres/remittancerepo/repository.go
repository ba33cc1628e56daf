package remittancerepo

import (
	"context"
	"errors"

	"deliverypay/internal/core/domain/model/finance"
	"deliverypay/internal/core/domain/model/kernel"
	"deliverypay/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRemittanceRepository implements RemittanceRepository using GORM.
type GormRemittanceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRemittanceRepository creates a new GORM remittance repository.
func NewGormRemittanceRepository(db *gorm.DB, tracker aggregateTracker) *GormRemittanceRepository {
	return &GormRemittanceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new remittance.
func (r *GormRemittanceRepository) Add(ctx context.Context, aggregate *finance.Remittance) error {
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

// Update persists changes to an existing remittance.
func (r *GormRemittanceRepository) Update(ctx context.Context, aggregate *finance.Remittance) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RemittanceDTO{}).
		Where("id = ?", dto.ID).
		Select("GrossAmount", "DebtsConsolidated", "Status", "PaidAt", "PaidBy").
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

// Get retrieves a remittance by ID, locking the row for the duration of the
// enclosing transaction so concurrent payouts serialize.
func (r *GormRemittanceRepository) Get(ctx context.Context, id kernel.UUID) (*finance.Remittance, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RemittanceDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("remittance", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByShopAndDate retrieves the remittance of a shop and day.
// Returns nil without error when none exists.
func (r *GormRemittanceRepository) GetByShopAndDate(
	ctx context.Context,
	shopID kernel.UUID,
	date kernel.ReportDate,
) (*finance.Remittance, error) {
	if err := errors.Join(shopID.Validate(), date.Validate()); err != nil {
		return nil, err
	}

	var dto RemittanceDTO
	err := r.db.WithContext(ctx).
		First(&dto, "shop_id = ? AND remittance_date = ?", shopID.Bytes(), date.Time()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}
