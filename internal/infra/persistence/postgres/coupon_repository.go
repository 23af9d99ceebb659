package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindByStoreAndCode retrieves the store's coupon with the given code.
func (repo *couponRepository) FindByStoreAndCode(ctx context.Context, storeID uuid.UUID, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ? AND code = ?", storeID, code).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}

	return toCouponDomain(&couponM), nil
}

// IncrementUsage atomically bumps the coupon's usage counter.
func (repo *couponRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment coupon usage")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// DecrementUsage releases one consumed use without ever going negative.
func (repo *couponRepository) DecrementUsage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", id).
		UpdateColumn("used_count", gorm.Expr("GREATEST(used_count - 1, 0)"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement coupon usage")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:              data.ID,
		StoreID:         data.StoreID,
		Code:            data.Code,
		DiscountPercent: data.DiscountPercent,
		UsedCount:       data.UsedCount,
		MaxUses:         data.MaxUses,
		ExpiresAt:       data.ExpiresAt,
		Active:          data.Active,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
