package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCouponNotFound is returned when no coupon matches the query.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponRepository defines the persistence operations for store coupons.
type CouponRepository interface {
	// FindByStoreAndCode retrieves the store's coupon with the given code.
	FindByStoreAndCode(ctx context.Context, storeID uuid.UUID, code string) (*entity.Coupon, error)

	// IncrementUsage atomically bumps the coupon's usage counter.
	IncrementUsage(ctx context.Context, id uuid.UUID) error

	// DecrementUsage atomically releases one consumed use, e.g. when the
	// checkout that consumed it could not be completed. The counter never
	// goes below zero.
	DecrementUsage(ctx context.Context, id uuid.UUID) error
}
