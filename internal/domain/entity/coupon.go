package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is a store-scoped discount validated at checkout time. It lives
// outside the order state machine.
type Coupon struct {
	ID              uuid.UUID
	StoreID         uuid.UUID
	Code            string
	DiscountPercent float64
	UsedCount       int
	MaxUses         int
	ExpiresAt       *time.Time
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsUsable reports whether the coupon can still be applied at the given
// moment: active, below its usage ceiling and not expired.
func (c *Coupon) IsUsable(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.MaxUses > 0 && c.UsedCount >= c.MaxUses {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}

	return true
}

// Apply returns the total after applying the percentage discount.
func (c *Coupon) Apply(total float64) float64 {
	return total * (1 - c.DiscountPercent/100)
}
