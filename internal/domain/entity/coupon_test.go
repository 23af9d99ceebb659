package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoupon_IsUsable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	active := &Coupon{Active: true, MaxUses: 10, UsedCount: 3, ExpiresAt: &future}
	assert.True(t, active.IsUsable(now))

	inactive := &Coupon{Active: false}
	assert.False(t, inactive.IsUsable(now))

	exhausted := &Coupon{Active: true, MaxUses: 5, UsedCount: 5}
	assert.False(t, exhausted.IsUsable(now))

	expired := &Coupon{Active: true, ExpiresAt: &past}
	assert.False(t, expired.IsUsable(now))

	unlimited := &Coupon{Active: true, MaxUses: 0, UsedCount: 1000}
	assert.True(t, unlimited.IsUsable(now))
}

func TestCoupon_Apply(t *testing.T) {
	coupon := &Coupon{DiscountPercent: 10}
	assert.InDelta(t, 90.0, coupon.Apply(100.0), 1e-9)

	full := &Coupon{DiscountPercent: 100}
	assert.InDelta(t, 0.0, full.Apply(59.90), 1e-9)
}
