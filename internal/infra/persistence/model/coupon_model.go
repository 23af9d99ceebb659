package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table. Codes are unique per store.
type CouponModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID         uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_coupons_store_code;not null"`
	Code            string     `gorm:"type:varchar(50);uniqueIndex:idx_coupons_store_code;not null"`
	DiscountPercent float64    `gorm:"type:numeric(5,2);not null"`
	UsedCount       int        `gorm:"not null;default:0"`
	MaxUses         int        `gorm:"not null;default:0"`
	ExpiresAt       *time.Time
	Active          bool `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
