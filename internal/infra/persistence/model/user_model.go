// Package model contains the GORM models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(20);not null"`
	UtilCoins    float64    `gorm:"type:numeric(18,6);not null;default:0"`
	ReferralCode string     `gorm:"type:varchar(8);unique;not null"`
	ReferredBy   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Wallet *WalletModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// WalletModel mirrors the 'wallets' table. UserID references users.id (UUID).
type WalletModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Address   string    `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WalletModel) TableName() string {
	return "wallets"
}
