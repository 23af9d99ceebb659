// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. A user may be a customer, a
// vendor (owning at most one store) or a platform admin.
//
// The UtilCoins balance is mutated exclusively by the reward engine, and
// only through atomic increments at the persistence layer.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Credential; must never appear in any response or cache entry.
	Role         Role       `json:"role"`
	UtilCoins    float64    `json:"utilCoins"`    // Off-chain reward balance; authoritative over the on-chain mirror.
	ReferralCode string     `json:"referralCode"` // Unique 8-character shareable code.
	ReferredBy   *uuid.UUID `json:"referredBy"`   // Set once at registration, never mutated afterwards.
	Wallet       *Wallet    `json:"wallet"`       // Optional on-chain wallet; nil when the user never linked one.
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Wallet links a user to an on-chain address used for UtilCoin minting.
type Wallet struct {
	UserID    uuid.UUID `json:"userId"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
