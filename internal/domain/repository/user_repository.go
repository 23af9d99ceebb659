// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including the wallet if one exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByReferralCode retrieves the user owning the given referral code.
	FindByReferralCode(ctx context.Context, code string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// IncrementUtilCoins atomically adds delta to the user's UtilCoin
	// balance. The increment happens in a single statement so concurrent
	// reward settlements never lose updates.
	IncrementUtilCoins(ctx context.Context, id uuid.UUID, delta float64) error

	// ListTopByUtilCoins returns the highest UtilCoin balances, descending.
	ListTopByUtilCoins(ctx context.Context, limit int) ([]*entity.User, error)

	// ListReferrals returns every user referred by the given user.
	ListReferrals(ctx context.Context, referrerID uuid.UUID) ([]*entity.User, error)
}
