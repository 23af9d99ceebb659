package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput defines the data needed for a new user registration.
type RegisterInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role" validate:"required,oneof=CUSTOMER VENDOR"`
	ReferralCode string `json:"referralCode"`
}

// LoginInput defines the credentials for a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput returns the authenticated user and the issued access token.
type AuthOutput struct {
	User        *entity.User
	AccessToken string
}

// UserUsecase defines the interface for user account operations.
type UserUsecase interface {
	// Register creates a new account, assigns a unique referral code and
	// records the referrer when a valid referral code is presented.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetProfile returns the user's profile, cache-first.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
