package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PlayDailyOutput reports the outcome of a daily play.
type PlayDailyOutput struct {
	Reward     int     `json:"reward"`
	NewBalance float64 `json:"newBalance"`
}

// LeaderboardEntry is one row of the UtilCoin ranking.
type LeaderboardEntry struct {
	Rank      int       `json:"rank"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	UtilCoins float64   `json:"utilCoins"`
}

// ReferralStatsOutput summarizes a user's referral activity.
type ReferralStatsOutput struct {
	ReferralCode  string          `json:"referralCode"`
	ReferralLink  string          `json:"referralLink"`
	ReferredCount int             `json:"referredCount"`
	Referred      []*ReferredUser `json:"referred"`
}

// ReferredUser is one user brought in through a referral code.
type ReferredUser struct {
	UserID   uuid.UUID `json:"userId"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Achievement is one engagement milestone, completed or not.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// GameUsecase covers the engagement features: the daily play, the
// leaderboard and referral sharing.
type GameUsecase interface {
	// PlayDaily performs the once-per-calendar-day play and credits a
	// random reward. A second play on the same day is rejected.
	PlayDaily(ctx context.Context, userID uuid.UUID) (*PlayDailyOutput, error)

	// GetLeaderboard returns the top users by UtilCoin balance.
	GetLeaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error)

	// GetReferralStats returns the user's referral code, share link and
	// the users referred so far.
	GetReferralStats(ctx context.Context, userID uuid.UUID) (*ReferralStatsOutput, error)

	// GetReferralQRCode renders the user's referral link as a PNG.
	GetReferralQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// GetAchievements returns the user's engagement milestones, derived
	// from delivered orders, referrals and the UtilCoin balance.
	GetAchievements(ctx context.Context, userID uuid.UUID) ([]*Achievement, error)
}
