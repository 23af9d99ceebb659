package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RewardUsecase settles UtilCoin rewards. Settlement is triggered by
// payment confirmation and never blocks or fails the triggering flow.
type RewardUsecase interface {
	// SettleOrderReward credits the purchase reward to the order's
	// customer and, when the customer was referred, the referral bonus
	// to the referrer. Idempotence is guaranteed by the caller invoking
	// this at most once per order.
	SettleOrderReward(ctx context.Context, orderID uuid.UUID) error

	// GrantGameReward credits a random reward to the user. No throttle.
	GrantGameReward(ctx context.Context, userID uuid.UUID) (*GameRewardOutput, error)
}

// GameRewardOutput reports a credited reward and the resulting balance.
type GameRewardOutput struct {
	Reward     float64 `json:"reward"`
	NewBalance float64 `json:"newBalance"`
}
