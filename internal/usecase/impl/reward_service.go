package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Reward rates as a fraction of the paid order total.
	customerRewardRate = 0.01
	referrerRewardRate = 0.015

	maxGameReward = 100
)

// rewardService implements the RewardUsecase interface.
type rewardService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	ledger    service.RewardLedger
	logger    *slog.Logger
}

// RewardServiceParams holds dependencies for RewardService, injected by Fx.
type RewardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	Ledger    service.RewardLedger
	Logger    *slog.Logger
}

// NewRewardService is the constructor for rewardService.
func NewRewardService(params RewardServiceParams) usecase.RewardUsecase {
	return &rewardService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		orderRepo: params.OrderRepo,
		ledger:    params.Ledger,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *rewardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SettleOrderReward credits the purchase reward to the order's customer
// and the referral bonus to the customer's referrer, if any. Both
// database credits commit in one transaction; on-chain minting happens
// afterwards and is strictly best-effort.
func (srv *rewardService) SettleOrderReward(ctx context.Context, orderID uuid.UUID) error {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order to settle does not exist")
		}

		return errors.Wrap(err, "failed to load order for settlement")
	}

	customer, err := srv.userRepo.FindByID(ctx, order.CustomerID)
	if err != nil {
		return errors.Wrap(err, "failed to load customer for settlement")
	}

	var referrer *entity.User
	if customer.ReferredBy != nil {
		referrer, err = srv.userRepo.FindByID(ctx, *customer.ReferredBy)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to load referrer for settlement")
		}
	}

	customerReward := order.Total * customerRewardRate
	referrerReward := order.Total * referrerRewardRate

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := userRepo.IncrementUtilCoins(ctx, customer.ID, customerReward); err != nil {
			return errors.Wrap(err, "failed to credit customer reward")
		}

		if referrer != nil {
			if err := userRepo.IncrementUtilCoins(ctx, referrer.ID, referrerReward); err != nil {
				return errors.Wrap(err, "failed to credit referrer reward")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute reward settlement transaction", slog.Any("orderID", orderID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute reward settlement transaction")
	}

	srv.log(ctx).Info("Order reward settled",
		slog.Any("orderID", orderID),
		slog.Float64("customerReward", customerReward),
		slog.Bool("referrerCredited", referrer != nil))

	srv.mintBestEffort(ctx, customer, customerReward)
	if referrer != nil {
		srv.mintBestEffort(ctx, referrer, referrerReward)
	}

	return nil
}

// GrantGameReward credits a random reward with no throttle.
func (srv *rewardService) GrantGameReward(ctx context.Context, userID uuid.UUID) (*usecase.GameRewardOutput, error) {
	reward := float64(rand.IntN(maxGameReward) + 1)

	var balance float64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := userRepo.IncrementUtilCoins(ctx, userID, reward); err != nil {
			return errors.Wrap(err, "failed to credit game reward")
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to read balance after game reward")
		}
		balance = user.UtilCoins

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user does not exist")
		}
		srv.log(ctx).Error("Failed to execute game reward transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute game reward transaction")
	}

	srv.log(ctx).Info("Game reward granted", slog.Any("userID", userID), slog.Float64("reward", reward))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Skipping mint, failed to reload user", slog.Any("userID", userID), slog.Any("error", err))
	} else {
		srv.mintBestEffort(ctx, user, reward)
	}

	return &usecase.GameRewardOutput{Reward: reward, NewBalance: balance}, nil
}

// mintBestEffort mirrors a credited reward onto the chain. Ledger
// failures are logged and swallowed: the database balance is the source
// of truth and the mint can be replayed by a reconciliation job.
func (srv *rewardService) mintBestEffort(ctx context.Context, user *entity.User, amount float64) {
	if user.Wallet == nil {
		srv.log(ctx).Debug("Skipping mint, user has no wallet", slog.Any("userID", user.ID))

		return
	}

	txHash, err := srv.ledger.Mint(ctx, user.Wallet.Address, amount)
	if err != nil {
		srv.log(ctx).Warn("Best-effort mint failed",
			slog.Any("userID", user.ID),
			slog.Float64("amount", amount),
			slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("Minted reward on chain", slog.Any("userID", user.ID), slog.String("txHash", txHash))
}
