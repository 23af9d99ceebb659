package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"bazaar/config"
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
	maxDailyReward     = 20
	defaultBoardLimit  = 10
	maxBoardLimit      = 100
	leaderboardPattern = "leaderboard:*"
)

// gameService implements the GameUsecase interface.
type gameService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	orderRepo       repository.OrderRepository
	cache           service.CacheService
	qrcode          service.QRCodeService
	referralBaseURL string
	logger          *slog.Logger
}

// GameServiceParams holds dependencies for GameService, injected by Fx.
type GameServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	Cache     service.CacheService
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewGameService is the constructor for gameService.
func NewGameService(params GameServiceParams) usecase.GameUsecase {
	referralBaseURL := ""
	if params.Config != nil && params.Config.Referral != nil {
		referralBaseURL = params.Config.Referral.BaseURL
	}

	return &gameService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		orderRepo:       params.OrderRepo,
		cache:           params.Cache,
		qrcode:          params.QRCode,
		referralBaseURL: referralBaseURL,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *gameService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlayDaily performs the once-per-calendar-day play. The duplicate check
// and the credit run in one transaction, so two concurrent plays on the
// same day cannot both pass the check and both commit.
func (srv *gameService) PlayDaily(ctx context.Context, userID uuid.UUID) (*usecase.PlayDailyOutput, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	reward := rand.IntN(maxDailyReward) + 1

	var balance float64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		gamePlayRepo := repoFactory.NewGamePlayRepository()
		userRepo := repoFactory.NewUserRepository()

		_, findErr := gamePlayRepo.FindLatestSince(ctx, userID, startOfDay)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrAlreadyPlayedToday, "daily play already used")
		}
		if !errors.Is(findErr, repository.ErrGamePlayNotFound) {
			return errors.Wrap(findErr, "failed to check today's plays")
		}

		play := &entity.GamePlay{UserID: userID, Reward: reward, PlayedAt: now}
		if createErr := gamePlayRepo.Create(ctx, play); createErr != nil {
			return errors.Wrap(createErr, "failed to record game play")
		}

		if incErr := userRepo.IncrementUtilCoins(ctx, userID, float64(reward)); incErr != nil {
			return errors.Wrap(incErr, "failed to credit daily reward")
		}

		user, loadErr := userRepo.FindByID(ctx, userID)
		if loadErr != nil {
			return errors.Wrap(loadErr, "failed to read balance after daily play")
		}
		balance = user.UtilCoins

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyPlayedToday) {
			srv.log(ctx).Info("Daily play rejected", slog.Any("userID", userID))

			return nil, err
		}
		srv.log(ctx).Error("Failed to execute daily play transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute daily play transaction")
	}

	srv.log(ctx).Info("Daily play completed", slog.Any("userID", userID), slog.Int("reward", reward))

	// Balances changed, so every cached ranking is stale.
	srv.cache.DeletePattern(ctx, leaderboardPattern)

	return &usecase.PlayDailyOutput{Reward: reward, NewBalance: balance}, nil
}

// GetLeaderboard returns the top users by UtilCoin balance, cache-first.
func (srv *gameService) GetLeaderboard(ctx context.Context, limit int) ([]*usecase.LeaderboardEntry, error) {
	if limit < 1 {
		limit = defaultBoardLimit
	}
	if limit > maxBoardLimit {
		limit = maxBoardLimit
	}

	key := fmt.Sprintf("leaderboard:%d", limit)

	var cached []*usecase.LeaderboardEntry
	if srv.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	users, err := srv.userRepo.ListTopByUtilCoins(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top balances")
	}

	entries := make([]*usecase.LeaderboardEntry, 0, len(users))
	for i, user := range users {
		entries = append(entries, &usecase.LeaderboardEntry{
			Rank:      i + 1,
			UserID:    user.ID,
			Name:      user.Name,
			UtilCoins: user.UtilCoins,
		})
	}

	srv.cache.Set(ctx, key, entries, service.CacheTTLLeaderboard)

	return entries, nil
}

// GetReferralStats returns the user's referral code, share link and the
// users referred so far, cache-first.
func (srv *gameService) GetReferralStats(ctx context.Context, userID uuid.UUID) (*usecase.ReferralStatsOutput, error) {
	key := fmt.Sprintf("referral:stats:%s", userID)

	var cached usecase.ReferralStatsOutput
	if srv.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user does not exist")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	referrals, err := srv.userRepo.ListReferrals(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referrals")
	}

	referred := make([]*usecase.ReferredUser, 0, len(referrals))
	for _, ref := range referrals {
		referred = append(referred, &usecase.ReferredUser{
			UserID:   ref.ID,
			Name:     ref.Name,
			JoinedAt: ref.CreatedAt,
		})
	}

	stats := &usecase.ReferralStatsOutput{
		ReferralCode:  user.ReferralCode,
		ReferralLink:  srv.referralLink(user.ReferralCode),
		ReferredCount: len(referred),
		Referred:      referred,
	}

	srv.cache.Set(ctx, key, stats, service.CacheTTLStats)

	return stats, nil
}

// GetReferralQRCode renders the user's referral link as a PNG.
func (srv *gameService) GetReferralQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user does not exist")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	png, err := srv.qrcode.GeneratePNG(srv.referralLink(user.ReferralCode))
	if err != nil {
		srv.log(ctx).Error("Failed to render referral QR code", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render referral QR code")
	}

	return png, nil
}

// GetAchievements derives the user's engagement milestones from delivered
// orders, referrals and the UtilCoin balance, cache-first. Thresholds are
// evaluated on every miss; a stale cache entry only delays a newly earned
// badge by the TTL.
func (srv *gameService) GetAchievements(ctx context.Context, userID uuid.UUID) ([]*usecase.Achievement, error) {
	key := fmt.Sprintf("achievements:%s", userID)

	var cached []*usecase.Achievement
	if srv.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user does not exist")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	delivered, err := srv.orderRepo.CountByCustomerAndStatus(ctx, userID, entity.OrderStatusDelivered)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count delivered orders")
	}

	referrals, err := srv.userRepo.ListReferrals(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referrals")
	}

	achievements := []*usecase.Achievement{
		{ID: "first_purchase", Name: "Primeira Compra", Description: "Faça sua primeira compra", Completed: delivered > 0},
		{ID: "five_purchases", Name: "Comprador Frequente", Description: "Faça 5 compras", Completed: delivered >= 5},
		{ID: "first_referral", Name: "Primeiro Convite", Description: "Convide seu primeiro amigo", Completed: len(referrals) > 0},
		{ID: "three_referrals", Name: "Influenciador", Description: "Convide 3 amigos", Completed: len(referrals) >= 3},
		{ID: "util_coins_100", Name: "Colecionador Iniciante", Description: "Acumule 100 UtilCoins", Completed: user.UtilCoins >= 100},
		{ID: "util_coins_1000", Name: "Colecionador Avançado", Description: "Acumule 1000 UtilCoins", Completed: user.UtilCoins >= 1000},
	}

	srv.cache.Set(ctx, key, achievements, service.CacheTTLStats)

	return achievements, nil
}

func (srv *gameService) referralLink(code string) string {
	return fmt.Sprintf("%s?ref=%s", srv.referralBaseURL, code)
}
