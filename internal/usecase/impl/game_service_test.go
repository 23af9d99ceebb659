package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// gameServiceFixtures holds all test dependencies for game service tests.
type gameServiceFixtures struct {
	service   usecase.GameUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	orderRepo *mockRepo.MockOrderRepository
	cache     *mockSvc.MockCacheService
	qrcode    *mockSvc.MockQRCodeService
}

func createTestGameService(t *testing.T) gameServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cache := mockSvc.NewMockCacheService(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	service := NewGameService(GameServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		OrderRepo: orderRepo,
		Cache:     cache,
		QRCode:    qrcode,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return gameServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		orderRepo: orderRepo,
		cache:     cache,
		qrcode:    qrcode,
	}
}

func TestGameService_PlayDaily_Success(t *testing.T) {
	fx := createTestGameService(t)

	ctx := context.Background()
	userID := uuid.New()

	var granted int
	txGameRepo := mockRepo.NewMockGamePlayRepository(t)
	txGameRepo.EXPECT().
		FindLatestSince(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrGamePlayNotFound)
	txGameRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.GamePlay")).
		Run(func(ctx context.Context, play *entity.GamePlay) {
			granted = play.Reward
		}).
		Return(nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		IncrementUtilCoins(ctx, userID, mock.AnythingOfType("float64")).
		Return(nil)
	txUserRepo.EXPECT().
		FindByID(ctx, userID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: userID, UtilCoins: float64(granted)}, nil
		})

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewGamePlayRepository().Return(txGameRepo)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
	})

	// Rankings are invalidated after a successful credit.
	fx.cache.EXPECT().DeletePattern(ctx, "leaderboard:*").Return()

	output, err := fx.service.PlayDaily(ctx, userID)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, output.Reward, 1)
	assert.LessOrEqual(t, output.Reward, 20)
	assert.Equal(t, granted, output.Reward)
}

func TestGameService_PlayDaily_SecondPlaySameDay(t *testing.T) {
	fx := createTestGameService(t)

	ctx := context.Background()
	userID := uuid.New()

	txGameRepo := mockRepo.NewMockGamePlayRepository(t)
	txGameRepo.EXPECT().
		FindLatestSince(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(&entity.GamePlay{UserID: userID, PlayedAt: time.Now()}, nil)

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewGamePlayRepository().Return(txGameRepo)
		factory.EXPECT().NewUserRepository().Return(mockRepo.NewMockUserRepository(t))
	})

	_, err := fx.service.PlayDaily(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyPlayedToday))
}

func TestGameService_GetLeaderboard_CacheMiss(t *testing.T) {
	fx := createTestGameService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Name: "Ana", UtilCoins: 300},
		{ID: uuid.New(), Name: "Bruno", UtilCoins: 150},
	}

	fx.cache.EXPECT().Get(ctx, "leaderboard:10", mock.Anything).Return(false)
	fx.userRepo.EXPECT().ListTopByUtilCoins(ctx, 10).Return(users, nil)
	fx.cache.EXPECT().Set(ctx, "leaderboard:10", mock.Anything, service.CacheTTLLeaderboard).Return()

	board, err := fx.service.GetLeaderboard(ctx, 0)

	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "Ana", board[0].Name)
	assert.Equal(t, 2, board[1].Rank)
}

func TestGameService_GetLeaderboard_CacheHit(t *testing.T) {
	fx := createTestGameService(t)

	ctx := context.Background()
	cached := []*usecase.LeaderboardEntry{
		{Rank: 1, UserID: uuid.New(), Name: "Ana", UtilCoins: 300},
	}

	fx.cache.EXPECT().
		Get(ctx, "leaderboard:10", mock.Anything).
		RunAndReturn(func(ctx context.Context, key string, dest interface{}) bool {
			*dest.(*[]*usecase.LeaderboardEntry) = cached

			return true
		})

	board, err := fx.service.GetLeaderboard(ctx, 10)

	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "Ana", board[0].Name)
}

func TestGameService_GetReferralStats(t *testing.T) {
	fx := createTestGameService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, ReferralCode: "ABCD1234"}
	referrals := []*entity.User{
		{ID: uuid.New(), Name: "Carla"},
		{ID: uuid.New(), Name: "Diego"},
	}

	fx.cache.EXPECT().Get(ctx, "referral:stats:"+userID.String(), mock.Anything).Return(false)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().ListReferrals(ctx, userID).Return(referrals, nil)
	fx.cache.EXPECT().Set(ctx, "referral:stats:"+userID.String(), mock.Anything, service.CacheTTLStats).Return()

	stats, err := fx.service.GetReferralStats(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "ABCD1234", stats.ReferralCode)
	assert.Equal(t, "https://bazaar.example.com/join?ref=ABCD1234", stats.ReferralLink)
	assert.Equal(t, 2, stats.ReferredCount)
}

func TestGameService_GetAchievements_CacheMiss(t *testing.T) {
	fx := createTestGameService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, UtilCoins: 150}
	key := "achievements:" + userID.String()

	fx.cache.EXPECT().Get(ctx, key, mock.Anything).Return(false)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.orderRepo.EXPECT().
		CountByCustomerAndStatus(ctx, userID, entity.OrderStatusDelivered).
		Return(int64(2), nil)
	fx.userRepo.EXPECT().ListReferrals(ctx, userID).Return([]*entity.User{{ID: uuid.New()}}, nil)
	fx.cache.EXPECT().Set(ctx, key, mock.Anything, service.CacheTTLStats).Return()

	achievements, err := fx.service.GetAchievements(ctx, userID)

	require.NoError(t, err)
	require.Len(t, achievements, 6)

	byID := make(map[string]bool, len(achievements))
	for _, a := range achievements {
		byID[a.ID] = a.Completed
	}
	assert.True(t, byID["first_purchase"])   // 2 delivered orders
	assert.False(t, byID["five_purchases"])  // fewer than 5
	assert.True(t, byID["first_referral"])   // 1 referral
	assert.False(t, byID["three_referrals"]) // fewer than 3
	assert.True(t, byID["util_coins_100"])   // balance 150
	assert.False(t, byID["util_coins_1000"])
}

func TestGameService_GetAchievements_CacheHit(t *testing.T) {
	fx := createTestGameService(t)

	ctx := context.Background()
	userID := uuid.New()
	cached := []*usecase.Achievement{{ID: "first_purchase", Completed: true}}

	fx.cache.EXPECT().
		Get(ctx, "achievements:"+userID.String(), mock.Anything).
		RunAndReturn(func(ctx context.Context, key string, dest interface{}) bool {
			*dest.(*[]*usecase.Achievement) = cached

			return true
		})

	achievements, err := fx.service.GetAchievements(ctx, userID)

	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.True(t, achievements[0].Completed)
}

func TestGameService_GetReferralQRCode(t *testing.T) {
	fx := createTestGameService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, ReferralCode: "ABCD1234"}
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.qrcode.EXPECT().GeneratePNG("https://bazaar.example.com/join?ref=ABCD1234").Return(png, nil)

	got, err := fx.service.GetReferralQRCode(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}
