package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// rewardServiceFixtures holds all test dependencies for reward service tests.
type rewardServiceFixtures struct {
	service   usecase.RewardUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	orderRepo *mockRepo.MockOrderRepository
	ledger    *mockSvc.MockRewardLedger
}

func createTestRewardService(t *testing.T) rewardServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	ledger := mockSvc.NewMockRewardLedger(t)

	service := NewRewardService(RewardServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		OrderRepo: orderRepo,
		Ledger:    ledger,
		Logger:    newDiscardLogger(),
	})

	return rewardServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		orderRepo: orderRepo,
		ledger:    ledger,
	}
}

func TestRewardService_SettleOrderReward_WithReferrer(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	orderID := uuid.New()
	referrerID := uuid.New()
	customer := &entity.User{ID: uuid.New(), ReferredBy: &referrerID}
	referrer := &entity.User{ID: referrerID}
	order := &entity.Order{ID: orderID, CustomerID: customer.ID, Total: 1000.00, Status: entity.OrderStatusPaid}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.userRepo.EXPECT().FindByID(ctx, referrerID).Return(referrer, nil)

	var customerDelta, referrerDelta float64
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		IncrementUtilCoins(ctx, customer.ID, mock.AnythingOfType("float64")).
		Run(func(ctx context.Context, id uuid.UUID, delta float64) {
			customerDelta = delta
		}).
		Return(nil)
	txUserRepo.EXPECT().
		IncrementUtilCoins(ctx, referrerID, mock.AnythingOfType("float64")).
		Run(func(ctx context.Context, id uuid.UUID, delta float64) {
			referrerDelta = delta
		}).
		Return(nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
	})

	err := fx.service.SettleOrderReward(ctx, orderID)

	require.NoError(t, err)
	assert.InDelta(t, 10.00, customerDelta, 1e-9)
	assert.InDelta(t, 15.00, referrerDelta, 1e-9)
}

func TestRewardService_SettleOrderReward_NoReferrer(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	orderID := uuid.New()
	customer := &entity.User{ID: uuid.New()}
	order := &entity.Order{ID: orderID, CustomerID: customer.ID, Total: 250.00, Status: entity.OrderStatusPaid}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	var customerDelta float64
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		IncrementUtilCoins(ctx, customer.ID, mock.AnythingOfType("float64")).
		Run(func(ctx context.Context, id uuid.UUID, delta float64) {
			customerDelta = delta
		}).
		Return(nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
	})

	err := fx.service.SettleOrderReward(ctx, orderID)

	require.NoError(t, err)
	assert.InDelta(t, 2.50, customerDelta, 1e-9)
}

func TestRewardService_SettleOrderReward_MintFailureIsSwallowed(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	orderID := uuid.New()
	customer := &entity.User{
		ID:     uuid.New(),
		Wallet: &entity.Wallet{Address: "0x00000000000000000000000000000000000000aa"},
	}
	order := &entity.Order{ID: orderID, CustomerID: customer.ID, Total: 100.00, Status: entity.OrderStatusPaid}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		IncrementUtilCoins(ctx, customer.ID, mock.AnythingOfType("float64")).
		Return(nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
	})

	fx.ledger.EXPECT().
		Mint(ctx, customer.Wallet.Address, mock.AnythingOfType("float64")).
		Return("", errors.New("rpc unreachable"))

	// The chain is a best-effort mirror; settlement must still succeed.
	err := fx.service.SettleOrderReward(ctx, orderID)

	require.NoError(t, err)
}

func TestRewardService_GrantGameReward_ReloadFailureSkipsMint(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	userID := uuid.New()

	var granted float64
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		IncrementUtilCoins(ctx, userID, mock.AnythingOfType("float64")).
		Run(func(ctx context.Context, id uuid.UUID, delta float64) {
			granted = delta
		}).
		Return(nil)
	txUserRepo.EXPECT().
		FindByID(ctx, userID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: userID, UtilCoins: granted}, nil
		})
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
	})

	// The committed credit stands even when the wallet reload fails; the
	// ledger mock verifies no mint is attempted without a wallet address.
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("connection reset"))

	output, err := fx.service.GrantGameReward(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, granted, output.Reward)
}

func TestRewardService_GrantGameReward_RewardWithinRange(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	userID := uuid.New()

	var granted float64
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		IncrementUtilCoins(ctx, userID, mock.AnythingOfType("float64")).
		Run(func(ctx context.Context, id uuid.UUID, delta float64) {
			granted = delta
		}).
		Return(nil)
	txUserRepo.EXPECT().
		FindByID(ctx, userID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: userID, UtilCoins: 40 + granted}, nil
		})
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
	})

	// No wallet, so no mint attempt.
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	output, err := fx.service.GrantGameReward(ctx, userID)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, output.Reward, 1.0)
	assert.LessOrEqual(t, output.Reward, 100.0)
	assert.InDelta(t, 40+output.Reward, output.NewBalance, 1e-9)
}
