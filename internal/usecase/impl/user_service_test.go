package impl

import (
	"context"
	"regexp"
	"testing"

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

var referralCodePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	cache        *mockSvc.MockCacheService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	cache := mockSvc.NewMockCacheService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Cache:        cache,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		cache:        cache,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
		Role:     "CUSTOMER",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		FindByReferralCode(ctx, mock.AnythingOfType("string")).
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
	})

	fx.tokenService.EXPECT().
		GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), entity.RoleCustomer).
		Return("access_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Regexp(t, referralCodePattern, output.User.ReferralCode)
	assert.Nil(t, output.User.ReferredBy)
}

func TestUserService_Register_WithReferralCode(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	referrer := &entity.User{ID: uuid.New(), ReferralCode: "FRIEND01"}
	input := &usecase.RegisterInput{
		Name:         "Referred User",
		Email:        "referred@example.com",
		Password:     "Password123!",
		Role:         "CUSTOMER",
		ReferralCode: "FRIEND01",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		FindByReferralCode(ctx, "FRIEND01").
		Return(referrer, nil)
	txUserRepo.EXPECT().
		FindByReferralCode(ctx, mock.MatchedBy(func(code string) bool {
			return code != "FRIEND01"
		})).
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
	})

	fx.tokenService.EXPECT().
		GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), entity.RoleCustomer).
		Return("access_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.User.ReferredBy)
	assert.Equal(t, referrer.ID, *output.User.ReferredBy)
}

func TestUserService_Register_UnknownReferralCode(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:         "Test User",
		Email:        "test@example.com",
		Password:     "Password123!",
		Role:         "CUSTOMER",
		ReferralCode: "NOPE9999",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		FindByReferralCode(ctx, "NOPE9999").
		Return(nil, repository.ErrUserNotFound)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
	})

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReferralCode))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
		Role:     "VENDOR",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
	})

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_AdminRoleRejected(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Sneaky",
		Email:    "admin@example.com",
		Password: "Password123!",
		Role:     "ADMIN",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleCustomer,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID, user.Role).Return("access_token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetProfile_CacheMiss(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Cached Later"}

	fx.cache.EXPECT().Get(ctx, "user:"+user.ID.String(), mock.Anything).Return(false)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.cache.EXPECT().Set(ctx, "user:"+user.ID.String(), user, service.CacheTTLUser).Return()

	got, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.Name, got.Name)
}

func TestUserService_GetProfile_CacheHit(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cache.EXPECT().
		Get(ctx, "user:"+userID.String(), mock.Anything).
		RunAndReturn(func(ctx context.Context, key string, dest interface{}) bool {
			*dest.(*entity.User) = entity.User{ID: userID, Name: "From Cache"}

			return true
		})

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "From Cache", got.Name)
}
