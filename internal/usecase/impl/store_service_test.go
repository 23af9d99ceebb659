package impl

import (
	"context"
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

// storeServiceFixtures holds all test dependencies for store service tests.
type storeServiceFixtures struct {
	service   usecase.StoreUsecase
	storeRepo *mockRepo.MockStoreRepository
	cache     *mockSvc.MockCacheService
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	cache := mockSvc.NewMockCacheService(t)

	service := NewStoreService(StoreServiceParams{
		StoreRepo: storeRepo,
		Cache:     cache,
		Logger:    newDiscardLogger(),
	})

	return storeServiceFixtures{
		service:   service,
		storeRepo: storeRepo,
		cache:     cache,
	}
}

func TestStoreService_CreateStore_Success(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.storeRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(nil, repository.ErrStoreNotFound)
	fx.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(ctx context.Context, store *entity.Store) {
			store.ID = uuid.New()
		}).
		Return(nil)
	fx.cache.EXPECT().DeletePattern(ctx, "stores:*").Return()

	store, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		OwnerID: ownerID,
		Name:    "Feira do Bairro",
	})

	require.NoError(t, err)
	assert.True(t, store.Active)
	assert.Equal(t, ownerID, store.OwnerID)
}

func TestStoreService_CreateStore_SecondStoreRejected(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByOwnerID(ctx, ownerID).
		Return(&entity.Store{ID: uuid.New(), OwnerID: ownerID}, nil)

	_, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{OwnerID: ownerID, Name: "Segunda"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreAlreadyExists))
}

func TestStoreService_UpdateStore_NotOwner(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	_, err := fx.service.UpdateStore(ctx, storeID, uuid.New(), &usecase.UpdateStoreInput{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbiddenOwnership))
}

func TestStoreService_UpdateStore_MergesOnlyGivenFields(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	storeID := uuid.New()
	ownerID := uuid.New()
	existing := &entity.Store{
		ID:          storeID,
		OwnerID:     ownerID,
		Name:        "Old Name",
		Description: "Old description",
		Active:      true,
	}

	fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(existing, nil)
	fx.storeRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Store")).Return(nil)
	fx.cache.EXPECT().Delete(ctx, "store:"+storeID.String()).Return()
	fx.cache.EXPECT().DeletePattern(ctx, "stores:*").Return()

	newName := "New Name"
	store, err := fx.service.UpdateStore(ctx, storeID, ownerID, &usecase.UpdateStoreInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "New Name", store.Name)
	assert.Equal(t, "Old description", store.Description)
	assert.True(t, store.Active)
}

func TestStoreService_GetStore_CacheMiss(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	store := &entity.Store{ID: uuid.New(), Name: "Feira"}

	fx.cache.EXPECT().Get(ctx, "store:"+store.ID.String(), mock.Anything).Return(false)
	fx.storeRepo.EXPECT().FindByID(ctx, store.ID).Return(store, nil)
	fx.cache.EXPECT().Set(ctx, "store:"+store.ID.String(), store, service.CacheTTLStore).Return()

	got, err := fx.service.GetStore(ctx, store.ID)

	require.NoError(t, err)
	assert.Equal(t, store.Name, got.Name)
}

func TestStoreService_ListStores_CacheMiss(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	stores := []*entity.Store{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.cache.EXPECT().Get(ctx, "stores:0:20", mock.Anything).Return(false)
	fx.storeRepo.EXPECT().List(ctx, 0, 20).Return(stores, 2, nil)
	fx.cache.EXPECT().Set(ctx, "stores:0:20", stores, service.CacheTTLList).Return()

	got, err := fx.service.ListStores(ctx, 1, 20)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
