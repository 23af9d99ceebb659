package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
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

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	storeRepo   *mockRepo.MockStoreRepository
	cache       *mockSvc.MockCacheService
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	cache := mockSvc.NewMockCacheService(t)

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		StoreRepo:   storeRepo,
		Cache:       cache,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		cache:       cache,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	storeID := uuid.New()
	ownerID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID, Active: true}, nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)
	fx.cache.EXPECT().DeletePattern(ctx, "products:"+storeID.String()+":*").Return()

	product, err := fx.service.CreateProduct(ctx, ownerID, &usecase.CreateProductInput{
		StoreID: storeID,
		Name:    "Banana Prata",
		Price:   7.90,
	})

	require.NoError(t, err)
	assert.Equal(t, storeID, product.StoreID)
	assert.InDelta(t, 7.90, product.Price, 1e-9)
}

func TestProductService_CreateProduct_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New(), Active: true}, nil)

	_, err := fx.service.CreateProduct(ctx, uuid.New(), &usecase.CreateProductInput{
		StoreID: storeID,
		Name:    "Banana Prata",
		Price:   7.90,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbiddenOwnership))
}

func TestProductService_UpdateProduct_RejectsNonPositivePrice(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	storeID := uuid.New()
	ownerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Banana", Price: 7.90}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID, Active: true}, nil)

	badPrice := 0.0
	_, err := fx.service.UpdateProduct(ctx, product.ID, ownerID, &usecase.UpdateProductInput{Price: &badPrice})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_GetProduct_CacheMiss(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Banana"}

	fx.cache.EXPECT().Get(ctx, "product:"+product.ID.String(), mock.Anything).Return(false)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cache.EXPECT().Set(ctx, "product:"+product.ID.String(), product, service.CacheTTLProduct).Return()

	got, err := fx.service.GetProduct(ctx, product.ID)

	require.NoError(t, err)
	assert.Equal(t, product.Name, got.Name)
}

func TestProductService_ListStoreProducts_CacheMiss(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	storeID := uuid.New()
	products := []*entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}
	key := "products:" + storeID.String() + ":0:20"

	fx.cache.EXPECT().Get(ctx, key, mock.Anything).Return(false)
	fx.productRepo.EXPECT().ListByStore(ctx, storeID, 0, 20).Return(products, 2, nil)
	fx.cache.EXPECT().Set(ctx, key, products, service.CacheTTLList).Return()

	got, err := fx.service.ListStoreProducts(ctx, storeID, 1, 20)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
