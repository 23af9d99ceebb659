package impl

import (
	"context"
	"fmt"
	"log/slog"

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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	cache       service.CacheService
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	StoreRepo   repository.StoreRepository
	Cache       service.CacheService
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		storeRepo:   params.StoreRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func productCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id)
}

func storeProductsPattern(storeID uuid.UUID) string {
	return fmt.Sprintf("products:%s:*", storeID)
}

// requireStoreOwner loads the store and verifies the requester owns it.
func (srv *productService) requireStoreOwner(ctx context.Context, storeID, requesterID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store does not exist")
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	if store.OwnerID != requesterID {
		srv.log(ctx).Warn("Catalogue change denied", slog.Any("storeID", storeID), slog.Any("requesterID", requesterID))

		return nil, errors.Wrap(domainerrors.ErrForbiddenOwnership, "store belongs to another vendor")
	}

	return store, nil
}

// CreateProduct lists a product under the requester's store.
func (srv *productService) CreateProduct(ctx context.Context, requesterID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if _, err := srv.requireStoreOwner(ctx, input.StoreID, requesterID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		StoreID:     input.StoreID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Images:      input.Images,
		Attributes:  input.Attributes,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("storeID", input.StoreID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.cache.DeletePattern(ctx, storeProductsPattern(input.StoreID))

	return product, nil
}

// GetProduct returns a product by ID, cache-first.
func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	key := productCacheKey(productID)

	var cached entity.Product
	if srv.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product does not exist")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	srv.cache.Set(ctx, key, product, service.CacheTTLProduct)

	return product, nil
}

// UpdateProduct applies the given changes for the owner of the product's store.
func (srv *productService) UpdateProduct(ctx context.Context, productID, requesterID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product does not exist")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	if _, err := srv.requireStoreOwner(ctx, product.StoreID, requesterID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must be positive")
		}
		product.Price = *input.Price
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Attributes != nil {
		product.Attributes = input.Attributes
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.cache.Delete(ctx, productCacheKey(productID))
	srv.cache.DeletePattern(ctx, storeProductsPattern(product.StoreID))

	return product, nil
}

// ListStoreProducts returns a store's products, cache-first.
func (srv *productService) ListStoreProducts(ctx context.Context, storeID uuid.UUID, page, limit int) ([]*entity.Product, error) {
	offset, limit := normalizePage(page, limit)
	key := fmt.Sprintf("products:%s:%d:%d", storeID, offset, limit)

	var cached []*entity.Product
	if srv.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	products, _, err := srv.productRepo.ListByStore(ctx, storeID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store products")
	}

	srv.cache.Set(ctx, key, products, service.CacheTTLList)

	return products, nil
}
