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

const storeListPattern = "stores:*"

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo repository.StoreRepository
	cache     service.CacheService
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Cache     service.CacheService
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo: params.StoreRepo,
		cache:     params.Cache,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func storeCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("store:%s", id)
}

// CreateStore opens a store for the requesting vendor. One store per
// vendor.
func (srv *storeService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	srv.log(ctx).Info("Creating store", slog.Any("ownerID", input.OwnerID), slog.String("name", input.Name))

	_, err := srv.storeRepo.FindByOwnerID(ctx, input.OwnerID)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrStoreAlreadyExists, "vendor already owns a store")
	}
	if !errors.Is(err, repository.ErrStoreNotFound) {
		return nil, errors.Wrap(err, "failed to check existing store")
	}

	store := &entity.Store{
		OwnerID:        input.OwnerID,
		Name:           input.Name,
		Description:    input.Description,
		LogoURL:        input.LogoURL,
		BannerURL:      input.BannerURL,
		Active:         true,
		PaymentMethods: input.PaymentMethods,
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		srv.log(ctx).Error("Failed to create store", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.cache.DeletePattern(ctx, storeListPattern)

	return store, nil
}

// GetStore returns a store by ID, cache-first.
func (srv *storeService) GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	key := storeCacheKey(storeID)

	var cached entity.Store
	if srv.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store does not exist")
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	srv.cache.Set(ctx, key, store, service.CacheTTLStore)

	return store, nil
}

// UpdateStore applies the given changes for the store's owner.
func (srv *storeService) UpdateStore(ctx context.Context, storeID, requesterID uuid.UUID, input *usecase.UpdateStoreInput) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store does not exist")
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	if store.OwnerID != requesterID {
		srv.log(ctx).Warn("Store update denied", slog.Any("storeID", storeID), slog.Any("requesterID", requesterID))

		return nil, errors.Wrap(domainerrors.ErrForbiddenOwnership, "store belongs to another vendor")
	}

	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.LogoURL != nil {
		store.LogoURL = *input.LogoURL
	}
	if input.BannerURL != nil {
		store.BannerURL = *input.BannerURL
	}
	if input.Active != nil {
		store.Active = *input.Active
	}
	if input.PaymentMethods != nil {
		store.PaymentMethods = input.PaymentMethods
	}

	if err := srv.storeRepo.Update(ctx, store); err != nil {
		srv.log(ctx).Error("Failed to update store", slog.Any("storeID", storeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update store")
	}

	srv.cache.Delete(ctx, storeCacheKey(storeID))
	srv.cache.DeletePattern(ctx, storeListPattern)

	return store, nil
}

// ListStores pages through stores, cache-first.
func (srv *storeService) ListStores(ctx context.Context, page, limit int) ([]*entity.Store, error) {
	offset, limit := normalizePage(page, limit)
	key := fmt.Sprintf("stores:%d:%d", offset, limit)

	var cached []*entity.Store
	if srv.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	stores, _, err := srv.storeRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	srv.cache.Set(ctx, key, stores, service.CacheTTLList)

	return stores, nil
}
