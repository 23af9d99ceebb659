package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStoreInput defines the data required to open a store.
type CreateStoreInput struct {
	OwnerID        uuid.UUID
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description"`
	LogoURL        string   `json:"logoUrl"`
	BannerURL      string   `json:"bannerUrl"`
	PaymentMethods []string `json:"paymentMethods"`
}

// UpdateStoreInput carries the mutable store fields. Nil means unchanged.
type UpdateStoreInput struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	LogoURL        *string  `json:"logoUrl"`
	BannerURL      *string  `json:"bannerUrl"`
	Active         *bool    `json:"active"`
	PaymentMethods []string `json:"paymentMethods"`
}

// StoreUsecase defines the interface for store management.
type StoreUsecase interface {
	// CreateStore opens a store owned by the requesting vendor.
	CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error)

	// GetStore returns a store by ID, cache-first.
	GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error)

	// UpdateStore applies the given changes; the requester must own the store.
	UpdateStore(ctx context.Context, storeID, requesterID uuid.UUID, input *UpdateStoreInput) (*entity.Store, error)

	// ListStores pages through active stores, cache-first.
	ListStores(ctx context.Context, page, limit int) ([]*entity.Store, error)
}
