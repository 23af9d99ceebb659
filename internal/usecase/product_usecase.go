package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to list a product.
type CreateProductInput struct {
	StoreID     uuid.UUID
	CategoryID  uuid.UUID         `json:"categoryId"`
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Price       float64           `json:"price" validate:"gt=0"`
	Images      []string          `json:"images"`
	Attributes  map[string]string `json:"attributes"`
}

// UpdateProductInput carries the mutable product fields. Nil means unchanged.
type UpdateProductInput struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Price       *float64          `json:"price"`
	Images      []string          `json:"images"`
	Attributes  map[string]string `json:"attributes"`
}

// ProductUsecase defines the interface for catalogue management.
type ProductUsecase interface {
	// CreateProduct lists a product under a store; the requester must own it.
	CreateProduct(ctx context.Context, requesterID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// GetProduct returns a product by ID, cache-first.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// UpdateProduct applies the given changes; the requester must own the
	// product's store.
	UpdateProduct(ctx context.Context, productID, requesterID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// ListStoreProducts returns a store's products, cache-first.
	ListStoreProducts(ctx context.Context, storeID uuid.UUID, page, limit int) ([]*entity.Product, error)
}
