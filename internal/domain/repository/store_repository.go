package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when a store does not exist.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the persistence operations for vendor stores.
type StoreRepository interface {
	// FindByID retrieves a single store by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindByOwnerID retrieves the store owned by the given user, if any.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)

	// Create persists a new store.
	Create(ctx context.Context, store *entity.Store) error

	// Update modifies an existing store.
	Update(ctx context.Context, store *entity.Store) error

	// List returns active stores newest-first with the total row count.
	List(ctx context.Context, offset, limit int) ([]*entity.Store, int64, error)
}
