package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ErrStaleOrderStatus is returned by UpdateStatus when the conditional
// write matched no row: the order moved away from the expected status
// between the read and the write.
var ErrStaleOrderStatus = errors.New("order status changed concurrently")

// OrderRepository defines the persistence operations for orders and their
// immutable item snapshots.
type OrderRepository interface {
	// Create persists a new order together with all of its items in a
	// single atomic write.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with items (and their products),
	// the owning store and the customer.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByPaymentIntentID retrieves the order joined to the given
	// payment intent. The intent id is unique among orders still awaiting
	// payment, which makes webhook application idempotent.
	FindByPaymentIntentID(ctx context.Context, intentID string) (*entity.Order, error)

	// SetPaymentIntentID attaches the gateway's intent id to the order.
	SetPaymentIntentID(ctx context.Context, id uuid.UUID, intentID string) error

	// UpdateStatus performs an atomic conditional transition: the status
	// column is written only if it still equals expected. Returns
	// ErrStaleOrderStatus when the condition did not hold.
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entity.OrderStatus) error

	// ListByCustomer returns the customer's orders newest-first together
	// with the total row count.
	ListByCustomer(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error)

	// ListByStore returns the store's orders newest-first, optionally
	// filtered by status, together with the total row count.
	ListByStore(ctx context.Context, storeID uuid.UUID, status *entity.OrderStatus, offset, limit int) ([]*entity.Order, int64, error)

	// CountByCustomerAndStatus counts the customer's orders in the given
	// status.
	CountByCustomerAndStatus(ctx context.Context, customerID uuid.UUID, status entity.OrderStatus) (int64, error)
}
