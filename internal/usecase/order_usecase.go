// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity" validate:"gt=0"`
}

// CreateOrderInput defines the data required to place a new order.
type CreateOrderInput struct {
	CustomerID      uuid.UUID
	StoreID         uuid.UUID
	Items           []OrderItemInput
	ShippingAddress entity.ShippingAddress
	CouponCode      string
}

// --- Output DTOs ---

// CreateOrderOutput returns the persisted order and the gateway's client
// secret the mobile client needs to confirm the payment.
type CreateOrderOutput struct {
	Order        *entity.Order
	ClientSecret string
}

// OrderListOutput is a newest-first page of orders.
type OrderListOutput struct {
	Orders []*entity.Order
	Total  int64
	Pages  int
}

// OrderUsecase defines the interface for the order lifecycle.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type OrderUsecase interface {
	// CreateOrder prices the requested items against the live catalogue,
	// persists the order with immutable snapshots and opens a payment
	// intent with the gateway.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderOutput, error)

	// GetOrder returns the full order detail. Only the order's customer
	// or the owner of its store may read it.
	GetOrder(ctx context.Context, orderID, requesterID uuid.UUID) (*entity.Order, error)

	// ListUserOrders pages through the requesting customer's own orders.
	ListUserOrders(ctx context.Context, userID uuid.UUID, page, limit int) (*OrderListOutput, error)

	// ListStoreOrders pages through a store's orders; the requester must
	// own the store.
	ListStoreOrders(ctx context.Context, storeID, requesterID uuid.UUID, status *entity.OrderStatus, page, limit int) (*OrderListOutput, error)

	// UpdateStatus applies a vendor-driven transition of the order state
	// machine. Illegal edges are rejected with a conflict.
	UpdateStatus(ctx context.Context, orderID, requesterID uuid.UUID, next entity.OrderStatus) (*entity.Order, error)

	// ApplyWebhook applies a verified gateway event to the matching
	// order. Safe under redelivery and out-of-order arrival.
	ApplyWebhook(ctx context.Context, event *service.WebhookEvent) error
}
