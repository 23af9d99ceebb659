package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the state of an order in its lifecycle.
type OrderStatus string

const (
	// OrderStatusPending is the only initial state: the order exists and
	// awaits payment confirmation from the gateway.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusPaid means the payment intent succeeded.
	OrderStatusPaid OrderStatus = "PAID"
	// OrderStatusProcessing means the vendor accepted the paid order.
	OrderStatusProcessing OrderStatus = "PROCESSING"
	// OrderStatusShipped means the order left the store.
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusDelivered is terminal: the order reached the customer.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled is terminal: the order was abandoned before delivery.
	OrderStatusCancelled OrderStatus = "CANCELLED"
	// OrderStatusFailed is terminal: the payment intent failed.
	OrderStatusFailed OrderStatus = "FAILED"
)

// orderTransitions is the closed set of legal edges of the order state
// machine. Anything not listed here is rejected, terminal states have no
// outgoing edges.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusFailed, OrderStatusCancelled},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
	OrderStatusFailed:     {},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// IsTerminal reports whether no further transitions are accepted out of s.
func (s OrderStatus) IsTerminal() bool {
	next, ok := orderTransitions[s]

	return ok && len(next) == 0
}

// CanTransitionTo reports whether the edge s -> next is legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// ShippingAddress is embedded into an order at creation time.
type ShippingAddress struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
}

// Order is the central entity of the marketplace. Total and items are
// written once at creation and never recomputed; the payment intent id is
// the join key for webhook processing and is unique among orders still
// awaiting payment.
type Order struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	StoreID         uuid.UUID
	Total           float64
	Status          OrderStatus
	PaymentIntentID *string // Nil until the gateway call succeeds, immutable afterwards.
	ShippingAddress ShippingAddress
	Items           []*OrderItem
	Customer        *User  // Populated on detail reads; nil otherwise.
	Store           *Store // Populated on detail reads; nil otherwise.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is an immutable snapshot of a product at order time. The
// denormalized unit price prevents later catalogue changes from drifting
// the order total.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     float64 // Unit price at order time.
	Product   *Product
}

// Subtotal returns the line total for this item.
func (i *OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
