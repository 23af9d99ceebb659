package model

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddressColumns is embedded into orders with a 'shipping_' prefix.
type ShippingAddressColumns struct {
	Street       string `gorm:"type:varchar(200)"`
	Number       string `gorm:"type:varchar(20)"`
	Complement   string `gorm:"type:varchar(100)"`
	Neighborhood string `gorm:"type:varchar(100)"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(50)"`
	ZipCode      string `gorm:"type:varchar(20)"`
}

// OrderModel mirrors the 'orders' table. The partial unique index on
// payment_intent_id keeps the webhook join unambiguous.
type OrderModel struct {
	ID              uuid.UUID              `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID      uuid.UUID              `gorm:"type:uuid;index;not null"`
	StoreID         uuid.UUID              `gorm:"type:uuid;index;not null"`
	Total           float64                `gorm:"type:numeric(12,2);not null"`
	Status          string                 `gorm:"type:varchar(20);index;not null"`
	PaymentIntentID *string                `gorm:"type:varchar(255);uniqueIndex"`
	ShippingAddress ShippingAddressColumns `gorm:"embedded;embeddedPrefix:shipping_"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items    []OrderItemModel `gorm:"foreignKey:OrderID"`
	Customer *UserModel       `gorm:"foreignKey:CustomerID"`
	Store    *StoreModel      `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Rows are immutable
// price snapshots; they never receive updates.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	Price     float64   `gorm:"type:numeric(12,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
