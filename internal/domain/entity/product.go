package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product belongs to exactly one store and one category. Its price is the
// live catalogue price; orders snapshot it at creation time and never read
// it again.
type Product struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Description string
	Price       float64
	Images      []string
	Attributes  map[string]string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category groups products across stores.
type Category struct {
	ID   uuid.UUID
	Name string
	Slug string
}
