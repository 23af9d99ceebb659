package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a vendor's shop. Each store is owned by exactly one user and a
// user owns at most one store.
type Store struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Description    string
	LogoURL        string
	BannerURL      string
	Active         bool
	PaymentMethods []string
	Owner          *User // Populated on detail reads; nil otherwise.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
