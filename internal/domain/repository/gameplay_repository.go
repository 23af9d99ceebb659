package repository

import (
	"context"
	"errors"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGamePlayNotFound is returned when no game play matches the query.
var ErrGamePlayNotFound = errors.New("game play not found")

// GamePlayRepository defines the persistence operations for daily-game
// rate-limit records.
type GamePlayRepository interface {
	// Create persists a new game play record.
	Create(ctx context.Context, play *entity.GamePlay) error

	// FindLatestSince returns the user's most recent play at or after the
	// given instant, or ErrGamePlayNotFound when none exists.
	FindLatestSince(ctx context.Context, userID uuid.UUID, since time.Time) (*entity.GamePlay, error)
}
