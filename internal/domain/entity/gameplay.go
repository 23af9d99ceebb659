package entity

import (
	"time"

	"github.com/google/uuid"
)

// GamePlay records a single daily-game round. At most one row exists per
// (user, calendar day); it acts purely as a rate-limit witness and is
// never mutated after creation.
type GamePlay struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Reward   int
	PlayedAt time.Time
}
