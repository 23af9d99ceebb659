package model

import (
	"time"

	"github.com/google/uuid"
)

// GamePlayModel mirrors the 'game_plays' table.
type GamePlayModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID   uuid.UUID `gorm:"type:uuid;index:idx_game_plays_user_played;not null"`
	Reward   int       `gorm:"not null"`
	PlayedAt time.Time `gorm:"index:idx_game_plays_user_played;not null"`
}

// TableName explicitly sets the table name for GORM.
func (GamePlayModel) TableName() string {
	return "game_plays"
}
