package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gamePlayRepository implements the repository.GamePlayRepository interface.
type gamePlayRepository struct {
	db *gorm.DB
}

// NewGamePlayRepository is the constructor for gamePlayRepository.
func NewGamePlayRepository(db *gorm.DB) repository.GamePlayRepository {
	return &gamePlayRepository{
		db: db,
	}
}

// Create persists a new game play record.
func (repo *gamePlayRepository) Create(ctx context.Context, play *entity.GamePlay) error {
	playM := fromGamePlayDomain(play)

	if err := repo.db.WithContext(ctx).Create(playM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create game play")
	}

	// Update the entity with generated values
	play.ID = playM.ID

	return nil
}

// FindLatestSince returns the user's most recent play at or after the
// given instant.
func (repo *gamePlayRepository) FindLatestSince(ctx context.Context, userID uuid.UUID, since time.Time) (*entity.GamePlay, error) {
	var playM model.GamePlayModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND played_at >= ?", userID, since).
		Order("played_at DESC").
		First(&playM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGamePlayNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest game play")
	}

	return toGamePlayDomain(&playM), nil
}

// --- Mapper Functions ---

// toGamePlayDomain converts a GORM GamePlayModel to a domain GamePlay entity.
func toGamePlayDomain(data *model.GamePlayModel) *entity.GamePlay {
	if data == nil {
		return nil
	}

	return &entity.GamePlay{
		ID:       data.ID,
		UserID:   data.UserID,
		Reward:   data.Reward,
		PlayedAt: data.PlayedAt,
	}
}

// fromGamePlayDomain converts a domain GamePlay entity to a GORM GamePlayModel.
func fromGamePlayDomain(data *entity.GamePlay) *model.GamePlayModel {
	if data == nil {
		return nil
	}

	return &model.GamePlayModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Reward:   data.Reward,
		PlayedAt: data.PlayedAt,
	}
}
