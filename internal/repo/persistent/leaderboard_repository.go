package persistent

import (
	"timeshot/internal/entity"
	"timeshot/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	List(limit, offset int) ([]*entity.LeaderboardEntry, error)
	Create(entry *entity.LeaderboardEntry) error
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// List returns winners with the main winner of the most recent week first.
func (r *leaderboardRepository) List(limit, offset int) ([]*entity.LeaderboardEntry, error) {
	var entryModels []model.LeaderboardEntryModel
	query := r.db.
		Preload("Story").
		Preload("Story.BeforeImage").
		Preload("Story.AfterImage").
		Preload("Story.User").
		Order("main DESC").
		Order("week DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*entity.LeaderboardEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = ToLeaderboardEntity(&entryModels[i])
	}
	return entries, nil
}

func (r *leaderboardRepository) Create(entry *entity.LeaderboardEntry) error {
	entryModel := ToLeaderboardModel(entry)
	if entryModel.ID == "" {
		entryModel.ID = uuid.New().String()
	}

	if err := r.db.Create(entryModel).Error; err != nil {
		return err
	}

	*entry = *ToLeaderboardEntity(entryModel)
	return nil
}
