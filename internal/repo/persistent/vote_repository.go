package persistent

import (
	"timeshot/internal/entity"
	"timeshot/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoteRepository interface {
	GetOrCreate(userID, storyID string) (*entity.Vote, bool, error)
	Count(storyID string) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// GetOrCreate returns the existing vote for (user, story) or creates one.
// The bool result reports whether a new record was created.
func (r *voteRepository) GetOrCreate(userID, storyID string) (*entity.Vote, bool, error) {
	var existing model.VoteModel
	err := r.db.Where("user_id = ? AND story_id = ?", userID, storyID).First(&existing).Error
	if err == nil {
		return ToVoteEntity(&existing), false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	voteModel := &model.VoteModel{
		ID:      uuid.New().String(),
		UserID:  userID,
		StoryID: storyID,
	}
	if err := r.db.Create(voteModel).Error; err != nil {
		return nil, false, err
	}
	return ToVoteEntity(voteModel), true, nil
}

func (r *voteRepository) Count(storyID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.VoteModel{}).Where("story_id = ?", storyID).Count(&count).Error
	return count, err
}
