package persistent

import (
	"timeshot/internal/entity"
	"timeshot/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoryRepository interface {
	Create(story *entity.Story) error
	GetByID(id string) (*entity.Story, error)
	ListPublished(limit, offset int) ([]*entity.Story, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Story, error)
	ListPending(limit, offset int) ([]*entity.Story, error)
	Update(story *entity.Story) error
	CreateImage(image *entity.Image) error
	UpdateImage(image *entity.Image) error
	DeleteImage(id string) error
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(story *entity.Story) error {
	storyModel := ToStoryModel(story)
	if storyModel.ID == "" {
		storyModel.ID = uuid.New().String()
	}

	if err := r.db.Omit(clause.Associations).Create(storyModel).Error; err != nil {
		return err
	}

	*story = *ToStoryEntity(storyModel)
	return nil
}

func (r *storyRepository) GetByID(id string) (*entity.Story, error) {
	var storyModel model.StoryModel
	if err := r.db.
		Preload("BeforeImage").
		Preload("AfterImage").
		Preload("User").
		Where("id = ?", id).First(&storyModel).Error; err != nil {
		return nil, err
	}
	return ToStoryEntity(&storyModel), nil
}

func (r *storyRepository) ListPublished(limit, offset int) ([]*entity.Story, error) {
	return r.list(r.db.Where("status = ? AND draft = ?", string(entity.StatusPublished), false), limit, offset)
}

func (r *storyRepository) ListByUser(userID string, limit, offset int) ([]*entity.Story, error) {
	return r.list(r.db.Where("user_id = ?", userID), limit, offset)
}

func (r *storyRepository) ListPending(limit, offset int) ([]*entity.Story, error) {
	return r.list(r.db.Where("status = ? AND draft = ?", string(entity.StatusPending), false), limit, offset)
}

func (r *storyRepository) list(query *gorm.DB, limit, offset int) ([]*entity.Story, error) {
	var storyModels []model.StoryModel
	query = query.
		Preload("BeforeImage").
		Preload("AfterImage").
		Preload("User").
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&storyModels).Error; err != nil {
		return nil, err
	}

	stories := make([]*entity.Story, len(storyModels))
	for i := range storyModels {
		stories[i] = ToStoryEntity(&storyModels[i])
	}
	return stories, nil
}

// Update persists the story row including its slot back-references. Image
// rows are written separately through CreateImage/UpdateImage.
func (r *storyRepository) Update(story *entity.Story) error {
	storyModel := ToStoryModel(story)
	return r.db.Omit(clause.Associations).Save(storyModel).Error
}

func (r *storyRepository) CreateImage(image *entity.Image) error {
	imageModel := ToImageModel(image)
	if imageModel.ID == "" {
		imageModel.ID = uuid.New().String()
	}

	if err := r.db.Create(imageModel).Error; err != nil {
		return err
	}

	*image = *ToImageEntity(imageModel)
	return nil
}

func (r *storyRepository) UpdateImage(image *entity.Image) error {
	return r.db.Save(ToImageModel(image)).Error
}

// DeleteImage removes the record for good; replaced slot occupants are not
// archived.
func (r *storyRepository) DeleteImage(id string) error {
	return r.db.Unscoped().Delete(&model.ImageModel{}, "id = ?", id).Error
}
