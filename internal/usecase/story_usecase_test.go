package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"timeshot/internal/entity"
	"timeshot/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func intPtr(i int) *int { return &i }

func TestCreateStory_Draft(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("Create", mock.AnythingOfType("*entity.Story")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Story).ID = "story-1"
	}).Return(nil)
	storyRepo.On("Update", mock.AnythingOfType("*entity.Story")).Return(nil)

	story, err := uc.CreateStory("user-1", StoryInput{Description: "old mill", Draft: true})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusEditing, story.DescriptionStatus)
	assert.Equal(t, entity.StatusPending, story.Status)
	assert.True(t, story.Draft)
	assert.Equal(t, time.Sunday, story.Week.Weekday())
	storyRepo.AssertExpectations(t)
}

func TestCreateStory_NotDraft(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("Create", mock.AnythingOfType("*entity.Story")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Story).ID = "story-1"
	}).Return(nil)
	storyRepo.On("Update", mock.AnythingOfType("*entity.Story")).Return(nil)

	story, err := uc.CreateStory("user-1", StoryInput{Description: "old mill"})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPending, story.DescriptionStatus)
	assert.False(t, story.Draft)
}

func TestCreateStory_WithImages(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("Create", mock.AnythingOfType("*entity.Story")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Story).ID = "story-1"
	}).Return(nil)
	storyRepo.On("CreateImage", mock.AnythingOfType("*entity.Image")).Run(func(args mock.Arguments) {
		img := args.Get(0).(*entity.Image)
		if img.ID == "" {
			img.ID = "img-" + img.Key
		}
	}).Return(nil)
	storyRepo.On("Update", mock.AnythingOfType("*entity.Story")).Return(nil)

	assets.On("UploadFile", "stories/user-1/story-1/before.jpg", mock.Anything, "image/jpeg").Return("https://cdn/stories/user-1/story-1/before.jpg", nil)
	assets.On("UploadFile", "stories/user-1/story-1/after.png", mock.Anything, "image/png").Return("https://cdn/stories/user-1/story-1/after.png", nil)

	story, err := uc.CreateStory("user-1", StoryInput{
		Description: "old mill",
		Before: &SlotUpload{
			Data:        strings.NewReader("before-bytes"),
			Filename:    "house_1990.jpg",
			ContentType: "image/jpeg",
			Year:        intPtr(1990),
		},
		After: &SlotUpload{
			Data:        strings.NewReader("after-bytes"),
			Filename:    "house_2020.png",
			ContentType: "image/png",
			Year:        intPtr(2020),
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, story.BeforeImage)
	assert.NotNil(t, story.AfterImage)
	assert.Equal(t, 1990, story.BeforeImage.Year)
	assert.Equal(t, 2020, story.AfterImage.Year)
	assert.Equal(t, entity.StatusPending, story.BeforeImage.Status)
	assets.AssertExpectations(t)
	storyRepo.AssertExpectations(t)
}

func TestCreateStory_MissingImagesAllowed(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("Create", mock.AnythingOfType("*entity.Story")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Story).ID = "story-1"
	}).Return(nil)
	storyRepo.On("Update", mock.AnythingOfType("*entity.Story")).Return(nil)

	story, err := uc.CreateStory("user-1", StoryInput{Description: "no photos yet"})

	assert.NoError(t, err)
	assert.Nil(t, story.BeforeImage)
	assert.Nil(t, story.AfterImage)
	assets.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStory_NotOwner(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("GetByID", "story-1").Return(&entity.Story{ID: "story-1", UserID: "someone-else"}, nil)

	_, err := uc.UpdateStory("story-1", "user-1", StoryInput{Description: "hacked"})

	assert.ErrorIs(t, err, ErrNotOwner)
	storyRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateStory_LockedSlotIgnoresUpload(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	existing := &entity.Image{
		ID:     "img-1",
		URL:    "https://cdn/old.jpg",
		Key:    "stories/user-1/story-1/before.jpg",
		Status: entity.StatusPending,
	}
	storyRepo.On("GetByID", "story-1").Return(&entity.Story{
		ID:                "story-1",
		UserID:            "user-1",
		Description:       "original",
		DescriptionStatus: entity.StatusPending,
		BeforeImage:       existing,
	}, nil)
	storyRepo.On("Update", mock.AnythingOfType("*entity.Story")).Return(nil)

	story, err := uc.UpdateStory("story-1", "user-1", StoryInput{
		Description: "changed",
		Before: &SlotUpload{
			Data:     strings.NewReader("new-bytes"),
			Filename: "new.jpg",
		},
	})

	// The upload is silently ignored: no error, existing asset untouched
	assert.NoError(t, err)
	assert.Equal(t, existing, story.BeforeImage)
	assert.Equal(t, "https://cdn/old.jpg", story.BeforeImage.URL)
	// Description is also locked while pending
	assert.Equal(t, "original", story.Description)
	assets.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
	assets.AssertNotCalled(t, "DeleteFile", mock.Anything)
	storyRepo.AssertNotCalled(t, "DeleteImage", mock.Anything)
}

func TestUpdateStory_EditingSlotReplaced(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	existing := &entity.Image{
		ID:     "img-old",
		URL:    "https://cdn/old.jpg",
		Key:    "stories/user-1/story-1/before.jpg",
		Status: entity.StatusEditing,
	}
	storyRepo.On("GetByID", "story-1").Return(&entity.Story{
		ID:                "story-1",
		UserID:            "user-1",
		Description:       "original",
		DescriptionStatus: entity.StatusEditing,
		BeforeImage:       existing,
	}, nil)
	storyRepo.On("Update", mock.AnythingOfType("*entity.Story")).Return(nil)
	storyRepo.On("DeleteImage", "img-old").Return(nil)
	storyRepo.On("CreateImage", mock.AnythingOfType("*entity.Image")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Image).ID = "img-new"
	}).Return(nil)

	assets.On("DeleteFile", "stories/user-1/story-1/before.jpg").Return(nil)
	assets.On("UploadFile", "stories/user-1/story-1/before.jpg", mock.Anything, "image/jpeg").Return("https://cdn/new.jpg", nil)

	story, err := uc.UpdateStory("story-1", "user-1", StoryInput{
		Description: "changed",
		Before: &SlotUpload{
			Data:     strings.NewReader("new-bytes"),
			Filename: "new.jpg",
			Year:     intPtr(1985),
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "img-new", story.BeforeImage.ID)
	assert.Equal(t, "https://cdn/new.jpg", story.BeforeImage.URL)
	assert.Equal(t, 1985, story.BeforeImage.Year)
	// Not a draft anymore, so the replacement goes straight to moderation
	assert.Equal(t, entity.StatusPending, story.BeforeImage.Status)
	assert.Equal(t, "changed", story.Description)
	storyRepo.AssertExpectations(t)
	assets.AssertExpectations(t)
}

func TestUpdateStory_ClearDraftSubmitsForModeration(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("GetByID", "story-1").Return(&entity.Story{
		ID:                "story-1",
		UserID:            "user-1",
		Description:       "draft text",
		DescriptionStatus: entity.StatusEditing,
		Draft:             true,
		BeforeImage: &entity.Image{
			ID:     "img-1",
			Status: entity.StatusEditing,
		},
	}, nil)
	storyRepo.On("Update", mock.AnythingOfType("*entity.Story")).Return(nil)
	storyRepo.On("UpdateImage", mock.AnythingOfType("*entity.Image")).Return(nil)

	story, err := uc.UpdateStory("story-1", "user-1", StoryInput{
		Description: "final text",
		Draft:       false,
	})

	assert.NoError(t, err)
	assert.False(t, story.Draft)
	assert.Equal(t, "final text", story.Description)
	assert.Equal(t, entity.StatusPending, story.DescriptionStatus)
	// The existing slot follows the story out of the draft state
	assert.Equal(t, entity.StatusPending, story.BeforeImage.Status)
	storyRepo.AssertExpectations(t)
}

func TestUpdateStory_YearOnlyUpdate(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("GetByID", "story-1").Return(&entity.Story{
		ID:                "story-1",
		UserID:            "user-1",
		Description:       "text",
		DescriptionStatus: entity.StatusEditing,
		Draft:             true,
		AfterImage: &entity.Image{
			ID:     "img-1",
			Year:   2000,
			Status: entity.StatusEditing,
		},
	}, nil)
	storyRepo.On("Update", mock.AnythingOfType("*entity.Story")).Return(nil)
	storyRepo.On("UpdateImage", mock.AnythingOfType("*entity.Image")).Return(nil)

	story, err := uc.UpdateStory("story-1", "user-1", StoryInput{
		Description: "text",
		Draft:       true,
		After:       &SlotUpload{Year: intPtr(2015)},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2015, story.AfterImage.Year)
	assert.Equal(t, "img-1", story.AfterImage.ID)
	assets.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStory_EmptySlotGetsNewImage(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("GetByID", "story-1").Return(&entity.Story{
		ID:                "story-1",
		UserID:            "user-1",
		Description:       "text",
		DescriptionStatus: entity.StatusEditing,
		Draft:             true,
	}, nil)
	storyRepo.On("Update", mock.AnythingOfType("*entity.Story")).Return(nil)
	storyRepo.On("CreateImage", mock.AnythingOfType("*entity.Image")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Image).ID = "img-new"
	}).Return(nil)

	assets.On("UploadFile", "stories/user-1/story-1/after.jpg", mock.Anything, "image/jpeg").Return("https://cdn/after.jpg", nil)

	story, err := uc.UpdateStory("story-1", "user-1", StoryInput{
		Description: "text",
		Draft:       true,
		After: &SlotUpload{
			Data:     strings.NewReader("bytes"),
			Filename: "after.jpg",
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, story.AfterImage)
	assert.Equal(t, entity.StatusEditing, story.AfterImage.Status)
	// Year defaults when the client omits it
	assert.Equal(t, 2000, story.AfterImage.Year)
	storyRepo.AssertExpectations(t)
}

func TestGetStory_PublishedVisibleToAnonymous(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("GetByID", "story-1").Return(&entity.Story{
		ID:     "story-1",
		UserID: "user-1",
		Status: entity.StatusPublished,
	}, nil)

	story, err := uc.GetStory("story-1", "", "")

	assert.NoError(t, err)
	assert.Equal(t, "story-1", story.ID)
}

func TestGetStory_PendingHiddenFromAnonymous(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("GetByID", "secret-1").Return(&entity.Story{
		ID:     "secret-1",
		UserID: "user-1",
		Status: entity.StatusPending,
		Draft:  true,
	}, nil)

	_, err := uc.GetStory("secret-1", "", "")

	assert.ErrorIs(t, err, ErrStoryNotFound)
}

func TestGetStory_PublishedDraftHiddenFromOthers(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("GetByID", "story-1").Return(&entity.Story{
		ID:     "story-1",
		UserID: "user-1",
		Status: entity.StatusPublished,
		Draft:  true,
	}, nil)

	_, err := uc.GetStory("story-1", "user-2", "user")

	assert.ErrorIs(t, err, ErrStoryNotFound)
}

func TestGetStory_OwnerSeesUnpublished(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("GetByID", "story-1").Return(&entity.Story{
		ID:     "story-1",
		UserID: "user-1",
		Status: entity.StatusRejected,
	}, nil)

	story, err := uc.GetStory("story-1", "user-1", "user")

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, story.Status)
}

func TestGetStory_AdminSeesUnpublished(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("GetByID", "story-1").Return(&entity.Story{
		ID:     "story-1",
		UserID: "user-1",
		Status: entity.StatusPending,
	}, nil)

	story, err := uc.GetStory("story-1", "admin-1", "admin")

	assert.NoError(t, err)
	assert.Equal(t, "story-1", story.ID)
}

func TestGetStory_Missing(t *testing.T) {
	storyRepo := new(MockStoryRepository)
	assets := new(MockAssetStorage)
	uc := NewStoryUseCase(storyRepo, assets, logger.New())

	storyRepo.On("GetByID", "missing").Return(nil, errors.New("record not found"))

	_, err := uc.GetStory("missing", "", "")

	assert.ErrorIs(t, err, ErrStoryNotFound)
}
