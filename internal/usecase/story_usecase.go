package usecase

import (
	"fmt"
	"io"
	"time"

	"timeshot/internal/entity"
	"timeshot/internal/repo/persistent"
	"timeshot/pkg/logger"
)

// AssetStorage is the external collaborator holding image binaries.
// *s3.Client satisfies it.
type AssetStorage interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

// SlotUpload carries one image slot's payload for a create or update call.
// Data may be nil: a year-only update resyncs the existing occupant without
// replacing it.
type SlotUpload struct {
	Data        io.Reader
	Filename    string
	ContentType string
	Year        *int
}

// StoryInput is the transport-independent input for story writes.
type StoryInput struct {
	Description string
	Draft       bool
	Orientation entity.Orientation
	Before      *SlotUpload
	After       *SlotUpload
}

type StoryUseCase interface {
	CreateStory(userID string, input StoryInput) (*entity.Story, error)
	UpdateStory(storyID, userID string, input StoryInput) (*entity.Story, error)
	GetStory(storyID, viewerID, viewerRole string) (*entity.Story, error)
	ListStories(limit, offset int) ([]*entity.Story, error)
	ListUserStories(userID string, limit, offset int) ([]*entity.Story, error)
}

type storyUseCase struct {
	storyRepo persistent.StoryRepository
	assets    AssetStorage
	logger    *logger.Logger
}

func NewStoryUseCase(storyRepo persistent.StoryRepository, assets AssetStorage, logger *logger.Logger) StoryUseCase {
	return &storyUseCase{
		storyRepo: storyRepo,
		assets:    assets,
		logger:    logger,
	}
}

func (uc *storyUseCase) CreateStory(userID string, input StoryInput) (*entity.Story, error) {
	orientation := input.Orientation
	if orientation == "" {
		orientation = entity.OrientationHorizontal
	}

	story := &entity.Story{
		UserID:            userID,
		Description:       input.Description,
		DescriptionStatus: entity.TargetStatus(input.Draft),
		Status:            entity.StatusPending,
		Orientation:       orientation,
		Week:              entity.WeekEnd(time.Now()),
		Draft:             input.Draft,
	}

	if err := uc.storyRepo.Create(story); err != nil {
		return nil, fmt.Errorf("failed to create story: %w", err)
	}

	// Missing slots are fine; a story may start with zero, one or two images.
	if err := uc.assignSlot(story, entity.SlotBefore, input.Before, story.Draft); err != nil {
		return nil, err
	}
	if err := uc.assignSlot(story, entity.SlotAfter, input.After, story.Draft); err != nil {
		return nil, err
	}

	if err := uc.storyRepo.Update(story); err != nil {
		return nil, fmt.Errorf("failed to save story: %w", err)
	}

	return story, nil
}

func (uc *storyUseCase) UpdateStory(storyID, userID string, input StoryInput) (*entity.Story, error) {
	story, err := uc.storyRepo.GetByID(storyID)
	if err != nil {
		return nil, err
	}

	if story.UserID != userID {
		return nil, ErrNotOwner
	}

	if entity.CanEditDescription(story.DescriptionStatus, story.Draft) {
		story.Description = input.Description
	}

	// The draft flag only moves while the story is still a draft; clearing it
	// submits the description for moderation. Already-moderated content is
	// never reset here, that is the admin's job.
	if story.Draft {
		story.Draft = input.Draft
		if !story.Draft && story.DescriptionStatus == entity.StatusEditing {
			story.DescriptionStatus = entity.StatusPending
		}
	}

	if err := uc.assignSlot(story, entity.SlotBefore, input.Before, story.Draft); err != nil {
		return nil, err
	}
	if err := uc.assignSlot(story, entity.SlotAfter, input.After, story.Draft); err != nil {
		return nil, err
	}

	// Unconditional final save so slot rebinds always land.
	if err := uc.storyRepo.Update(story); err != nil {
		return nil, fmt.Errorf("failed to save story: %w", err)
	}

	return story, nil
}

// assignSlot applies one slot's upload to the story, evaluated independently
// per slot. A locked occupant silently swallows the new asset: update calls
// stay non-destructive rather than failing over one unwritable slot.
func (uc *storyUseCase) assignSlot(story *entity.Story, role entity.SlotRole, upload *SlotUpload, draftContext bool) error {
	target := entity.TargetStatus(draftContext)
	current := story.Slot(role)

	if upload == nil || upload.Data == nil {
		if current == nil {
			return nil
		}
		// Keep the existing occupant's status in lock-step with the story's
		// draft transitions even without a new file.
		changed := false
		if current.Status != target {
			current.Status = target
			changed = true
		}
		if upload != nil && upload.Year != nil && current.Year != *upload.Year {
			current.Year = *upload.Year
			changed = true
		}
		if changed {
			if err := uc.storyRepo.UpdateImage(current); err != nil {
				return fmt.Errorf("failed to update %s image: %w", role, err)
			}
		}
		return nil
	}

	if current != nil {
		if !entity.CanReplaceImage(current.Status, draftContext) {
			uc.logger.Info("Ignoring %s image upload for story %s: slot is locked (status=%s)", role, story.ID, current.Status)
			return nil
		}

		// Unbind before deleting so the slot reference never dangles.
		story.SetSlot(role, nil)
		if err := uc.storyRepo.Update(story); err != nil {
			return fmt.Errorf("failed to unbind %s image: %w", role, err)
		}
		if err := uc.storyRepo.DeleteImage(current.ID); err != nil {
			return fmt.Errorf("failed to delete %s image: %w", role, err)
		}
		if err := uc.assets.DeleteFile(current.Key); err != nil {
			uc.logger.Error("Failed to delete asset %s: %v", current.Key, err)
		}
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("stories/%s/%s/%s%s", story.UserID, story.ID, role, getFileExtension(upload.Filename))
	url, err := uc.assets.UploadFile(key, upload.Data, contentType)
	if err != nil {
		return fmt.Errorf("failed to upload %s image: %w", role, err)
	}

	year := 2000
	if upload.Year != nil {
		year = *upload.Year
	}

	image := &entity.Image{
		StoryID: story.ID,
		URL:     url,
		Key:     key,
		Year:    year,
		Status:  target,
	}
	if err := uc.storyRepo.CreateImage(image); err != nil {
		return fmt.Errorf("failed to create %s image: %w", role, err)
	}

	story.SetSlot(role, image)
	return nil
}

// GetStory returns a single story. Stories that are still drafts or not yet
// published are visible only to their owner and to admins.
func (uc *storyUseCase) GetStory(storyID, viewerID, viewerRole string) (*entity.Story, error) {
	story, err := uc.storyRepo.GetByID(storyID)
	if err != nil {
		return nil, ErrStoryNotFound
	}

	public := story.Status == entity.StatusPublished && !story.Draft
	if !public && story.UserID != viewerID && viewerRole != string(entity.RoleAdmin) {
		return nil, ErrStoryNotFound
	}

	return story, nil
}

func (uc *storyUseCase) ListStories(limit, offset int) ([]*entity.Story, error) {
	return uc.storyRepo.ListPublished(limit, offset)
}

func (uc *storyUseCase) ListUserStories(userID string, limit, offset int) ([]*entity.Story, error) {
	return uc.storyRepo.ListByUser(userID, limit, offset)
}

func getFileExtension(filename string) string {
	if len(filename) == 0 {
		return ""
	}
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[i:]
		}
	}
	return ""
}
