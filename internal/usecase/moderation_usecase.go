package usecase

import (
	"fmt"

	"timeshot/internal/entity"
	"timeshot/internal/repo/persistent"
	"timeshot/pkg/logger"
)

// ModerationInput carries an administrator's save of a story. Nil fields are
// left untouched.
type ModerationInput struct {
	Status             *entity.ModerationStatus
	DescriptionStatus  *entity.ModerationStatus
	DescriptionComment *string
	Draft              *bool
	AdminViewed        *bool
	BeforeComment      *string
	AfterComment       *string
}

type ModerationUseCase interface {
	ListPending(limit, offset int) ([]*entity.Story, error)
	SaveStory(storyID string, input ModerationInput) (*entity.Story, error)
	ApproveStory(storyID string) (*entity.Story, error)
	RejectStory(storyID, comment string) (*entity.Story, error)
}

type moderationUseCase struct {
	storyRepo persistent.StoryRepository
	logger    *logger.Logger
}

func NewModerationUseCase(storyRepo persistent.StoryRepository, logger *logger.Logger) ModerationUseCase {
	return &moderationUseCase{
		storyRepo: storyRepo,
		logger:    logger,
	}
}

func (uc *moderationUseCase) ListPending(limit, offset int) ([]*entity.Story, error) {
	return uc.storyRepo.ListPending(limit, offset)
}

// SaveStory applies the admin's changes and runs the status cascade: drafts
// force the description back to editing; publishing pushes the description
// and both slots to published.
func (uc *moderationUseCase) SaveStory(storyID string, input ModerationInput) (*entity.Story, error) {
	story, err := uc.storyRepo.GetByID(storyID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		story.Status = *input.Status
	}
	if input.DescriptionStatus != nil {
		story.DescriptionStatus = *input.DescriptionStatus
	}
	if input.DescriptionComment != nil {
		story.DescriptionComment = *input.DescriptionComment
	}
	if input.Draft != nil {
		story.Draft = *input.Draft
	}
	if input.AdminViewed != nil {
		story.AdminViewed = *input.AdminViewed
	}
	if input.BeforeComment != nil && story.BeforeImage != nil {
		story.BeforeImage.Comment = *input.BeforeComment
	}
	if input.AfterComment != nil && story.AfterImage != nil {
		story.AfterImage.Comment = *input.AfterComment
	}

	story.ApplyModeration()

	if story.BeforeImage != nil {
		if err := uc.storyRepo.UpdateImage(story.BeforeImage); err != nil {
			return nil, fmt.Errorf("failed to update before image: %w", err)
		}
	}
	if story.AfterImage != nil {
		if err := uc.storyRepo.UpdateImage(story.AfterImage); err != nil {
			return nil, fmt.Errorf("failed to update after image: %w", err)
		}
	}

	if err := uc.storyRepo.Update(story); err != nil {
		return nil, fmt.Errorf("failed to save story: %w", err)
	}

	uc.logger.Info("Admin saved story %s: status=%s desc_status=%s draft=%v", story.ID, story.Status, story.DescriptionStatus, story.Draft)
	return story, nil
}

func (uc *moderationUseCase) ApproveStory(storyID string) (*entity.Story, error) {
	status := entity.StatusPublished
	return uc.SaveStory(storyID, ModerationInput{Status: &status})
}

func (uc *moderationUseCase) RejectStory(storyID, comment string) (*entity.Story, error) {
	status := entity.StatusRejected
	input := ModerationInput{Status: &status}
	if comment != "" {
		input.DescriptionComment = &comment
	}
	return uc.SaveStory(storyID, input)
}
