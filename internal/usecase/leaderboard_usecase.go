package usecase

import (
	"fmt"
	"time"

	"timeshot/internal/entity"
	"timeshot/internal/repo/persistent"
	"timeshot/pkg/logger"
)

type LeaderboardUseCase interface {
	ListWinners(limit, offset int) ([]*entity.LeaderboardEntry, error)
	CreateEntry(storyID string, week *time.Time, main bool) (*entity.LeaderboardEntry, error)
}

type leaderboardUseCase struct {
	leaderboardRepo persistent.LeaderboardRepository
	storyRepo       persistent.StoryRepository
	logger          *logger.Logger
}

func NewLeaderboardUseCase(
	leaderboardRepo persistent.LeaderboardRepository,
	storyRepo persistent.StoryRepository,
	logger *logger.Logger,
) LeaderboardUseCase {
	return &leaderboardUseCase{
		leaderboardRepo: leaderboardRepo,
		storyRepo:       storyRepo,
		logger:          logger,
	}
}

func (uc *leaderboardUseCase) ListWinners(limit, offset int) ([]*entity.LeaderboardEntry, error) {
	return uc.leaderboardRepo.List(limit, offset)
}

// CreateEntry marks a story as a weekly winner. When week is nil the story's
// own week is used.
func (uc *leaderboardUseCase) CreateEntry(storyID string, week *time.Time, main bool) (*entity.LeaderboardEntry, error) {
	story, err := uc.storyRepo.GetByID(storyID)
	if err != nil {
		return nil, ErrStoryNotFound
	}

	entryWeek := story.Week
	if week != nil {
		entryWeek = entity.WeekEnd(*week)
	}

	entry := &entity.LeaderboardEntry{
		StoryID: story.ID,
		Week:    entryWeek,
		Main:    main,
	}
	if err := uc.leaderboardRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create leaderboard entry: %w", err)
	}

	entry.Story = story
	return entry, nil
}
