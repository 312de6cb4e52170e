package usecase

import (
	"context"
	"fmt"
	"strconv"

	"timeshot/internal/entity"
	"timeshot/internal/repo/persistent"
	"timeshot/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type VoteUseCase interface {
	Vote(userID, storyID string) (*entity.Vote, bool, error)
	GetVoteCount(storyID string) (int64, error)
}

type voteUseCase struct {
	voteRepo    persistent.VoteRepository
	storyRepo   persistent.StoryRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewVoteUseCase(
	voteRepo persistent.VoteRepository,
	storyRepo persistent.StoryRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) VoteUseCase {
	return &voteUseCase{
		voteRepo:    voteRepo,
		storyRepo:   storyRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Vote records the user's voice for a story. Voting twice is a no-op, voting
// for your own story is rejected. The bool result reports whether a new vote
// was recorded.
func (uc *voteUseCase) Vote(userID, storyID string) (*entity.Vote, bool, error) {
	story, err := uc.storyRepo.GetByID(storyID)
	if err != nil {
		return nil, false, ErrStoryNotFound
	}

	if story.UserID == userID {
		return nil, false, ErrOwnVote
	}

	vote, created, err := uc.voteRepo.GetOrCreate(userID, storyID)
	if err != nil {
		uc.logger.Error("Failed to create vote: %v", err)
		return nil, false, fmt.Errorf("failed to vote: %w", err)
	}

	if created && uc.redisClient != nil {
		ctx := context.Background()
		uc.redisClient.Incr(ctx, fmt.Sprintf("story:votes:%s", storyID))
	}

	return vote, created, nil
}

func (uc *voteUseCase) GetVoteCount(storyID string) (int64, error) {
	if uc.redisClient != nil {
		ctx := context.Background()
		redisKey := fmt.Sprintf("story:votes:%s", storyID)

		countStr, err := uc.redisClient.Get(ctx, redisKey).Result()
		if err == nil {
			count, _ := strconv.ParseInt(countStr, 10, 64)
			return count, nil
		}

		count, err := uc.voteRepo.Count(storyID)
		if err != nil {
			return 0, err
		}

		uc.redisClient.Set(ctx, redisKey, count, 0)
		return count, nil
	}

	return uc.voteRepo.Count(storyID)
}
