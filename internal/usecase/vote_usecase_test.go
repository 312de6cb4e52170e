package usecase

import (
	"errors"
	"testing"

	"timeshot/internal/entity"
	"timeshot/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVote_NewVote(t *testing.T) {
	voteRepo := new(MockVoteRepository)
	storyRepo := new(MockStoryRepository)
	uc := NewVoteUseCase(voteRepo, storyRepo, nil, logger.New())

	storyRepo.On("GetByID", "story-1").Return(&entity.Story{ID: "story-1", UserID: "author"}, nil)
	voteRepo.On("GetOrCreate", "voter", "story-1").Return(&entity.Vote{ID: "vote-1", UserID: "voter", StoryID: "story-1"}, true, nil)

	vote, created, err := uc.Vote("voter", "story-1")

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "vote-1", vote.ID)
}

func TestVote_Repeated(t *testing.T) {
	voteRepo := new(MockVoteRepository)
	storyRepo := new(MockStoryRepository)
	uc := NewVoteUseCase(voteRepo, storyRepo, nil, logger.New())

	storyRepo.On("GetByID", "story-1").Return(&entity.Story{ID: "story-1", UserID: "author"}, nil)
	voteRepo.On("GetOrCreate", "voter", "story-1").Return(&entity.Vote{ID: "vote-1", UserID: "voter", StoryID: "story-1"}, false, nil)

	vote, created, err := uc.Vote("voter", "story-1")

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "vote-1", vote.ID)
}

func TestVote_OwnStory(t *testing.T) {
	voteRepo := new(MockVoteRepository)
	storyRepo := new(MockStoryRepository)
	uc := NewVoteUseCase(voteRepo, storyRepo, nil, logger.New())

	storyRepo.On("GetByID", "story-1").Return(&entity.Story{ID: "story-1", UserID: "author"}, nil)

	_, _, err := uc.Vote("author", "story-1")

	assert.ErrorIs(t, err, ErrOwnVote)
	voteRepo.AssertNotCalled(t, "GetOrCreate", "author", "story-1")
}

func TestGetVoteCount_NoCache(t *testing.T) {
	voteRepo := new(MockVoteRepository)
	storyRepo := new(MockStoryRepository)
	uc := NewVoteUseCase(voteRepo, storyRepo, nil, logger.New())

	voteRepo.On("Count", "story-1").Return(int64(7), nil)

	count, err := uc.GetVoteCount("story-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestVote_StoryMissing(t *testing.T) {
	voteRepo := new(MockVoteRepository)
	storyRepo := new(MockStoryRepository)
	uc := NewVoteUseCase(voteRepo, storyRepo, nil, logger.New())

	storyRepo.On("GetByID", "missing").Return(nil, errors.New("record not found"))

	_, _, err := uc.Vote("voter", "missing")

	assert.ErrorIs(t, err, ErrStoryNotFound)
	voteRepo.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
}
