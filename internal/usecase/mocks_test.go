package usecase

import (
	"io"

	"timeshot/internal/entity"
	"timeshot/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockStoryRepository struct {
	mock.Mock
}

func (m *MockStoryRepository) Create(story *entity.Story) error {
	args := m.Called(story)
	return args.Error(0)
}

func (m *MockStoryRepository) GetByID(id string) (*entity.Story, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Story), args.Error(1)
}

func (m *MockStoryRepository) ListPublished(limit, offset int) ([]*entity.Story, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Story), args.Error(1)
}

func (m *MockStoryRepository) ListByUser(userID string, limit, offset int) ([]*entity.Story, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Story), args.Error(1)
}

func (m *MockStoryRepository) ListPending(limit, offset int) ([]*entity.Story, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Story), args.Error(1)
}

func (m *MockStoryRepository) Update(story *entity.Story) error {
	args := m.Called(story)
	return args.Error(0)
}

func (m *MockStoryRepository) CreateImage(image *entity.Image) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockStoryRepository) UpdateImage(image *entity.Image) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockStoryRepository) DeleteImage(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.StoryRepository = (*MockStoryRepository)(nil)

type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) GetOrCreate(userID, storyID string) (*entity.Vote, bool, error) {
	args := m.Called(userID, storyID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*entity.Vote), args.Bool(1), args.Error(2)
}

func (m *MockVoteRepository) Count(storyID string) (int64, error) {
	args := m.Called(storyID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.VoteRepository = (*MockVoteRepository)(nil)

type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) List(limit, offset int) ([]*entity.LeaderboardEntry, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) Create(entry *entity.LeaderboardEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

var _ persistent.LeaderboardRepository = (*MockLeaderboardRepository)(nil)

type MockAssetStorage struct {
	mock.Mock
}

func (m *MockAssetStorage) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockAssetStorage) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

var _ AssetStorage = (*MockAssetStorage)(nil)

type MockFeedbackQueue struct {
	mock.Mock
}

func (m *MockFeedbackQueue) PublishFeedbackTask(task map[string]interface{}) error {
	args := m.Called(task)
	return args.Error(0)
}

var _ FeedbackQueue = (*MockFeedbackQueue)(nil)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)
