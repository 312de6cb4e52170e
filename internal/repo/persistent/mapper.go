package persistent

import (
	"timeshot/internal/entity"
	"timeshot/internal/model"
)

func ToStoryEntity(m *model.StoryModel) *entity.Story {
	if m == nil {
		return nil
	}

	story := &entity.Story{
		ID:                 m.ID,
		UserID:             m.UserID,
		Description:        m.Description,
		DescriptionStatus:  entity.ModerationStatus(m.DescriptionStatus),
		DescriptionComment: m.DescriptionComment,
		Status:             entity.ModerationStatus(m.Status),
		Orientation:        entity.Orientation(m.Orientation),
		Week:               m.Week,
		AdminViewed:        m.AdminViewed,
		Draft:              m.Draft,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}

	if m.BeforeImage != nil {
		story.BeforeImage = ToImageEntity(m.BeforeImage)
	}
	if m.AfterImage != nil {
		story.AfterImage = ToImageEntity(m.AfterImage)
	}
	if m.User != nil {
		story.User = ToUserEntity(m.User)
	}

	return story
}

func ToStoryModel(e *entity.Story) *model.StoryModel {
	if e == nil {
		return nil
	}

	story := &model.StoryModel{
		ID:                 e.ID,
		UserID:             e.UserID,
		Description:        e.Description,
		DescriptionStatus:  string(e.DescriptionStatus),
		DescriptionComment: e.DescriptionComment,
		Status:             string(e.Status),
		Orientation:        string(e.Orientation),
		Week:               e.Week,
		AdminViewed:        e.AdminViewed,
		Draft:              e.Draft,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}

	if e.BeforeImage != nil {
		id := e.BeforeImage.ID
		story.BeforeImageID = &id
	}
	if e.AfterImage != nil {
		id := e.AfterImage.ID
		story.AfterImageID = &id
	}

	return story
}

func ToImageEntity(m *model.ImageModel) *entity.Image {
	if m == nil {
		return nil
	}

	return &entity.Image{
		ID:        m.ID,
		StoryID:   m.StoryID,
		URL:       m.URL,
		Key:       m.Key,
		Year:      m.Year,
		Status:    entity.ModerationStatus(m.Status),
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToImageModel(e *entity.Image) *model.ImageModel {
	if e == nil {
		return nil
	}

	return &model.ImageModel{
		ID:        e.ID,
		StoryID:   e.StoryID,
		URL:       e.URL,
		Key:       e.Key,
		Year:      e.Year,
		Status:    string(e.Status),
		Comment:   e.Comment,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToVoteEntity(m *model.VoteModel) *entity.Vote {
	if m == nil {
		return nil
	}

	return &entity.Vote{
		ID:        m.ID,
		StoryID:   m.StoryID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToLeaderboardEntity(m *model.LeaderboardEntryModel) *entity.LeaderboardEntry {
	if m == nil {
		return nil
	}

	entry := &entity.LeaderboardEntry{
		ID:        m.ID,
		StoryID:   m.StoryID,
		Week:      m.Week,
		Main:      m.Main,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.Story != nil {
		entry.Story = ToStoryEntity(m.Story)
	}

	return entry
}

func ToLeaderboardModel(e *entity.LeaderboardEntry) *model.LeaderboardEntryModel {
	if e == nil {
		return nil
	}

	return &model.LeaderboardEntryModel{
		ID:        e.ID,
		StoryID:   e.StoryID,
		Week:      e.Week,
		Main:      e.Main,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		FirstName: m.FirstName,
		Surname:   m.Surname,
		Phone:     m.Phone,
		BirthDate: m.BirthDate,
		City:      m.City,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Username:  e.Username,
		Password:  e.Password,
		Role:      string(e.Role),
		FirstName: e.FirstName,
		Surname:   e.Surname,
		Phone:     e.Phone,
		BirthDate: e.BirthDate,
		City:      e.City,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
