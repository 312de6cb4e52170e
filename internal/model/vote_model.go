package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoteModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	StoryID   string         `gorm:"type:uuid;not null;uniqueIndex:idx_votes_story_user" json:"story_id"`
	UserID    string         `gorm:"type:uuid;not null;uniqueIndex:idx_votes_story_user" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (VoteModel) TableName() string {
	return "votes"
}

func (v *VoteModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
