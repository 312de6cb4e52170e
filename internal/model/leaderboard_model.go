package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaderboardEntryModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	StoryID   string         `gorm:"type:uuid;not null;index" json:"story_id"`
	Week      time.Time      `gorm:"type:date;not null;index" json:"week"`
	Main      bool           `gorm:"default:false" json:"main"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Story *StoryModel `gorm:"foreignKey:StoryID;constraint:OnDelete:CASCADE" json:"story,omitempty"`
}

func (LeaderboardEntryModel) TableName() string {
	return "leaderboard_entries"
}

func (l *LeaderboardEntryModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
