package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoryModel struct {
	ID                 string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID             string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Description        string         `gorm:"type:text;not null" json:"description"`
	DescriptionStatus  string         `gorm:"type:varchar(20);default:'pending'" json:"description_status"`
	DescriptionComment string         `gorm:"type:text" json:"description_comment"`
	Status             string         `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Orientation        string         `gorm:"type:varchar(20);default:'horizontal'" json:"orientation"`
	Week               time.Time      `gorm:"type:date;not null;index" json:"week"`
	AdminViewed        bool           `gorm:"default:false" json:"admin_viewed"`
	Draft              bool           `gorm:"default:false" json:"draft"`
	BeforeImageID      *string        `gorm:"type:uuid" json:"before_image_id"`
	AfterImageID       *string        `gorm:"type:uuid" json:"after_image_id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	BeforeImage *ImageModel `gorm:"foreignKey:BeforeImageID;constraint:OnDelete:SET NULL" json:"before_image,omitempty"`
	AfterImage  *ImageModel `gorm:"foreignKey:AfterImageID;constraint:OnDelete:SET NULL" json:"after_image,omitempty"`
	User        *UserModel  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (StoryModel) TableName() string {
	return "stories"
}

func (s *StoryModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type ImageModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	StoryID   string         `gorm:"type:uuid;not null;index" json:"story_id"`
	URL       string         `gorm:"type:varchar(500);not null" json:"url"`
	Key       string         `gorm:"type:varchar(500);not null" json:"-"`
	Year      int            `gorm:"default:2000" json:"year"`
	Status    string         `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Comment   string         `gorm:"type:text" json:"comment"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ImageModel) TableName() string {
	return "images"
}

func (i *ImageModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
