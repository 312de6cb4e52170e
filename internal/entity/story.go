package entity

import "time"

type Orientation string

const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
)

// SlotRole names one of the two fixed image attachment points on a story.
type SlotRole string

const (
	SlotBefore SlotRole = "before"
	SlotAfter  SlotRole = "after"
)

type Story struct {
	ID                 string           `json:"id"`
	UserID             string           `json:"user_id"`
	Description        string           `json:"description"`
	DescriptionStatus  ModerationStatus `json:"description_status"`
	DescriptionComment string           `json:"description_comment,omitempty"`
	Status             ModerationStatus `json:"status"`
	Orientation        Orientation      `json:"orientation"`
	Week               time.Time        `json:"week"`
	AdminViewed        bool             `json:"admin_viewed"`
	Draft              bool             `json:"draft"`
	BeforeImage        *Image           `json:"before_image,omitempty"`
	AfterImage         *Image           `json:"after_image,omitempty"`
	User               *User            `json:"user,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// Slot returns the current occupant of the named slot.
func (s *Story) Slot(role SlotRole) *Image {
	if role == SlotBefore {
		return s.BeforeImage
	}
	return s.AfterImage
}

// SetSlot rebinds the named slot.
func (s *Story) SetSlot(role SlotRole, img *Image) {
	if role == SlotBefore {
		s.BeforeImage = img
		return
	}
	s.AfterImage = img
}

type Image struct {
	ID        string           `json:"id"`
	StoryID   string           `json:"story_id"`
	URL       string           `json:"url"`
	Key       string           `json:"-"`
	Year      int              `json:"year"`
	Status    ModerationStatus `json:"status"`
	Comment   string           `json:"comment,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
