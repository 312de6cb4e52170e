package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetStatus(t *testing.T) {
	assert.Equal(t, StatusEditing, TargetStatus(true))
	assert.Equal(t, StatusPending, TargetStatus(false))
}

func TestCanReplaceImage(t *testing.T) {
	// Editing images may always be replaced
	assert.True(t, CanReplaceImage(StatusEditing, false))
	assert.True(t, CanReplaceImage(StatusEditing, true))

	// Draft context unlocks any slot
	assert.True(t, CanReplaceImage(StatusPending, true))
	assert.True(t, CanReplaceImage(StatusPublished, true))

	// Outside a draft, moderated content is locked
	assert.False(t, CanReplaceImage(StatusPending, false))
	assert.False(t, CanReplaceImage(StatusPublished, false))
	assert.False(t, CanReplaceImage(StatusRejected, false))
}

func TestCanEditDescription(t *testing.T) {
	assert.True(t, CanEditDescription(StatusEditing, false))
	assert.True(t, CanEditDescription(StatusPending, true))
	assert.False(t, CanEditDescription(StatusPending, false))
	assert.False(t, CanEditDescription(StatusPublished, false))
}

func TestApplyModeration_Draft(t *testing.T) {
	story := &Story{
		Draft:             true,
		Status:            StatusPending,
		DescriptionStatus: StatusPending,
	}

	story.ApplyModeration()

	assert.Equal(t, StatusEditing, story.DescriptionStatus)
	assert.Equal(t, StatusPending, story.Status)
}

func TestApplyModeration_PublishCascade(t *testing.T) {
	story := &Story{
		Draft:             false,
		Status:            StatusPublished,
		DescriptionStatus: StatusPending,
		BeforeImage:       &Image{Status: StatusPending},
		AfterImage:        &Image{Status: StatusEditing},
	}

	story.ApplyModeration()

	assert.False(t, story.Draft)
	assert.Equal(t, StatusPublished, story.DescriptionStatus)
	assert.Equal(t, StatusPublished, story.BeforeImage.Status)
	assert.Equal(t, StatusPublished, story.AfterImage.Status)
}

func TestApplyModeration_PublishCascade_MissingSlots(t *testing.T) {
	story := &Story{
		Draft:             false,
		Status:            StatusPublished,
		DescriptionStatus: StatusPending,
	}

	// Stories without images must still cascade cleanly
	story.ApplyModeration()

	assert.Equal(t, StatusPublished, story.DescriptionStatus)
	assert.Nil(t, story.BeforeImage)
	assert.Nil(t, story.AfterImage)
}

func TestApplyModeration_UnpublishDoesNotReopenSlots(t *testing.T) {
	story := &Story{
		Draft:             false,
		Status:            StatusPending,
		DescriptionStatus: StatusPublished,
		BeforeImage:       &Image{Status: StatusPublished},
	}

	story.ApplyModeration()

	// Pulling a story back from published leaves slots locked
	assert.Equal(t, StatusPublished, story.DescriptionStatus)
	assert.Equal(t, StatusPublished, story.BeforeImage.Status)
}

func TestStory_SlotAccess(t *testing.T) {
	before := &Image{ID: "img-1"}
	after := &Image{ID: "img-2"}

	story := &Story{}
	story.SetSlot(SlotBefore, before)
	story.SetSlot(SlotAfter, after)

	assert.Equal(t, before, story.Slot(SlotBefore))
	assert.Equal(t, after, story.Slot(SlotAfter))
}
