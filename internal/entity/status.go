package entity

// ModerationStatus drives the lifecycle of a story description, an image
// slot and the story's publication state. "editing" is only valid for
// descriptions and images; publication status never enters it.
type ModerationStatus string

const (
	StatusPending   ModerationStatus = "pending"
	StatusPublished ModerationStatus = "published"
	StatusRejected  ModerationStatus = "rejected"
	StatusEditing   ModerationStatus = "editing"
)

// TargetStatus returns the status new or re-saved content takes in the
// given draft context: drafts stay owner-editable, everything else is
// queued for moderation.
func TargetStatus(draft bool) ModerationStatus {
	if draft {
		return StatusEditing
	}
	return StatusPending
}

// CanReplaceImage reports whether an image slot occupant may be overwritten.
// Once an image has left the editing state it is locked against ordinary
// updates unless the whole story is still a draft; only the admin cascade
// reopens it.
func CanReplaceImage(current ModerationStatus, draftContext bool) bool {
	return current == StatusEditing || draftContext
}

// CanEditDescription reports whether the owner may overwrite the story
// description.
func CanEditDescription(current ModerationStatus, draft bool) bool {
	return current == StatusEditing || draft
}

// ApplyModeration is the admin-save cascade. On every admin save of a story:
// drafts force the description back to editing; publishing clears the draft
// flag and pushes the description and both attached image slots to published.
// Moving a published story back to pending or rejected does not reopen its
// image slots.
func (s *Story) ApplyModeration() {
	if s.Draft {
		s.DescriptionStatus = StatusEditing
		return
	}

	if s.Status == StatusPublished {
		s.Draft = false
		s.DescriptionStatus = StatusPublished
		if s.BeforeImage != nil {
			s.BeforeImage.Status = StatusPublished
		}
		if s.AfterImage != nil {
			s.AfterImage.Status = StatusPublished
		}
	}
}
