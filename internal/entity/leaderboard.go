package entity

import "time"

// LeaderboardEntry marks a story as a winner for a given week. A main entry
// is the top pick for that week.
type LeaderboardEntry struct {
	ID        string    `json:"id"`
	StoryID   string    `json:"story_id"`
	Story     *Story    `json:"story,omitempty"`
	Week      time.Time `json:"week"`
	Main      bool      `json:"main"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
