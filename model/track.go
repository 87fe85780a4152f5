package model

import "time"

// Track status values. Transitions are not constrained: any status may be
// written through an update.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusReleased   = "released"
	StatusRejected   = "rejected"
)

// ValidStatus reports whether s is one of the known track statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusReleased, StatusRejected:
		return true
	}
	return false
}

// Track represents one distributed piece of music with its performance counters.
type Track struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	ReleaseDate string    `json:"releaseDate"`
	Genre       string    `json:"genre"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	Duration    string    `json:"duration"`
	Streams     int64     `json:"streams"`
	Likes       int64     `json:"likes"`
	Shares      int64     `json:"shares"`
	Earnings    string    `json:"earnings"` // decimal kept as text, e.g. "234.56"
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTrack carries the user-supplied fields for track creation. System
// fields (id, status, counters, createdAt) are filled in by the store.
type NewTrack struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	ReleaseDate string `json:"releaseDate"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

// TrackUpdate is a partial track for shallow merges. Nil fields are left
// untouched. ID and CreatedAt are deliberately absent so they can never be
// overwritten through an update payload.
type TrackUpdate struct {
	Title       *string `json:"title"`
	Artist      *string `json:"artist"`
	ReleaseDate *string `json:"releaseDate"`
	Genre       *string `json:"genre"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
	Duration    *string `json:"duration"`
	Streams     *int64  `json:"streams"`
	Likes       *int64  `json:"likes"`
	Shares      *int64  `json:"shares"`
	Earnings    *string `json:"earnings"`
}

// Apply merges the set fields of u into t.
func (u *TrackUpdate) Apply(t *Track) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Artist != nil {
		t.Artist = *u.Artist
	}
	if u.ReleaseDate != nil {
		t.ReleaseDate = *u.ReleaseDate
	}
	if u.Genre != nil {
		t.Genre = *u.Genre
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Duration != nil {
		t.Duration = *u.Duration
	}
	if u.Streams != nil {
		t.Streams = *u.Streams
	}
	if u.Likes != nil {
		t.Likes = *u.Likes
	}
	if u.Shares != nil {
		t.Shares = *u.Shares
	}
	if u.Earnings != nil {
		t.Earnings = *u.Earnings
	}
}
