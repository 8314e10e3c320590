package models

import "time"

// Platform is one of the social networks a post can target. The set is
// closed: anything outside it is rejected at submit time.
type Platform string

const (
	PlatformX         Platform = "X"
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformTikTok    Platform = "TikTok"
)

var AllPlatforms = []Platform{
	PlatformX,
	PlatformInstagram,
	PlatformFacebook,
	PlatformLinkedIn,
	PlatformTikTok,
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformX, PlatformInstagram, PlatformFacebook, PlatformLinkedIn, PlatformTikTok:
		return true
	}
	return false
}

type ScheduledPost struct {
	ID           string     `db:"id" json:"id"`
	WorkspaceID  string     `db:"workspace_id" json:"workspace_id"`
	UserID       string     `db:"user_id" json:"user_id"`
	Caption      string     `db:"caption" json:"caption"`
	Platforms    []Platform `db:"platforms" json:"platforms"`
	ScheduledFor time.Time  `db:"scheduled_for" json:"scheduled_for"`
	Status       string     `db:"status" json:"status"` // scheduled, sent, failed
	ImagePath    *string    `db:"image_path" json:"image_path,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

const (
	PostStatusScheduled = "scheduled"
	PostStatusSent      = "sent"
	PostStatusFailed    = "failed"
)
