package models

import "time"

// WorkspaceSettings carries per-workspace scheduling preferences. Timezone
// decides which calendar day a post falls on; PostingTime ("HH:MM") is used
// when a post is scheduled for a date without a time.
type WorkspaceSettings struct {
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	Timezone    string    `db:"timezone" json:"timezone"`
	PostingTime string    `db:"posting_time" json:"posting_time"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
