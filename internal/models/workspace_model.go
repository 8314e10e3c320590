package models

import "time"

// Workspace is the tenant boundary. Every scheduled post belongs to
// exactly one workspace.
type Workspace struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type WorkspaceMember struct {
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Role        string    `db:"role" json:"role"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

const (
	MemberRoleOwner  = "owner"
	MemberRoleEditor = "editor"
)
