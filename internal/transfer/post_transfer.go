package transfer

// PostCreation is the composer's draft state at submit time. Caption is
// persisted exactly as authored; ScheduledDate/ScheduledTime may be empty
// and are resolved by the schedule policy. ImagePath, if set, must point
// at an object uploaded beforehand.
type PostCreation struct {
	WorkspaceID   string   `json:"workspace_id"`
	Caption       string   `json:"caption"`
	Platforms     []string `json:"platforms"`
	ScheduledDate string   `json:"scheduled_date"`
	ScheduledTime string   `json:"scheduled_time"`
	ImagePath     string   `json:"image_path"`
}

type PostRemoval struct {
	PostID string `json:"post_id" validate:"required"`
}

type PostPreview struct {
	Caption   string   `json:"caption"`
	Platforms []string `json:"platforms"`
}
