package transfer

type WorkspaceCreation struct {
	Name string `json:"name" validate:"required,max=100"`
}

type SettingsUpdate struct {
	WorkspaceID string `json:"workspace_id" validate:"required"`
	Timezone    string `json:"timezone" validate:"required"`
	PostingTime string `json:"posting_time" validate:"required"`
}
