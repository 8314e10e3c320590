package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/blacklabelhq/scheduler-api/internal/models"
)

type SettingsRepository interface {
	GetByWorkspaceID(ctx context.Context, workspaceID string) (*models.WorkspaceSettings, bool, error)
	Create(ctx context.Context, settings *models.WorkspaceSettings) error
	Update(ctx context.Context, settings *models.WorkspaceSettings) error
}

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByWorkspaceID(ctx context.Context, workspaceID string) (*models.WorkspaceSettings, bool, error) {
	query := `SELECT workspace_id, timezone, posting_time, updated_at FROM workspace_settings WHERE workspace_id = $1`
	row := r.db.QueryRowContext(ctx, query, workspaceID)

	var settings models.WorkspaceSettings
	err := row.Scan(&settings.WorkspaceID, &settings.Timezone, &settings.PostingTime, &settings.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &settings, true, nil
}

func (r *settingsRepository) Create(ctx context.Context, settings *models.WorkspaceSettings) error {
	query := `
		INSERT INTO workspace_settings (workspace_id, timezone, posting_time)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, settings.WorkspaceID, settings.Timezone, settings.PostingTime)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *models.WorkspaceSettings) error {
	query := `
		UPDATE workspace_settings
		SET timezone = $1,
			posting_time = $2,
			updated_at = $3
		WHERE workspace_id = $4
	`
	_, err := r.db.ExecContext(ctx, query, settings.Timezone, settings.PostingTime, time.Now(), settings.WorkspaceID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
