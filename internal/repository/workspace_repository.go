package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/blacklabelhq/scheduler-api/internal/models"
	"github.com/google/uuid"
)

type WorkspaceRepository interface {
	GetByID(ctx context.Context, id string) (*models.Workspace, bool, error)
	Create(ctx context.Context, tx *sql.Tx, ws *models.Workspace) (string, error)
	AddMember(ctx context.Context, tx *sql.Tx, member *models.WorkspaceMember) error
	ListByUserID(ctx context.Context, userID string) ([]*models.Workspace, error)
	IsMember(ctx context.Context, workspaceID, userID string) (bool, error)
}

type workspaceRepository struct {
	db *sql.DB
}

func NewWorkspaceRepository(db *sql.DB) WorkspaceRepository {
	return &workspaceRepository{db: db}
}

func (r *workspaceRepository) GetByID(ctx context.Context, id string) (*models.Workspace, bool, error) {
	var ws models.Workspace
	query := "SELECT id, name, created_at FROM workspaces WHERE id = $1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ws.ID, &ws.Name, &ws.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &ws, true, nil
}

func (r *workspaceRepository) Create(ctx context.Context, tx *sql.Tx, ws *models.Workspace) (string, error) {
	query := "INSERT INTO workspaces (id, name) VALUES ($1, $2) RETURNING id"

	var err error
	var id string

	if ws.ID == "" {
		ws.ID = uuid.NewString()
	}

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, ws.ID, ws.Name).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, ws.ID, ws.Name).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *workspaceRepository) AddMember(ctx context.Context, tx *sql.Tx, member *models.WorkspaceMember) error {
	query := "INSERT INTO workspace_members (workspace_id, user_id, role) VALUES ($1, $2, $3)"

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, member.WorkspaceID, member.UserID, member.Role)
	} else {
		_, err = r.db.ExecContext(ctx, query, member.WorkspaceID, member.UserID, member.Role)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// ListByUserID returns the user's workspaces ordered by when they joined;
// the first entry doubles as the default workspace when no workspace id is
// given.
func (r *workspaceRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Workspace, error) {
	query := `
		SELECT w.id, w.name, w.created_at
		FROM workspaces w
		JOIN workspace_members wm ON wm.workspace_id = w.id
		WHERE wm.user_id = $1
		ORDER BY wm.created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var workspaces []*models.Workspace
	for rows.Next() {
		var ws models.Workspace
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		workspaces = append(workspaces, &ws)
	}
	return workspaces, nil
}

func (r *workspaceRepository) IsMember(ctx context.Context, workspaceID, userID string) (bool, error) {
	query := "SELECT 1 FROM workspace_members WHERE workspace_id = $1 AND user_id = $2"

	var result int
	err := r.db.QueryRowContext(ctx, query, workspaceID, userID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}

	return result == 1, nil
}
