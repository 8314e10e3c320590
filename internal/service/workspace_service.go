package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blacklabelhq/scheduler-api/internal/models"
	"github.com/blacklabelhq/scheduler-api/internal/repository"
)

// DefaultWorkspaceName is used when signup leaves the business name blank.
const DefaultWorkspaceName = "My Workspace"

type WorkspaceService interface {
	Info(ctx context.Context, userID, workspaceID string) (*models.Workspace, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Workspace, error)
	Create(ctx context.Context, userID, name string) (*models.Workspace, error)
}

type workspaceService struct {
	db *sql.DB
	wr repository.WorkspaceRepository
}

func NewWorkspaceService(db *sql.DB, wr repository.WorkspaceRepository) WorkspaceService {
	return &workspaceService{
		db: db,
		wr: wr,
	}
}

func (s *workspaceService) Info(ctx context.Context, userID, workspaceID string) (*models.Workspace, error) {
	isMember, err := s.wr.IsMember(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		err = errors.New("workspace doesn't exist")
		slog.Info(err.Error())
		return nil, err
	}

	ws, isExist, err := s.wr.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		err = errors.New("workspace doesn't exist")
		slog.Info(err.Error())
		return nil, err
	}

	return ws, nil
}

// ListForUser returns the user's workspaces in join order. The first one
// is the default workspace when a request carries no workspace id.
func (s *workspaceService) ListForUser(ctx context.Context, userID string) ([]*models.Workspace, error) {
	workspaces, err := s.wr.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing workspaces")
	}
	return workspaces, nil
}

func (s *workspaceService) Create(ctx context.Context, userID, name string) (*models.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultWorkspaceName
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	ws := &models.Workspace{Name: name}
	if _, err = s.wr.Create(ctx, tx, ws); err != nil {
		return nil, fmt.Errorf("error creating workspace: %w", err)
	}

	member := &models.WorkspaceMember{
		WorkspaceID: ws.ID,
		UserID:      userID,
		Role:        models.MemberRoleOwner,
	}
	if err = s.wr.AddMember(ctx, tx, member); err != nil {
		return nil, fmt.Errorf("error saving workspace membership: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return ws, nil
}
