package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/blacklabelhq/scheduler-api/internal/composer"
	"github.com/blacklabelhq/scheduler-api/internal/models"
	"github.com/blacklabelhq/scheduler-api/internal/repository"
	"github.com/blacklabelhq/scheduler-api/internal/transfer"
)

type SettingsService interface {
	GetSettingsInfo(ctx context.Context, userID, workspaceID string) (*models.WorkspaceSettings, error)
	UpdateSettings(ctx context.Context, userID string, su *transfer.SettingsUpdate) error
	Clock(ctx context.Context, workspaceID string) (*time.Location, string)
}

type settingsService struct {
	sr  repository.SettingsRepository
	wr  repository.WorkspaceRepository
	loc *time.Location
}

// NewSettingsService takes the service-level timezone used for workspaces
// that have not picked their own.
func NewSettingsService(sr repository.SettingsRepository, wr repository.WorkspaceRepository, loc *time.Location) SettingsService {
	return &settingsService{
		sr:  sr,
		wr:  wr,
		loc: loc,
	}
}

func (s *settingsService) GetSettingsInfo(ctx context.Context, userID, workspaceID string) (*models.WorkspaceSettings, error) {
	isMember, err := s.wr.IsMember(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		slog.Info(composer.ErrNoActiveWorkspace.Error())
		return nil, composer.ErrNoActiveWorkspace
	}

	settings, isExist, err := s.sr.GetByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if !isExist {
		// Unset workspaces run on the service defaults.
		return &models.WorkspaceSettings{
			WorkspaceID: workspaceID,
			Timezone:    s.loc.String(),
			PostingTime: composer.DefaultPostingTime,
		}, nil
	}

	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID string, su *transfer.SettingsUpdate) error {
	isMember, err := s.wr.IsMember(ctx, su.WorkspaceID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		slog.Info(composer.ErrNoActiveWorkspace.Error())
		return composer.ErrNoActiveWorkspace
	}

	if _, err := time.LoadLocation(su.Timezone); err != nil {
		err = errors.New("unknown timezone")
		slog.Info(err.Error())
		return err
	}
	if _, err := time.Parse("15:04", su.PostingTime); err != nil {
		err = errors.New("posting time must be HH:MM")
		slog.Info(err.Error())
		return err
	}

	settings := &models.WorkspaceSettings{
		WorkspaceID: su.WorkspaceID,
		Timezone:    su.Timezone,
		PostingTime: su.PostingTime,
	}

	_, isExist, err := s.sr.GetByWorkspaceID(ctx, su.WorkspaceID)
	if err != nil {
		return err
	}
	if !isExist {
		return s.sr.Create(ctx, settings)
	}
	return s.sr.Update(ctx, settings)
}

// Clock resolves the timezone and default posting time a workspace
// schedules against, falling back to the service defaults when settings
// are absent or unusable.
func (s *settingsService) Clock(ctx context.Context, workspaceID string) (*time.Location, string) {
	settings, isExist, err := s.sr.GetByWorkspaceID(ctx, workspaceID)
	if err != nil || !isExist {
		return s.loc, composer.DefaultPostingTime
	}

	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		slog.Info(err.Error())
		loc = s.loc
	}
	postingTime := settings.PostingTime
	if postingTime == "" {
		postingTime = composer.DefaultPostingTime
	}
	return loc, postingTime
}
