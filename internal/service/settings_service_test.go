package service

import (
	"context"
	"testing"
	"time"

	"github.com/blacklabelhq/scheduler-api/internal/composer"
	"github.com/blacklabelhq/scheduler-api/internal/models"
	"github.com/blacklabelhq/scheduler-api/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	byWorkspace map[string]*models.WorkspaceSettings
	creates     int
	updates     int
}

func (f *fakeSettingsRepo) GetByWorkspaceID(ctx context.Context, workspaceID string) (*models.WorkspaceSettings, bool, error) {
	s, ok := f.byWorkspace[workspaceID]
	return s, ok, nil
}

func (f *fakeSettingsRepo) Create(ctx context.Context, settings *models.WorkspaceSettings) error {
	if f.byWorkspace == nil {
		f.byWorkspace = make(map[string]*models.WorkspaceSettings)
	}
	f.byWorkspace[settings.WorkspaceID] = settings
	f.creates++
	return nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, settings *models.WorkspaceSettings) error {
	f.byWorkspace[settings.WorkspaceID] = settings
	f.updates++
	return nil
}

func TestGetSettingsInfoDefaults(t *testing.T) {
	s := NewSettingsService(&fakeSettingsRepo{}, memberRepo(), time.UTC)

	settings, err := s.GetSettingsInfo(context.Background(), "u1", "ws1")
	require.NoError(t, err)
	assert.Equal(t, "UTC", settings.Timezone)
	assert.Equal(t, composer.DefaultPostingTime, settings.PostingTime)
}

func TestGetSettingsInfoRequiresMembership(t *testing.T) {
	s := NewSettingsService(&fakeSettingsRepo{}, memberRepo(), time.UTC)

	_, err := s.GetSettingsInfo(context.Background(), "intruder", "ws1")
	assert.ErrorIs(t, err, composer.ErrNoActiveWorkspace)
}

func TestUpdateSettingsValidation(t *testing.T) {
	sr := &fakeSettingsRepo{}
	s := NewSettingsService(sr, memberRepo(), time.UTC)
	ctx := context.Background()

	err := s.UpdateSettings(ctx, "u1", &transfer.SettingsUpdate{WorkspaceID: "ws1", Timezone: "Mars/Olympus", PostingTime: "09:00"})
	require.Error(t, err)
	assert.Equal(t, "unknown timezone", err.Error())

	err = s.UpdateSettings(ctx, "u1", &transfer.SettingsUpdate{WorkspaceID: "ws1", Timezone: "UTC", PostingTime: "9am"})
	require.Error(t, err)
	assert.Equal(t, "posting time must be HH:MM", err.Error())

	assert.Zero(t, sr.creates)
}

func TestUpdateSettingsCreatesThenUpdates(t *testing.T) {
	sr := &fakeSettingsRepo{}
	s := NewSettingsService(sr, memberRepo(), time.UTC)
	ctx := context.Background()

	err := s.UpdateSettings(ctx, "u1", &transfer.SettingsUpdate{WorkspaceID: "ws1", Timezone: "America/New_York", PostingTime: "17:30"})
	require.NoError(t, err)
	assert.Equal(t, 1, sr.creates)

	err = s.UpdateSettings(ctx, "u1", &transfer.SettingsUpdate{WorkspaceID: "ws1", Timezone: "Europe/Berlin", PostingTime: "08:15"})
	require.NoError(t, err)
	assert.Equal(t, 1, sr.updates)
}

func TestClockFallsBackToServiceDefaults(t *testing.T) {
	s := NewSettingsService(&fakeSettingsRepo{}, memberRepo(), time.UTC)

	loc, postingTime := s.Clock(context.Background(), "ws1")
	assert.Equal(t, time.UTC, loc)
	assert.Equal(t, composer.DefaultPostingTime, postingTime)
}

func TestClockUsesWorkspaceSettings(t *testing.T) {
	sr := &fakeSettingsRepo{byWorkspace: map[string]*models.WorkspaceSettings{
		"ws1": {WorkspaceID: "ws1", Timezone: "America/New_York", PostingTime: "17:30"},
	}}
	s := NewSettingsService(sr, memberRepo(), time.UTC)

	loc, postingTime := s.Clock(context.Background(), "ws1")
	assert.Equal(t, "America/New_York", loc.String())
	assert.Equal(t, "17:30", postingTime)
}
