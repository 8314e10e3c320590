package service

import (
	"context"
	"testing"
	"time"

	"github.com/blacklabelhq/scheduler-api/internal/composer"
	"github.com/blacklabelhq/scheduler-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGridRequiresMembership(t *testing.T) {
	s := NewCalendarService(&fakePostRepo{}, memberRepo(), &fakeSettings{loc: time.UTC, postingTime: composer.DefaultPostingTime})

	_, _, err := s.MonthGrid(context.Background(), "intruder", "ws1", "2026-06")
	assert.ErrorIs(t, err, composer.ErrNoActiveWorkspace)
}

func TestMonthGridRejectsBadMonth(t *testing.T) {
	s := NewCalendarService(&fakePostRepo{}, memberRepo(), &fakeSettings{loc: time.UTC, postingTime: composer.DefaultPostingTime})

	_, _, err := s.MonthGrid(context.Background(), "u1", "ws1", "June 2026")
	assert.Error(t, err)
}

func TestMonthGridCountsScheduledPosts(t *testing.T) {
	pr := &fakePostRepo{posts: []*models.ScheduledPost{
		{ID: "a", WorkspaceID: "ws1", ScheduledFor: time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)},
		{ID: "b", WorkspaceID: "ws1", ScheduledFor: time.Date(2026, 6, 10, 15, 0, 0, 0, time.UTC)},
		{ID: "c", WorkspaceID: "ws1", ScheduledFor: time.Date(2026, 6, 11, 9, 0, 0, 0, time.UTC)},
		{ID: "other", WorkspaceID: "ws2", ScheduledFor: time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)},
	}}
	s := NewCalendarService(pr, memberRepo(), &fakeSettings{loc: time.UTC, postingTime: composer.DefaultPostingTime})

	cells, anchor, err := s.MonthGrid(context.Background(), "u1", "ws1", "2026-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), anchor)
	assert.Zero(t, len(cells)%7)

	byDay := make(map[string]int)
	for _, cell := range cells {
		byDay[cell.Date.Format("2006-01-02")] = cell.Count
	}
	assert.Equal(t, 2, byDay["2026-06-10"])
	assert.Equal(t, 1, byDay["2026-06-11"])
	assert.Equal(t, 0, byDay["2026-06-12"])
}

func TestMonthGridDefaultsToCurrentMonth(t *testing.T) {
	s := NewCalendarService(&fakePostRepo{}, memberRepo(), &fakeSettings{loc: time.UTC, postingTime: composer.DefaultPostingTime})

	_, anchor, err := s.MonthGrid(context.Background(), "u1", "ws1", "")
	require.NoError(t, err)

	now := time.Now().UTC()
	assert.Equal(t, now.Year(), anchor.Year())
	assert.Equal(t, now.Month(), anchor.Month())
	assert.Equal(t, 1, anchor.Day())
}
