package calendar

import (
	"testing"
	"time"

	"github.com/blacklabelhq/scheduler-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(scheduledFor time.Time) *models.ScheduledPost {
	return &models.ScheduledPost{
		ID:           "p-" + scheduledFor.Format(time.RFC3339),
		ScheduledFor: scheduledFor,
		Status:       models.PostStatusScheduled,
	}
}

func TestGridLengthIsMultipleOfSeven(t *testing.T) {
	months := []string{
		"2024-02", // leap February
		"2023-02", // non-leap February
		"2024-06",
		"2024-12",
		"2025-01",
		"2026-08",
	}

	for _, month := range months {
		anchor, err := ParseMonth(month, time.UTC)
		require.NoError(t, err)

		cells := BuildMonthGrid(nil, anchor, time.UTC)
		assert.NotEmpty(t, cells, month)
		assert.Zero(t, len(cells)%7, "grid for %s has %d cells", month, len(cells))
	}
}

func TestGridIsSundayAligned(t *testing.T) {
	anchor, err := ParseMonth("2024-06", time.UTC)
	require.NoError(t, err)

	cells := BuildMonthGrid(nil, anchor, time.UTC)
	assert.Equal(t, time.Sunday, cells[0].Date.Weekday())
	assert.Equal(t, time.Saturday, cells[len(cells)-1].Date.Weekday())
}

func TestGridMarksOutOfMonthCells(t *testing.T) {
	// June 2024 starts on a Saturday: the first week carries five May days.
	anchor, err := ParseMonth("2024-06", time.UTC)
	require.NoError(t, err)

	cells := BuildMonthGrid(nil, anchor, time.UTC)
	assert.False(t, cells[0].InMonth)
	assert.Equal(t, time.Date(2024, 5, 26, 0, 0, 0, 0, time.UTC), cells[0].Date)

	inMonth := 0
	for _, cell := range cells {
		if cell.InMonth {
			inMonth++
		}
	}
	assert.Equal(t, 30, inMonth)
}

func TestNearMidnightPostsLandInDifferentCells(t *testing.T) {
	anchor, err := ParseMonth("2024-06", time.UTC)
	require.NoError(t, err)

	posts := []*models.ScheduledPost{
		post(time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)),
		post(time.Date(2024, 6, 16, 0, 1, 0, 0, time.UTC)),
	}

	cells := BuildMonthGrid(posts, anchor, time.UTC)
	byDay := make(map[string]int)
	for _, cell := range cells {
		byDay[cell.Date.Format("2006-01-02")] = cell.Count
	}

	assert.Equal(t, 1, byDay["2024-06-15"])
	assert.Equal(t, 1, byDay["2024-06-16"])
}

func TestBucketingUsesLocalDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	anchor, err := ParseMonth("2024-06", loc)
	require.NoError(t, err)

	// 01:30 UTC on June 16 is still June 15 in New York.
	posts := []*models.ScheduledPost{post(time.Date(2024, 6, 16, 1, 30, 0, 0, time.UTC))}

	cells := BuildMonthGrid(posts, anchor, loc)
	byDay := make(map[string]int)
	for _, cell := range cells {
		byDay[cell.Date.Format("2006-01-02")] = cell.Count
	}

	assert.Equal(t, 1, byDay["2024-06-15"])
	assert.Equal(t, 0, byDay["2024-06-16"])
}

func TestOutOfMonthCellsStillCount(t *testing.T) {
	anchor, err := ParseMonth("2024-06", time.UTC)
	require.NoError(t, err)

	// May 26 is on the grid but outside the anchored month.
	posts := []*models.ScheduledPost{post(time.Date(2024, 5, 26, 10, 0, 0, 0, time.UTC))}

	cells := BuildMonthGrid(posts, anchor, time.UTC)
	assert.False(t, cells[0].InMonth)
	assert.Equal(t, 1, cells[0].Count)
}

func TestMonthNavigationAnchorsToTheFirst(t *testing.T) {
	anchor := MonthAnchor(time.Date(2024, 1, 31, 15, 0, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), anchor)

	next := NextMonth(anchor)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), next)

	prev := PrevMonth(next)
	assert.Equal(t, anchor, prev)
}

func TestGridRange(t *testing.T) {
	anchor, err := ParseMonth("2024-06", time.UTC)
	require.NoError(t, err)

	start, end := GridRange(anchor)
	assert.Equal(t, time.Date(2024, 5, 26, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 7, 6, 0, 0, 0, 0, time.UTC), end)
}
