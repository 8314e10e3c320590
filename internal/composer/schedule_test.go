package composer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNoDateUsesNow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 34, 56, 0, time.UTC)
	r := ScheduleResolver{Location: time.UTC, Now: func() time.Time { return now }}

	resolved, err := r.Resolve("", "")
	require.NoError(t, err)
	assert.True(t, resolved.Equal(now))
}

func TestResolveNoDateIgnoresTime(t *testing.T) {
	// A time without a date must not produce a near-past timestamp; the
	// time input is dropped entirely.
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	r := ScheduleResolver{Location: time.UTC, Now: func() time.Time { return now }}

	resolved, err := r.Resolve("", "14:30")
	require.NoError(t, err)
	assert.True(t, resolved.Equal(now))
}

func TestResolveDateOnlyDefaultsToMorning(t *testing.T) {
	r := ScheduleResolver{Location: time.UTC}

	resolved, err := r.Resolve("2024-06-01", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), resolved)
}

func TestResolveDateAndTime(t *testing.T) {
	r := ScheduleResolver{Location: time.UTC}

	resolved, err := r.Resolve("2024-06-01", "14:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC), resolved)
}

func TestResolveHonorsWorkspacePostingTime(t *testing.T) {
	r := ScheduleResolver{Location: time.UTC, DefaultTime: "17:45"}

	resolved, err := r.Resolve("2024-06-01", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 17, 45, 0, 0, time.UTC), resolved)
}

func TestResolveRespectsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	r := ScheduleResolver{Location: loc}

	resolved, err := r.Resolve("2024-06-01", "09:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC), resolved.UTC())
}

func TestResolveInvalidInputs(t *testing.T) {
	r := ScheduleResolver{Location: time.UTC}

	_, err := r.Resolve("06/01/2024", "")
	assert.Error(t, err)

	_, err = r.Resolve("2024-06-01", "2pm")
	assert.Error(t, err)
}
