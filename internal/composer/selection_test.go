package composer

import (
	"testing"

	"github.com/blacklabelhq/scheduler-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection()
	assert.Equal(t, []models.Platform{models.PlatformX, models.PlatformInstagram}, sel.Platforms())

	primary, ok := sel.Primary()
	require.True(t, ok)
	assert.Equal(t, models.PlatformX, primary)
}

func TestToggleAddsAndRemoves(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(models.PlatformTikTok)
	assert.True(t, sel.Contains(models.PlatformTikTok))
	assert.Equal(t, 1, sel.Len())

	sel.Toggle(models.PlatformTikTok)
	assert.False(t, sel.Contains(models.PlatformTikTok))
	assert.Equal(t, 0, sel.Len())
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	sel := DefaultSelection()
	before := sel.Platforms()
	primaryBefore, _ := sel.Primary()

	sel.Toggle(models.PlatformLinkedIn)
	sel.Toggle(models.PlatformLinkedIn)

	assert.Equal(t, before, sel.Platforms())
	primaryAfter, _ := sel.Primary()
	assert.Equal(t, primaryBefore, primaryAfter)
}

func TestPrimaryFollowsInsertionOrder(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(models.PlatformFacebook)
	sel.Toggle(models.PlatformX)

	primary, ok := sel.Primary()
	require.True(t, ok)
	assert.Equal(t, models.PlatformFacebook, primary)

	// Removing the first selected platform promotes the next one.
	sel.Toggle(models.PlatformFacebook)
	primary, ok = sel.Primary()
	require.True(t, ok)
	assert.Equal(t, models.PlatformX, primary)
}

func TestPrimaryEmptySelection(t *testing.T) {
	sel := NewSelection()
	_, ok := sel.Primary()
	assert.False(t, ok)
}

func TestReaddedPlatformGoesToTheEnd(t *testing.T) {
	sel := DefaultSelection()
	sel.Toggle(models.PlatformX)
	sel.Toggle(models.PlatformX)
	assert.Equal(t, []models.Platform{models.PlatformInstagram, models.PlatformX}, sel.Platforms())
}

func TestNormalizePlatforms(t *testing.T) {
	platforms, err := NormalizePlatforms([]string{"X", "Instagram", "X"})
	require.NoError(t, err)
	assert.Equal(t, []models.Platform{models.PlatformX, models.PlatformInstagram}, platforms)
}

func TestNormalizePlatformsRejectsUnknown(t *testing.T) {
	_, err := NormalizePlatforms([]string{"X", "Myspace"})
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}
