package composer

import (
	"fmt"

	"github.com/blacklabelhq/scheduler-api/internal/models"
)

// Selection is an insertion-ordered set of target platforms. The first
// element still selected is the "primary" platform used for preview
// labeling. A Selection may be empty; non-emptiness is enforced at submit
// time, not here.
type Selection struct {
	platforms []models.Platform
}

func NewSelection(initial ...models.Platform) *Selection {
	s := &Selection{}
	for _, p := range initial {
		if !s.Contains(p) {
			s.platforms = append(s.platforms, p)
		}
	}
	return s
}

// DefaultSelection is what the composer opens with.
func DefaultSelection() *Selection {
	return NewSelection(models.PlatformX, models.PlatformInstagram)
}

// Toggle removes p if present, otherwise appends it. A removed platform
// that is toggled back on rejoins at the end, not its old slot.
func (s *Selection) Toggle(p models.Platform) {
	for i, have := range s.platforms {
		if have == p {
			s.platforms = append(s.platforms[:i], s.platforms[i+1:]...)
			return
		}
	}
	s.platforms = append(s.platforms, p)
}

func (s *Selection) Contains(p models.Platform) bool {
	for _, have := range s.platforms {
		if have == p {
			return true
		}
	}
	return false
}

// Primary returns the first platform in insertion order, if any.
func (s *Selection) Primary() (models.Platform, bool) {
	if len(s.platforms) == 0 {
		return "", false
	}
	return s.platforms[0], true
}

func (s *Selection) Len() int {
	return len(s.platforms)
}

// Platforms returns the selection in insertion order.
func (s *Selection) Platforms() []models.Platform {
	out := make([]models.Platform, len(s.platforms))
	copy(out, s.platforms)
	return out
}

// NormalizePlatforms validates raw platform tags against the closed
// enumeration and drops duplicates, preserving first-insertion order.
func NormalizePlatforms(tags []string) ([]models.Platform, error) {
	sel := NewSelection()
	for _, tag := range tags {
		p := models.Platform(tag)
		if !p.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, tag)
		}
		if !sel.Contains(p) {
			sel.Toggle(p)
		}
	}
	return sel.Platforms(), nil
}
