package composer

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPostingTime is the product default for posts scheduled "for a
// day" without a time: they go out in the morning.
const DefaultPostingTime = "09:00"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ScheduleResolver turns the composer's optional date and time strings
// into an absolute timestamp.
//
// Resolution policy:
//   - date absent: "now", and any time string is deliberately ignored. A
//     time without a date must not silently produce a near-past timestamp.
//   - date present, time absent: that date at DefaultTime.
//   - date and time present: that exact local date-time.
type ScheduleResolver struct {
	Location    *time.Location   // local timezone; nil means UTC
	DefaultTime string           // "HH:MM"; empty means DefaultPostingTime
	Now         func() time.Time // injectable for tests; nil means time.Now
}

func (r ScheduleResolver) Resolve(date, timeOfDay string) (time.Time, error) {
	loc := r.Location
	if loc == nil {
		loc = time.UTC
	}

	if strings.TrimSpace(date) == "" {
		now := time.Now
		if r.Now != nil {
			now = r.Now
		}
		return now().In(loc), nil
	}

	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule date: %w", err)
	}

	timeOfDay = strings.TrimSpace(timeOfDay)
	if timeOfDay == "" {
		timeOfDay = r.DefaultTime
		if timeOfDay == "" {
			timeOfDay = DefaultPostingTime
		}
	}
	clock, err := time.Parse(timeLayout, timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule time: %w", err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}
