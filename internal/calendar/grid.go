// Package calendar buckets scheduled posts into a month grid. The grid is
// Sunday-aligned and always a multiple of seven cells; days outside the
// anchored month are included to complete the first and last weeks.
package calendar

import (
	"fmt"
	"time"

	"github.com/blacklabelhq/scheduler-api/internal/models"
)

const (
	dayKeyLayout = "2006-01-02"
	monthLayout  = "2006-01"
)

type Cell struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"in_month"`
	Count   int       `json:"count"`
}

// MonthAnchor returns midnight on the first day of t's month in loc.
// Anchoring to the 1st keeps month navigation free of overflow bugs
// (Jan 31 + one month is not a date).
func MonthAnchor(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

func PrevMonth(anchor time.Time) time.Time {
	return MonthAnchor(anchor.AddDate(0, -1, 0), anchor.Location())
}

func NextMonth(anchor time.Time) time.Time {
	return MonthAnchor(anchor.AddDate(0, 1, 0), anchor.Location())
}

// ParseMonth parses a "YYYY-MM" anchor in loc.
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(monthLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month: %w", err)
	}
	return t, nil
}

// GridRange returns the first and last day shown for the anchored month:
// the most recent Sunday on or before the 1st through the nearest Saturday
// on or after the last day.
func GridRange(anchor time.Time) (time.Time, time.Time) {
	loc := anchor.Location()
	first := MonthAnchor(anchor, loc)
	last := first.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, 6-int(last.Weekday()))
	return start, end
}

// BuildMonthGrid counts posts per calendar day across the anchored month's
// grid. A post belongs to the day its scheduled time falls on in loc,
// so 23:59 and 00:01 the next day land in different cells. Out-of-month
// cells still carry correct counts.
func BuildMonthGrid(posts []*models.ScheduledPost, anchor time.Time, loc *time.Location) []Cell {
	counts := make(map[string]int, len(posts))
	for _, p := range posts {
		counts[p.ScheduledFor.In(loc).Format(dayKeyLayout)]++
	}

	a := MonthAnchor(anchor, loc)
	start, end := GridRange(a)
	month, year := a.Month(), a.Year()

	var cells []Cell
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cells = append(cells, Cell{
			Date:    d,
			InMonth: d.Month() == month && d.Year() == year,
			Count:   counts[d.Format(dayKeyLayout)],
		})
	}
	return cells
}
