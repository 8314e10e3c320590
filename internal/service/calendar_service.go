package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/blacklabelhq/scheduler-api/internal/calendar"
	"github.com/blacklabelhq/scheduler-api/internal/composer"
	"github.com/blacklabelhq/scheduler-api/internal/repository"
)

type CalendarService interface {
	MonthGrid(ctx context.Context, userID, workspaceID, month string) ([]calendar.Cell, time.Time, error)
}

type calendarService struct {
	pr       repository.PostRepository
	wr       repository.WorkspaceRepository
	settings SettingsService
}

func NewCalendarService(pr repository.PostRepository, wr repository.WorkspaceRepository, settings SettingsService) CalendarService {
	return &calendarService{
		pr:       pr,
		wr:       wr,
		settings: settings,
	}
}

// MonthGrid builds the calendar for the given "YYYY-MM" month, or the
// current month when empty. It returns the grid together with the anchor
// it resolved, so callers can navigate relative to it.
func (s *calendarService) MonthGrid(ctx context.Context, userID, workspaceID, month string) ([]calendar.Cell, time.Time, error) {
	isMember, err := s.wr.IsMember(ctx, workspaceID, userID)
	if err != nil {
		return nil, time.Time{}, err
	}
	if !isMember {
		slog.Info(composer.ErrNoActiveWorkspace.Error())
		return nil, time.Time{}, composer.ErrNoActiveWorkspace
	}

	loc, _ := s.settings.Clock(ctx, workspaceID)

	var anchor time.Time
	if month == "" {
		anchor = calendar.MonthAnchor(time.Now(), loc)
	} else {
		anchor, err = calendar.ParseMonth(month, loc)
		if err != nil {
			slog.Info(err.Error())
			return nil, time.Time{}, err
		}
	}

	from, to := calendar.GridRange(anchor)
	posts, err := s.pr.ListByScheduledRange(ctx, workspaceID, from.UTC(), to.AddDate(0, 0, 1).UTC())
	if err != nil {
		return nil, time.Time{}, &PersistenceError{Op: "list posts", Err: err}
	}

	return calendar.BuildMonthGrid(posts, anchor, loc), anchor, nil
}
