package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/metrics"
	"github.com/aussiebroadwan/liaison/pkg/slogx"
)

const (
	primaryCalendar   = "primary"
	maxCalendarEvents = 50
)

type CalendarService struct {
	Tokens  AccessTokens
	Dialer  CalendarDialer
	Metrics *metrics.Metrics
	Now     func() time.Time
}

// ListEvents returns the user's primary calendar events from timeMin
// (default now) up to the optional timeMax, expanded and ordered by start.
// Events are returned as the provider lists them.
func (s *CalendarService) ListEvents(
	ctx context.Context,
	userID string,
	timeMin, timeMax *time.Time,
) ([]domain.Event, error) {
	l := slogx.FromContext(ctx)

	token, err := s.Tokens.EnsureFreshToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	q := domain.EventQuery{
		CalendarID:   primaryCalendar,
		TimeMax:      timeMax,
		MaxResults:   maxCalendarEvents,
		SingleEvents: true,
		OrderBy:      "startTime",
	}
	if timeMin != nil {
		q.TimeMin = *timeMin
	} else if s.Now != nil {
		q.TimeMin = s.Now()
	} else {
		q.TimeMin = time.Now()
	}

	cal, err := s.Dialer.DialCalendar(ctx, token)
	if err != nil {
		s.Metrics.CalendarRead(false)
		l.Error("failed to open calendar client", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	events, err := cal.ListEvents(ctx, q)
	if err != nil {
		s.Metrics.CalendarRead(false)
		l.Warn("calendar events.list failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	s.Metrics.CalendarRead(true)
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}
