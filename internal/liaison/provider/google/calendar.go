package google

import (
	"context"

	"google.golang.org/api/calendar/v3"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/service"
)

type calendarReader struct {
	svc *calendar.Service
}

func (p *Provider) DialCalendar(ctx context.Context, accessToken string) (service.CalendarReader, error) {
	svc, err := calendar.NewService(ctx, p.apiOptions(ctx, accessToken, p.calendarEndpoint)...)
	if err != nil {
		return nil, err
	}
	return &calendarReader{svc: svc}, nil
}

func (r *calendarReader) ListEvents(ctx context.Context, q domain.EventQuery) ([]domain.Event, error) {
	call := r.svc.Events.List(q.CalendarID).
		TimeMin(rfc3339(q.TimeMin)).
		MaxResults(q.MaxResults).
		SingleEvents(q.SingleEvents).
		Context(ctx)
	if q.OrderBy != "" {
		call = call.OrderBy(q.OrderBy)
	}
	if q.TimeMax != nil {
		call = call.TimeMax(rfc3339(*q.TimeMax))
	}

	res, err := call.Do()
	if err != nil {
		return nil, apiError(err)
	}

	events := make([]domain.Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, toEvent(item))
	}
	return events, nil
}

func toEvent(e *calendar.Event) domain.Event {
	out := domain.Event{
		ID:          e.Id,
		Status:      e.Status,
		HTMLLink:    e.HtmlLink,
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		Start:       toEventTime(e.Start),
		End:         toEventTime(e.End),
		HangoutLink: e.HangoutLink,
		Created:     e.Created,
		Updated:     e.Updated,
	}

	for _, a := range e.Attendees {
		if a == nil {
			continue
		}
		out.Attendees = append(out.Attendees, domain.EventAttendee{
			Email:          a.Email,
			DisplayName:    a.DisplayName,
			ResponseStatus: a.ResponseStatus,
		})
	}
	if e.Organizer != nil {
		out.Organizer = &domain.EventPerson{
			Email:       e.Organizer.Email,
			DisplayName: e.Organizer.DisplayName,
		}
	}
	return out
}

func toEventTime(t *calendar.EventDateTime) domain.EventTime {
	if t == nil {
		return domain.EventTime{}
	}
	return domain.EventTime{DateTime: t.DateTime, Date: t.Date, TimeZone: t.TimeZone}
}
