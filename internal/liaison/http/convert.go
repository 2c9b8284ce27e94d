package http

import (
	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/pkg/liaisonsdk"
)

func toSDKEvents(events []domain.Event) []liaisonsdk.Event {
	out := make([]liaisonsdk.Event, len(events))
	for i, e := range events {
		out[i] = liaisonsdk.Event{
			ID:          e.ID,
			Status:      e.Status,
			HTMLLink:    e.HTMLLink,
			Summary:     e.Summary,
			Description: e.Description,
			Location:    e.Location,
			Start:       liaisonsdk.EventTime(e.Start),
			End:         liaisonsdk.EventTime(e.End),
			HangoutLink: e.HangoutLink,
			Created:     e.Created,
			Updated:     e.Updated,
		}
		for _, a := range e.Attendees {
			out[i].Attendees = append(out[i].Attendees, liaisonsdk.EventAttendee(a))
		}
		if e.Organizer != nil {
			p := liaisonsdk.EventPerson(*e.Organizer)
			out[i].Organizer = &p
		}
	}
	return out
}

func toSDKClient(c domain.Client) liaisonsdk.Client {
	return liaisonsdk.Client{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toSDKTemplate(t domain.Template) liaisonsdk.Template {
	return liaisonsdk.Template{
		ID:        t.ID,
		Name:      t.Name,
		Subject:   t.Subject,
		Body:      t.Body,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toSendEmailResponse(outcomes []domain.SendOutcome) liaisonsdk.SendEmailResponse {
	resp := liaisonsdk.SendEmailResponse{
		Results: make([]liaisonsdk.SendEmailResult, len(outcomes)),
	}
	for i, o := range outcomes {
		resp.Results[i] = liaisonsdk.SendEmailResult{
			Recipient: o.Recipient,
			Status:    string(o.Status),
			Error:     o.Error,
		}
		if o.Status == domain.SendSuccess {
			resp.Sent++
		} else {
			resp.Failed++
		}
	}
	return resp
}
