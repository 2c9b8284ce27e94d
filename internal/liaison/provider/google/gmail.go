package google

import (
	"context"

	"google.golang.org/api/gmail/v1"

	"github.com/aussiebroadwan/liaison/internal/liaison/service"
)

// mailSender sends as the authenticated user ("me").
type mailSender struct {
	svc *gmail.Service
}

func (p *Provider) DialMail(ctx context.Context, accessToken string) (service.MailSender, error) {
	svc, err := gmail.NewService(ctx, p.apiOptions(ctx, accessToken, p.gmailEndpoint)...)
	if err != nil {
		return nil, err
	}
	return &mailSender{svc: svc}, nil
}

func (s *mailSender) SendRaw(ctx context.Context, raw string) error {
	_, err := s.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return apiError(err)
	}
	return nil
}
