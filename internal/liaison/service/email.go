package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/metrics"
	"github.com/aussiebroadwan/liaison/internal/liaison/store"
	"github.com/aussiebroadwan/liaison/pkg/mimex"
	"github.com/aussiebroadwan/liaison/pkg/slogx"
)

type EmailService struct {
	Tokens AccessTokens
	Dialer MailDialer
	Store  store.Store

	// Concurrency bounds parallel sends within one batch; 0 or 1 sends
	// one recipient at a time.
	Concurrency int
	Metrics     *metrics.Metrics
}

// SendEmails sends msg to every recipient separately. Failures to obtain
// a token or a mail client fail the whole call; after that every recipient
// gets an outcome, in input order, and the error is nil.
func (s *EmailService) SendEmails(ctx context.Context, userID string, msg domain.EmailMessage) ([]domain.SendOutcome, error) {
	l := slogx.FromContext(ctx)

	token, err := s.Tokens.EnsureFreshToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	sender, err := s.Dialer.DialMail(ctx, token)
	if err != nil {
		l.Error("failed to open mail client", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	outcomes := make([]domain.SendOutcome, len(msg.To))

	if s.Concurrency <= 1 {
		for i, to := range msg.To {
			outcomes[i] = s.sendOne(ctx, sender, to, msg)
		}
	} else {
		// sendOne never fails; the group only bounds the fan-out.
		var g errgroup.Group
		g.SetLimit(s.Concurrency)
		for i, to := range msg.To {
			g.Go(func() error {
				outcomes[i] = s.sendOne(ctx, sender, to, msg)
				return nil
			})
		}
		_ = g.Wait()
	}

	sent := 0
	for _, o := range outcomes {
		if o.Status == domain.SendSuccess {
			sent++
		}
	}
	l.Info("email batch dispatched", "recipients", len(outcomes), "sent", sent, "failed", len(outcomes)-sent)
	return outcomes, nil
}

func (s *EmailService) sendOne(ctx context.Context, sender MailSender, to string, msg domain.EmailMessage) domain.SendOutcome {
	out := domain.SendOutcome{Recipient: to}

	raw, err := mimex.Raw(mimex.Message{To: to, Subject: msg.Subject, Body: msg.Body})
	if err == nil {
		err = sender.SendRaw(ctx, raw)
	}

	if err != nil {
		out.Status = domain.SendError
		out.Error = err.Error()
		slogx.FromContext(ctx).Warn("email send failed", "error", err)
	} else {
		out.Status = domain.SendSuccess
	}
	s.Metrics.EmailSent(string(out.Status))
	return out
}

// sendInput is what SendFromRequest validates once ids are resolved.
type sendInput struct {
	To      []string `json:"recipients" validate:"min=1,max=500,dive,required,email"`
	Subject string   `json:"subject" validate:"required,max=998"`
	Body    string   `json:"body" validate:"required"`
}

// SendFromRequest resolves client and template ids against the caller's
// own records, validates the result and sends it. Client emails follow the
// explicit recipients; duplicates are dropped. A template only fills an
// empty subject or body.
func (s *EmailService) SendFromRequest(ctx context.Context, userID string, req domain.SendRequest) ([]domain.SendOutcome, error) {
	in := sendInput{
		Subject: req.Subject,
		Body:    req.Body,
	}

	if req.TemplateID != "" && (in.Subject == "" || in.Body == "") {
		t, err := s.Store.Templates().GetTemplate(ctx, userID, req.TemplateID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrTemplateNotFound
			}
			return nil, err
		}
		if in.Subject == "" {
			in.Subject = t.Subject
		}
		if in.Body == "" {
			in.Body = t.Body
		}
	}

	seen := make(map[string]struct{}, len(req.Recipients)+len(req.ClientIDs))
	add := func(addr string) {
		addr = strings.TrimSpace(addr)
		key := strings.ToLower(addr)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		in.To = append(in.To, addr)
	}

	for _, r := range req.Recipients {
		add(r)
	}
	for _, id := range req.ClientIDs {
		c, err := s.Store.Clients().GetClient(ctx, userID, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrClientNotFound
			}
			return nil, err
		}
		add(c.Email)
	}

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	return s.SendEmails(ctx, userID, domain.EmailMessage{
		To:      in.To,
		Subject: in.Subject,
		Body:    in.Body,
	})
}
