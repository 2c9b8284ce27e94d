package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/store"
	"github.com/aussiebroadwan/liaison/pkg/idx"
	"github.com/aussiebroadwan/liaison/pkg/slogx"
)

// TemplateService manages reusable email subjects and bodies.
type TemplateService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *TemplateService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *TemplateService) List(ctx context.Context, userID string) ([]domain.Template, error) {
	return s.Store.Templates().ListTemplates(ctx, userID)
}

func (s *TemplateService) Get(ctx context.Context, userID, id string) (domain.Template, error) {
	t, err := s.Store.Templates().GetTemplate(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Template{}, ErrTemplateNotFound
		}
		return domain.Template{}, err
	}
	return t, nil
}

func (s *TemplateService) Create(ctx context.Context, userID string, in domain.TemplateInput) (domain.Template, error) {
	l := slogx.FromContext(ctx)

	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return domain.Template{}, err
	}

	now := s.now()
	t, err := s.Store.Templates().CreateTemplate(ctx, domain.Template{
		ID:        idx.NewAt(now).String(),
		UserID:    userID,
		Name:      in.Name,
		Subject:   in.Subject,
		Body:      in.Body,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		l.Error("failed to create template", "error", err)
		return domain.Template{}, err
	}

	l.Info("template created", "template_id", t.ID)
	return t, nil
}

func (s *TemplateService) Update(ctx context.Context, userID, id string, p domain.TemplatePatch) (domain.Template, error) {
	l := slogx.FromContext(ctx)

	if p.Name != nil {
		p.Name = trimmed(*p.Name)
	}
	if err := validateStruct(p); err != nil {
		return domain.Template{}, err
	}

	var updated domain.Template
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Templates().GetTemplate(ctx, userID, id)
		if err != nil {
			return err
		}

		if p.Name != nil {
			t.Name = *p.Name
		}
		if p.Subject != nil {
			t.Subject = *p.Subject
		}
		if p.Body != nil {
			t.Body = *p.Body
		}
		t.UpdatedAt = s.now()

		updated, err = tx.Templates().UpdateTemplate(ctx, t)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Template{}, ErrTemplateNotFound
		}
		l.Error("failed to update template", "error", err, "template_id", id)
		return domain.Template{}, err
	}

	l.Info("template updated", "template_id", id)
	return updated, nil
}

func (s *TemplateService) Delete(ctx context.Context, userID, id string) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Templates().DeleteTemplate(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTemplateNotFound
		}
		l.Error("failed to delete template", "error", err, "template_id", id)
		return err
	}

	l.Info("template deleted", "template_id", id)
	return nil
}
