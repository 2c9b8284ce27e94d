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

// ClientService manages the contact records a user sends email to.
type ClientService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *ClientService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// List returns the user's clients, newest first.
func (s *ClientService) List(ctx context.Context, userID string) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx, userID)
}

func (s *ClientService) Get(ctx context.Context, userID, id string) (domain.Client, error) {
	c, err := s.Store.Clients().GetClient(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return c, nil
}

func (s *ClientService) Create(ctx context.Context, userID string, in domain.ClientInput) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(in); err != nil {
		return domain.Client{}, err
	}

	now := s.now()
	c, err := s.Store.Clients().CreateClient(ctx, domain.Client{
		ID:        idx.NewAt(now).String(),
		UserID:    userID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     emptyToNil(in.Phone),
		Notes:     emptyToNil(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		l.Error("failed to create client", "error", err)
		return domain.Client{}, err
	}

	l.Info("client created", "client_id", c.ID)
	return c, nil
}

// Update applies the non-nil fields of p. An empty phone or notes clears
// the field.
func (s *ClientService) Update(ctx context.Context, userID, id string, p domain.ClientPatch) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if p.Name != nil {
		p.Name = trimmed(*p.Name)
	}
	if p.Email != nil {
		p.Email = trimmed(*p.Email)
	}
	if err := validateStruct(p); err != nil {
		return domain.Client{}, err
	}

	var updated domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Clients().GetClient(ctx, userID, id)
		if err != nil {
			return err
		}

		if p.Name != nil {
			c.Name = *p.Name
		}
		if p.Email != nil {
			c.Email = *p.Email
		}
		if p.Phone != nil {
			c.Phone = emptyToNil(p.Phone)
		}
		if p.Notes != nil {
			c.Notes = emptyToNil(p.Notes)
		}
		c.UpdatedAt = s.now()

		updated, err = tx.Clients().UpdateClient(ctx, c)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		l.Error("failed to update client", "error", err, "client_id", id)
		return domain.Client{}, err
	}

	l.Info("client updated", "client_id", id)
	return updated, nil
}

func (s *ClientService) Delete(ctx context.Context, userID, id string) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Clients().DeleteClient(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		l.Error("failed to delete client", "error", err, "client_id", id)
		return err
	}

	l.Info("client deleted", "client_id", id)
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func trimmed(s string) *string {
	v := strings.TrimSpace(s)
	return &v
}
