package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/metrics"
	"github.com/aussiebroadwan/liaison/internal/liaison/store"
	"github.com/aussiebroadwan/liaison/pkg/cryptox"
	"github.com/aussiebroadwan/liaison/pkg/slogx"
)

const (
	DefaultFreshnessBuffer = 5 * time.Minute
	DefaultStateTTL        = 10 * time.Minute
	DefaultRefreshTimeout  = 30 * time.Second
)

// ConnectionService owns the delegated credential of every user. It is the
// only writer of the connection store.
type ConnectionService struct {
	Store     store.Store
	Exchanger TokenExchanger
	Metrics   *metrics.Metrics

	// FreshnessBuffer is how long a stored access token must remain valid
	// to be handed out without a refresh.
	FreshnessBuffer time.Duration
	StateTTL        time.Duration

	// RefreshTimeout bounds a shared load-and-refresh, which outlives any
	// single caller's context.
	RefreshTimeout time.Duration

	// Now is overridden in tests.
	Now func() time.Time

	refreshes singleflight.Group
}

func (s *ConnectionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *ConnectionService) buffer() time.Duration {
	if s.FreshnessBuffer > 0 {
		return s.FreshnessBuffer
	}
	return DefaultFreshnessBuffer
}

func (s *ConnectionService) refreshTimeout() time.Duration {
	if s.RefreshTimeout > 0 {
		return s.RefreshTimeout
	}
	return DefaultRefreshTimeout
}

func (s *ConnectionService) stateTTL() time.Duration {
	if s.StateTTL > 0 {
		return s.StateTTL
	}
	return DefaultStateTTL
}

// EnsureFreshToken returns an access token for userID that stays valid for
// at least the freshness buffer, refreshing it first when needed.
//
// Concurrent callers for the same user share one load-and-refresh. It runs
// detached from every caller's cancellation, bounded by RefreshTimeout; a
// caller whose own context ends gets its context error.
func (s *ConnectionService) EnsureFreshToken(ctx context.Context, userID string) (string, error) {
	ch := s.refreshes.DoChan(userID, func() (any, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.refreshTimeout())
		defer cancel()
		return s.ensureFresh(shared, userID)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (s *ConnectionService) ensureFresh(ctx context.Context, userID string) (string, error) {
	l := slogx.FromContext(ctx)

	conn, err := s.Store.Connections().GetConnection(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrConnectionNotFound
		}
		l.Error("failed to load google connection", "error", err)
		return "", err
	}

	if !conn.HasRefreshToken() {
		return "", ErrRefreshUnavailable
	}

	if conn.FreshAt(s.now(), s.buffer()) {
		s.Metrics.TokenCheck(metrics.RefreshFresh)
		return conn.AccessToken, nil
	}

	tok, err := s.Exchanger.Refresh(ctx, *conn.RefreshToken)
	if err != nil {
		// A timeout says nothing about the credential.
		if ctxErr := ctx.Err(); ctxErr != nil {
			l.Warn("google token refresh abandoned", "error", ctxErr)
			return "", ctxErr
		}
		s.Metrics.TokenCheck(metrics.RefreshFailed)
		l.Warn("google token refresh failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	if tok.AccessToken == "" {
		s.Metrics.TokenCheck(metrics.RefreshFailed)
		l.Warn("google token refresh returned no access token")
		return "", fmt.Errorf("%w: empty access token in response", ErrRefreshFailed)
	}

	update := domain.ConnectionUpdate{
		AccessToken: tok.AccessToken,
		ExpiresAt:   tok.ExpiresAt,
	}
	if tok.RefreshToken != "" {
		update.RefreshToken = &tok.RefreshToken
	}
	if tok.Scope != "" {
		update.Scope = &tok.Scope
	}

	expected := cryptox.FingerprintToken(*conn.RefreshToken)
	if _, err := s.Store.Connections().SwapRefreshedTokens(ctx, userID, expected, update); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return s.winningToken(ctx, userID)
		}
		l.Error("failed to store refreshed google token", "error", err)
		return "", err
	}

	s.Metrics.TokenCheck(metrics.RefreshRefreshed)
	l.Info("google access token refreshed", "rotated_refresh_token", update.RefreshToken != nil)
	return tok.AccessToken, nil
}

// winningToken is used after losing the refresh compare-and-swap: another
// process stored a newer credential (or the user disconnected meanwhile).
func (s *ConnectionService) winningToken(ctx context.Context, userID string) (string, error) {
	l := slogx.FromContext(ctx)

	conn, err := s.Store.Connections().GetConnection(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrConnectionNotFound
		}
		return "", err
	}

	s.Metrics.TokenCheck(metrics.RefreshConflict)
	l.Info("google token refreshed concurrently, using stored token")
	return conn.AccessToken, nil
}

// SaveConnection stores the credential obtained from a code exchange. An
// empty refreshToken keeps the one already stored; the provider only
// issues refresh tokens on first consent.
func (s *ConnectionService) SaveConnection(
	ctx context.Context,
	userID, accessToken, refreshToken string,
	expiresAt *time.Time,
	scope string,
) (domain.Connection, error) {
	l := slogx.FromContext(ctx)

	if accessToken == "" {
		return domain.Connection{}, invalidField("access_token", "is required")
	}

	fields := domain.ConnectionFields{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}
	if scope != "" {
		fields.Scope = &scope
	}

	var saved domain.Connection
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if refreshToken != "" {
			fields.RefreshToken = &refreshToken
		} else {
			existing, err := tx.Connections().GetConnection(ctx, userID)
			switch {
			case err == nil:
				fields.RefreshToken = existing.RefreshToken
			case !errors.Is(err, store.ErrNotFound):
				return err
			}
		}

		var err error
		saved, err = tx.Connections().UpsertConnection(ctx, userID, fields)
		return err
	})
	if err != nil {
		l.Error("failed to save google connection", "error", err)
		return domain.Connection{}, err
	}

	l.Info("google connection saved", "has_refresh_token", saved.HasRefreshToken())
	return saved, nil
}

// ConnectionStatus reports whether the user has a stored connection. It
// does not check that the credential still works.
func (s *ConnectionService) ConnectionStatus(ctx context.Context, userID string) (bool, error) {
	_, err := s.Store.Connections().GetConnection(ctx, userID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNotFound):
		return false, nil
	default:
		slogx.FromContext(ctx).Error("failed to load google connection", "error", err)
		return false, err
	}
}

// DeleteConnection forgets the user's credential. Disconnecting twice is
// not an error.
func (s *ConnectionService) DeleteConnection(ctx context.Context, userID string) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Connections().DeleteConnection(ctx, userID); err != nil {
		l.Error("failed to delete google connection", "error", err)
		return err
	}

	l.Info("google connection deleted")
	return nil
}

// BeginConnect records a fresh state for userID and returns the consent
// URL to redirect the browser to.
func (s *ConnectionService) BeginConnect(ctx context.Context, userID string) (string, error) {
	l := slogx.FromContext(ctx)

	state, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		l.Error("failed to generate oauth state", "error", err)
		return "", err
	}

	now := s.now()
	err = s.Store.OAuthStates().CreateOAuthState(ctx, domain.OAuthState{
		StateHash: cryptox.FingerprintToken(state),
		UserID:    userID,
		ExpiresAt: now.Add(s.stateTTL()),
		CreatedAt: now,
	})
	if err != nil {
		l.Error("failed to store oauth state", "error", err)
		return "", err
	}

	return s.Exchanger.AuthCodeURL(state), nil
}

// CompleteConnect finishes the consent redirect: it consumes state,
// exchanges code and stores the resulting credential. It returns the user
// the state was issued to.
func (s *ConnectionService) CompleteConnect(ctx context.Context, state, code string) (string, error) {
	l := slogx.FromContext(ctx)

	if state == "" || code == "" {
		return "", ErrInvalidState
	}

	userID, err := s.Store.OAuthStates().ConsumeOAuthState(ctx, cryptox.FingerprintToken(state), s.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("oauth callback with unknown or expired state")
			return "", ErrInvalidState
		}
		l.Error("failed to consume oauth state", "error", err)
		return "", err
	}

	ctx = slogx.WithUserID(ctx, userID)

	tok, err := s.Exchanger.Exchange(ctx, code)
	if err != nil {
		slogx.FromContext(ctx).Warn("google code exchange failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrCodeExchangeFailed, err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token in response", ErrCodeExchangeFailed)
	}

	if _, err := s.SaveConnection(ctx, userID, tok.AccessToken, tok.RefreshToken, tok.ExpiresAt, tok.Scope); err != nil {
		return "", err
	}
	return userID, nil
}
