// Package google implements the token, calendar and mail capabilities
// against Google's OAuth and REST APIs.
package google

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/service"
)

// DefaultScopes is what the consent screen asks for.
var DefaultScopes = []string{
	calendar.CalendarReadonlyScope,
	gmail.GmailSendScope,
}

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	// AuthURL and TokenURL override Google's endpoints; used against
	// fakes in tests.
	AuthURL  string
	TokenURL string

	// APIEndpoint overrides the root of the REST APIs. Calendar is served
	// under {APIEndpoint}/calendar/v3/ and Gmail under {APIEndpoint}/.
	APIEndpoint string

	Scopes []string

	// HTTPClient is the base client for every outbound call. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client
}

// Provider is safe for concurrent use.
type Provider struct {
	oauth *oauth2.Config

	calendarEndpoint string
	gmailEndpoint    string
	httpClient       *http.Client
}

var (
	_ service.TokenExchanger = (*Provider)(nil)
	_ service.CalendarDialer = (*Provider)(nil)
	_ service.MailDialer     = (*Provider)(nil)
)

func New(cfg Config) (*Provider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RedirectURL == "" {
		return nil, errors.New("google oauth config missing required fields")
	}

	endpoint := googleoauth.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	// Google accepts credentials in the form body; sending them there
	// also skips oauth2's auth-style probing.
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	p := &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       scopes,
		},
		httpClient: cfg.HTTPClient,
	}

	if root := strings.TrimRight(cfg.APIEndpoint, "/"); root != "" {
		p.calendarEndpoint = root + "/calendar/v3/"
		p.gmailEndpoint = root + "/"
	}
	return p, nil
}

// AuthCodeURL asks for offline access and forces the consent screen so a
// refresh token is issued even when the user granted access before.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
	)
}

func (p *Provider) Exchange(ctx context.Context, code string) (domain.ProviderToken, error) {
	tok, err := p.oauth.Exchange(p.clientContext(ctx), code)
	if err != nil {
		return domain.ProviderToken{}, err
	}
	return toProviderToken(tok, ""), nil
}

// Refresh trades refreshToken for a new access token. The returned
// RefreshToken is empty unless Google rotated it.
func (p *Provider) Refresh(ctx context.Context, refreshToken string) (domain.ProviderToken, error) {
	src := p.oauth.TokenSource(p.clientContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return domain.ProviderToken{}, err
	}
	return toProviderToken(tok, refreshToken), nil
}

func (p *Provider) clientContext(ctx context.Context) context.Context {
	if p.httpClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
}

// toProviderToken drops a refresh token equal to previous: oauth2 copies
// the old one into the response when the server did not send a new one.
func toProviderToken(tok *oauth2.Token, previous string) domain.ProviderToken {
	out := domain.ProviderToken{AccessToken: tok.AccessToken}

	if tok.RefreshToken != previous {
		out.RefreshToken = tok.RefreshToken
	}
	if !tok.Expiry.IsZero() {
		exp := tok.Expiry.UTC()
		out.ExpiresAt = &exp
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		out.Scope = scope
	}
	return out
}

// apiOptions authenticates every API request with accessToken.
func (p *Provider) apiOptions(ctx context.Context, accessToken, endpoint string) []option.ClientOption {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	opts := []option.ClientOption{
		option.WithHTTPClient(oauth2.NewClient(p.clientContext(ctx), ts)),
	}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	return opts
}

// APIError carries the message Google returned for a failed API call. It
// is what callers show per recipient.
type APIError struct {
	Code    int
	Message string
	err     error
}

func (e *APIError) Error() string { return e.Message }
func (e *APIError) Unwrap() error { return e.err }

func apiError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return &APIError{Code: gerr.Code, Message: gerr.Message, err: err}
	}
	return err
}

func rfc3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
