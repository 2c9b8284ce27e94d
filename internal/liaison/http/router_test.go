package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/metrics"
	"github.com/aussiebroadwan/liaison/internal/liaison/service"
	"github.com/aussiebroadwan/liaison/internal/liaison/store/drivers/sqlite"
	"github.com/aussiebroadwan/liaison/pkg/cryptox"
	"github.com/aussiebroadwan/liaison/pkg/httpx"
	"github.com/aussiebroadwan/liaison/pkg/liaisonsdk"
)

const userHeader = "X-User-ID"

type stubExchanger struct {
	exchanged domain.ProviderToken
	refreshed domain.ProviderToken
	err       error
}

func (s *stubExchanger) AuthCodeURL(state string) string {
	return "https://accounts.example/auth?state=" + url.QueryEscape(state)
}

func (s *stubExchanger) Exchange(context.Context, string) (domain.ProviderToken, error) {
	return s.exchanged, s.err
}

func (s *stubExchanger) Refresh(context.Context, string) (domain.ProviderToken, error) {
	return s.refreshed, s.err
}

type stubGoogle struct {
	events []domain.Event
	calErr error
	reject string
	sent   []string
}

func (s *stubGoogle) DialCalendar(context.Context, string) (service.CalendarReader, error) {
	return s, nil
}

func (s *stubGoogle) ListEvents(context.Context, domain.EventQuery) ([]domain.Event, error) {
	return s.events, s.calErr
}

func (s *stubGoogle) DialMail(context.Context, string) (service.MailSender, error) {
	return s, nil
}

func (s *stubGoogle) SendRaw(_ context.Context, raw string) error {
	msg, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return err
	}
	s.sent = append(s.sent, string(msg))
	if s.reject != "" && strings.Contains(string(msg), "To: "+s.reject+"\n") {
		return errors.New("Invalid To header")
	}
	return nil
}

type testEnv struct {
	router    *Router
	store     *sqlite.Store
	exchanger *stubExchanger
	google    *stubGoogle
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:", cryptox.MustNewSealer([]byte("http-test-master-key")))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	ex := &stubExchanger{}
	g := &stubGoogle{}

	conns := &service.ConnectionService{Store: st, Exchanger: ex, Metrics: m}
	r := NewRouter(httpx.TrustedHeaderMiddleware(userHeader), nil, "test", st, m, logger)
	r.AppBaseURL = "https://app.example/"
	r.ConnectionService = conns
	r.CalendarService = &service.CalendarService{Tokens: conns, Dialer: g, Metrics: m}
	r.EmailService = &service.EmailService{Tokens: conns, Dialer: g, Store: st, Metrics: m}
	r.ClientService = &service.ClientService{Store: st}
	r.TemplateService = &service.TemplateService{Store: st}
	r.ApplyRoutes()

	return &testEnv{router: r, store: st, exchanger: ex, google: g}
}

func (e *testEnv) connect(t *testing.T, userID string) {
	t.Helper()

	exp := time.Now().Add(time.Hour)
	_, err := e.store.Connections().UpsertConnection(context.Background(), userID, domain.ConnectionFields{
		AccessToken:  "A1",
		RefreshToken: ptr("R1"),
		ExpiresAt:    &exp,
	})
	require.NoError(t, err)
}

func (e *testEnv) do(t *testing.T, method, target, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, rd)
	if userID != "" {
		req.Header.Set(userHeader, userID)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func ptr[T any](v T) *T { return &v }

func TestRequiresIdentity(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{"/v1/google/status", "/v1/calendar/events", "/v1/clients", "/v1/google/connect"} {
		rec := env.do(t, http.MethodGet, target, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestGoogleConnectFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/google/status", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, decode[liaisonsdk.ConnectionStatusResponse](t, rec).Connected)

	rec = env.do(t, http.MethodGet, "/v1/google/connect", "user-1", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	state := loc.Query().Get("state")
	require.NotEmpty(t, state)

	env.exchanger.exchanged = domain.ProviderToken{AccessToken: "A1", RefreshToken: "R1"}
	callback := "/v1/google/callback?" + url.Values{"state": {state}, "code": {"c1"}}.Encode()
	rec = env.do(t, http.MethodGet, callback, "", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "https://app.example/dashboard?google_connected=true", rec.Header().Get("Location"))

	rec = env.do(t, http.MethodGet, "/v1/google/status", "user-1", nil)
	require.True(t, decode[liaisonsdk.ConnectionStatusResponse](t, rec).Connected)

	// Replaying the state fails.
	rec = env.do(t, http.MethodGet, callback, "", nil)
	require.Equal(t, "https://app.example/dashboard?google_error=true", rec.Header().Get("Location"))

	rec = env.do(t, http.MethodGet, "/v1/google/callback?error=access_denied", "", nil)
	require.Equal(t, "https://app.example/dashboard?google_error=true", rec.Header().Get("Location"))

	rec = env.do(t, http.MethodPost, "/v1/google/disconnect", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decode[liaisonsdk.DisconnectResponse](t, rec).Success)

	rec = env.do(t, http.MethodGet, "/v1/google/status", "user-1", nil)
	require.False(t, decode[liaisonsdk.ConnectionStatusResponse](t, rec).Connected)
}

func TestCalendarEvents(t *testing.T) {
	env := newTestEnv(t)

	t.Run("not connected", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/calendar/events", "user-1", nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, liaisonsdk.ErrorCodeGoogleNotConnected, decode[liaisonsdk.ErrorResponse](t, rec).Error)
	})

	t.Run("reconnect required", func(t *testing.T) {
		_, err := env.store.Connections().UpsertConnection(context.Background(), "user-2",
			domain.ConnectionFields{AccessToken: "A1"})
		require.NoError(t, err)

		rec := env.do(t, http.MethodGet, "/v1/calendar/events", "user-2", nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, liaisonsdk.ErrorCodeGoogleReconnectRequired, decode[liaisonsdk.ErrorResponse](t, rec).Error)
	})

	env.connect(t, "user-1")

	t.Run("bad time", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/calendar/events?timeMin=yesterday", "user-1", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("events", func(t *testing.T) {
		env.google.events = []domain.Event{{ID: "e1", Summary: "Standup", Start: domain.EventTime{Date: "2025-03-01"}}}
		rec := env.do(t, http.MethodGet, "/v1/calendar/events?timeMin=2025-03-01T00:00:00Z", "user-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		events := decode[[]liaisonsdk.Event](t, rec)
		require.Len(t, events, 1)
		require.Equal(t, "Standup", events[0].Summary)
		require.Equal(t, "2025-03-01", events[0].Start.Date)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		env.google.events = nil
		rec := env.do(t, http.MethodGet, "/v1/calendar/events", "user-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("provider failure", func(t *testing.T) {
		env.google.calErr = errors.New("boom")
		defer func() { env.google.calErr = nil }()

		rec := env.do(t, http.MethodGet, "/v1/calendar/events", "user-1", nil)
		require.Equal(t, http.StatusBadGateway, rec.Code)
		require.Equal(t, liaisonsdk.ErrorCodeDispatchFailed, decode[liaisonsdk.ErrorResponse](t, rec).Error)
	})
}

func TestEmailSend(t *testing.T) {
	env := newTestEnv(t)
	env.connect(t, "user-1")
	env.google.reject = "bad@example.com"

	rec := env.do(t, http.MethodPost, "/v1/email/send", "user-1", liaisonsdk.SendEmailRequest{
		Recipients: []string{"x@example.com", "bad@example.com"},
		Subject:    "Hi",
		Body:       "Hello",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[liaisonsdk.SendEmailResponse](t, rec)
	require.Equal(t, []liaisonsdk.SendEmailResult{
		{Recipient: "x@example.com", Status: liaisonsdk.SendStatusSuccess},
		{Recipient: "bad@example.com", Status: liaisonsdk.SendStatusError, Error: "Invalid To header"},
	}, resp.Results)
	require.Equal(t, 1, resp.Sent)
	require.Equal(t, 1, resp.Failed)

	t.Run("validation", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/email/send", "user-1", liaisonsdk.SendEmailRequest{
			Recipients: []string{"x@example.com"},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decode[liaisonsdk.ErrorResponse](t, rec)
		require.Equal(t, liaisonsdk.ErrorCodeValidation, errResp.Error)
		require.Contains(t, errResp.Fields, "subject")
		require.Contains(t, errResp.Fields, "body")
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/email/send", strings.NewReader("{"))
		req.Header.Set(userHeader, "user-1")
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not connected", func(t *testing.T) {
		sentBefore := len(env.google.sent)
		rec := env.do(t, http.MethodPost, "/v1/email/send", "user-9", liaisonsdk.SendEmailRequest{
			Recipients: []string{"x@example.com"}, Subject: "s", Body: "b",
		})
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Len(t, env.google.sent, sentBefore)
	})
}

func TestClientsCRUD(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/clients", "user-1", liaisonsdk.CreateClientRequest{Name: "Ann"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decode[liaisonsdk.ErrorResponse](t, rec).Fields, "email")

	rec = env.do(t, http.MethodPost, "/v1/clients", "user-1", liaisonsdk.CreateClientRequest{
		Name: "Ann", Email: "ann@example.com", Phone: ptr("0400"),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[liaisonsdk.Client](t, rec)
	require.NotEmpty(t, created.ID)

	rec = env.do(t, http.MethodPatch, "/v1/clients/"+created.ID, "user-1", liaisonsdk.UpdateClientRequest{
		Notes: ptr("prefers email"),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[liaisonsdk.Client](t, rec)
	require.Equal(t, "Ann", updated.Name)
	require.Equal(t, "prefers email", *updated.Notes)

	rec = env.do(t, http.MethodGet, "/v1/clients", "user-1", nil)
	require.Len(t, decode[liaisonsdk.ListClientsResponse](t, rec).Clients, 1)

	// Another user sees nothing.
	rec = env.do(t, http.MethodGet, "/v1/clients/"+created.ID, "user-2", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	rec = env.do(t, http.MethodDelete, "/v1/clients/"+created.ID, "user-2", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/v1/clients/"+created.ID, "user-1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = env.do(t, http.MethodGet, "/v1/clients/"+created.ID, "user-1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTemplatesCRUD(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/templates", "user-1", liaisonsdk.CreateTemplateRequest{
		Name: "Welcome", Subject: "Hi", Body: "Hello",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[liaisonsdk.Template](t, rec)

	rec = env.do(t, http.MethodPatch, "/v1/templates/"+created.ID, "user-1", liaisonsdk.UpdateTemplateRequest{
		Subject: ptr("Hi again"),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Hi again", decode[liaisonsdk.Template](t, rec).Subject)

	rec = env.do(t, http.MethodGet, "/v1/templates/"+created.ID, "user-2", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/templates", "user-1", nil)
	require.Len(t, decode[liaisonsdk.ListTemplatesResponse](t, rec).Templates, 1)

	rec = env.do(t, http.MethodDelete, "/v1/templates/"+created.ID, "user-1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[liaisonsdk.HealthResponse](t, rec).Status)

	rec = env.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[liaisonsdk.HealthResponse](t, rec).Checks.Database)

	rec = env.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}
