package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
)

// fakeGoogle stands in for the token endpoint and both REST APIs.
type fakeGoogle struct {
	tokenForms  []url.Values
	tokenReply  map[string]any
	tokenStatus int

	calendarQuery url.Values
	calendarAuth  string
	calendarReply string

	sentRaws  []string
	rejectRaw func(raw string) bool
	gmailAuth string
}

func newFakeGoogle(t *testing.T) (*fakeGoogle, *httptest.Server) {
	f := &fakeGoogle{tokenStatus: http.StatusOK}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		f.tokenForms = append(f.tokenForms, r.PostForm)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.tokenStatus)
		_ = json.NewEncoder(w).Encode(f.tokenReply)
	})
	mux.HandleFunc("GET /calendar/v3/calendars/primary/events", func(w http.ResponseWriter, r *http.Request) {
		f.calendarQuery = r.URL.Query()
		f.calendarAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(f.calendarReply))
	})
	mux.HandleFunc("POST /gmail/v1/users/me/messages/send", func(w http.ResponseWriter, r *http.Request) {
		f.gmailAuth = r.Header.Get("Authorization")
		var body struct {
			Raw string `json:"raw"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		f.sentRaws = append(f.sentRaws, body.Raw)

		w.Header().Set("Content-Type", "application/json")
		if f.rejectRaw != nil && f.rejectRaw(body.Raw) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Invalid To header","errors":[{"message":"Invalid To header","reason":"invalidArgument"}]}}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"m1","threadId":"t1"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

func newTestProvider(t *testing.T, srv *httptest.Server) *Provider {
	t.Helper()

	p, err := New(Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "https://app.example/v1/google/callback",
		AuthURL:      srv.URL + "/auth",
		TokenURL:     srv.URL + "/token",
		APIEndpoint:  srv.URL,
		HTTPClient:   srv.Client(),
	})
	require.NoError(t, err)
	return p
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New(Config{ClientID: "id"})
	require.Error(t, err)
}

func TestAuthCodeURL(t *testing.T) {
	_, srv := newFakeGoogle(t)
	p := newTestProvider(t, srv)

	u, err := url.Parse(p.AuthCodeURL("state-123"))
	require.NoError(t, err)
	q := u.Query()
	require.Equal(t, srv.URL+"/auth", u.Scheme+"://"+u.Host+u.Path)
	require.Equal(t, "state-123", q.Get("state"))
	require.Equal(t, "offline", q.Get("access_type"))
	require.Equal(t, "consent", q.Get("prompt"))
	require.Equal(t, "code", q.Get("response_type"))
	require.Equal(t, "client-id", q.Get("client_id"))
	require.Equal(t,
		"https://www.googleapis.com/auth/calendar.readonly https://www.googleapis.com/auth/gmail.send",
		q.Get("scope"))
}

func TestExchange(t *testing.T) {
	f, srv := newFakeGoogle(t)
	p := newTestProvider(t, srv)
	f.tokenReply = map[string]any{
		"access_token":  "A1",
		"refresh_token": "R1",
		"expires_in":    3600,
		"scope":         "https://www.googleapis.com/auth/gmail.send",
		"token_type":    "Bearer",
	}

	before := time.Now()
	tok, err := p.Exchange(context.Background(), "code-1")
	require.NoError(t, err)
	require.Equal(t, "A1", tok.AccessToken)
	require.Equal(t, "R1", tok.RefreshToken)
	require.Equal(t, "https://www.googleapis.com/auth/gmail.send", tok.Scope)
	require.NotNil(t, tok.ExpiresAt)
	require.WithinDuration(t, before.Add(time.Hour), *tok.ExpiresAt, 5*time.Second)

	require.Len(t, f.tokenForms, 1)
	form := f.tokenForms[0]
	require.Equal(t, "authorization_code", form.Get("grant_type"))
	require.Equal(t, "code-1", form.Get("code"))
	require.Equal(t, "client-id", form.Get("client_id"))
	require.Equal(t, "client-secret", form.Get("client_secret"))
	require.Equal(t, "https://app.example/v1/google/callback", form.Get("redirect_uri"))
}

func TestRefresh(t *testing.T) {
	t.Run("without rotation or expiry", func(t *testing.T) {
		f, srv := newFakeGoogle(t)
		p := newTestProvider(t, srv)
		f.tokenReply = map[string]any{"access_token": "A2", "token_type": "Bearer"}

		tok, err := p.Refresh(context.Background(), "R1")
		require.NoError(t, err)
		require.Equal(t, domain.ProviderToken{AccessToken: "A2"}, tok)

		form := f.tokenForms[0]
		require.Equal(t, "refresh_token", form.Get("grant_type"))
		require.Equal(t, "R1", form.Get("refresh_token"))
		require.Equal(t, "client-secret", form.Get("client_secret"))
	})

	t.Run("rotated refresh token", func(t *testing.T) {
		f, srv := newFakeGoogle(t)
		p := newTestProvider(t, srv)
		f.tokenReply = map[string]any{"access_token": "A2", "refresh_token": "R2", "expires_in": 60}

		tok, err := p.Refresh(context.Background(), "R1")
		require.NoError(t, err)
		require.Equal(t, "R2", tok.RefreshToken)
		require.NotNil(t, tok.ExpiresAt)
	})

	t.Run("invalid grant", func(t *testing.T) {
		f, srv := newFakeGoogle(t)
		p := newTestProvider(t, srv)
		f.tokenStatus = http.StatusBadRequest
		f.tokenReply = map[string]any{"error": "invalid_grant", "error_description": "Token has been expired or revoked."}

		_, err := p.Refresh(context.Background(), "R1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid_grant")
	})
}

func TestCalendarListEvents(t *testing.T) {
	f, srv := newFakeGoogle(t)
	p := newTestProvider(t, srv)
	f.calendarReply = `{
		"items": [{
			"id": "e1",
			"status": "confirmed",
			"summary": "Standup",
			"htmlLink": "https://calendar.example/e1",
			"start": {"dateTime": "2025-03-01T09:00:00Z"},
			"end": {"dateTime": "2025-03-01T09:15:00Z"},
			"attendees": [{"email": "ann@test", "responseStatus": "accepted"}],
			"organizer": {"email": "me@test"}
		}, {
			"id": "e2",
			"summary": "Holiday",
			"start": {"date": "2025-03-02"},
			"end": {"date": "2025-03-03"}
		}]
	}`

	cal, err := p.DialCalendar(context.Background(), "A1")
	require.NoError(t, err)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	events, err := cal.ListEvents(context.Background(), domain.EventQuery{
		CalendarID:   "primary",
		TimeMin:      from,
		MaxResults:   50,
		SingleEvents: true,
		OrderBy:      "startTime",
	})
	require.NoError(t, err)

	require.Equal(t, "Bearer A1", f.calendarAuth)
	require.Equal(t, "2025-03-01T00:00:00Z", f.calendarQuery.Get("timeMin"))
	require.Equal(t, "50", f.calendarQuery.Get("maxResults"))
	require.Equal(t, "true", f.calendarQuery.Get("singleEvents"))
	require.Equal(t, "startTime", f.calendarQuery.Get("orderBy"))
	require.False(t, f.calendarQuery.Has("timeMax"))

	require.Len(t, events, 2)
	require.Equal(t, "Standup", events[0].Summary)
	require.Equal(t, "2025-03-01T09:00:00Z", events[0].Start.DateTime)
	require.Equal(t, []domain.EventAttendee{{Email: "ann@test", ResponseStatus: "accepted"}}, events[0].Attendees)
	require.Equal(t, "me@test", events[0].Organizer.Email)
	require.Equal(t, "2025-03-02", events[1].Start.Date)
}

func TestGmailSendRaw(t *testing.T) {
	f, srv := newFakeGoogle(t)
	p := newTestProvider(t, srv)

	bad := base64.RawURLEncoding.EncodeToString([]byte("bad"))
	f.rejectRaw = func(raw string) bool { return raw == bad }

	sender, err := p.DialMail(context.Background(), "A1")
	require.NoError(t, err)

	good := base64.RawURLEncoding.EncodeToString([]byte("good"))
	require.NoError(t, sender.SendRaw(context.Background(), good))
	require.Equal(t, "Bearer A1", f.gmailAuth)

	err = sender.SendRaw(context.Background(), bad)
	require.EqualError(t, err, "Invalid To header")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Code)

	require.Equal(t, []string{good, bad}, f.sentRaws)
}
