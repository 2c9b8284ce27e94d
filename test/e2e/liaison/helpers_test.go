package liaison_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/liaison/internal/liaison/app"
	"github.com/aussiebroadwan/liaison/pkg/liaisonsdk"
)

/*
 * End-to-end helpers: a full liaison application served over httptest,
 * talking to a fake Google that issues tokens, lists one event and
 * records every message sent through Gmail.
 */

const (
	userHeader = "X-User-ID"
	appBaseURL = "https://app.example.com"
	testUser   = "user-e2e"
)

// fakeGoogle records what liaison sent it. Handlers run on server
// goroutines, so every field is guarded by mu.
type fakeGoogle struct {
	mu         sync.Mutex
	tokenCalls []url.Values
	sent       []string
}

func (f *fakeGoogle) tokenForms() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.tokenCalls...)
}

// sentMessages returns the decoded MIME of each Gmail send.
func (f *fakeGoogle) sentMessages(t *testing.T) []string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.sent))
	for _, raw := range f.sent {
		msg, err := base64.RawURLEncoding.DecodeString(raw)
		require.NoError(t, err)
		out = append(out, string(msg))
	}
	return out
}

func startFakeGoogle(t *testing.T) (*fakeGoogle, *httptest.Server) {
	t.Helper()
	f := &fakeGoogle{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.tokenCalls = append(f.tokenCalls, r.PostForm)
		f.mu.Unlock()

		if r.PostForm.Get("code") == "denied-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "google-access-1",
			"refresh_token": "google-refresh-1",
			"token_type":    "Bearer",
			"expires_in":    3600,
			"scope":         "https://www.googleapis.com/auth/calendar.readonly https://www.googleapis.com/auth/gmail.send",
		})
	})
	mux.HandleFunc("GET /calendar/v3/calendars/primary/events", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{
			"id":"evt-1",
			"status":"confirmed",
			"summary":"Site visit",
			"start":{"dateTime":"2025-03-02T09:00:00Z"},
			"end":{"dateTime":"2025-03-02T10:00:00Z"},
			"attendees":[{"email":"ada@example.com","responseStatus":"accepted"}]
		}]}`))
	})
	mux.HandleFunc("POST /gmail/v1/users/me/messages/send", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Raw string `json:"raw"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.sent = append(f.sent, body.Raw)
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg-1","threadId":"thread-1"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

// setupLiaison boots the application against a fresh database and the fake
// Google, returning the fake and the service's base URL.
func setupLiaison(t *testing.T) (*fakeGoogle, string) {
	t.Helper()

	google, googleSrv := startFakeGoogle(t)

	cfg := app.Config{
		GoogleClientID:       "client-id",
		GoogleClientSecret:   "client-secret",
		GoogleRedirectURL:    "https://liaison.example.com/v1/google/callback",
		GoogleAuthURL:        googleSrv.URL + "/auth",
		GoogleTokenURL:       googleSrv.URL + "/token",
		GoogleAPIEndpoint:    googleSrv.URL,
		AppBaseURL:           appBaseURL,
		IdentityMode:         "header",
		IdentityHeader:       userHeader,
		MasterKey:            "e2e-master-key-material-0123456789",
		DatabaseFile:         filepath.Join(t.TempDir(), "liaison.db"),
		EmailSendConcurrency: 2,
		ShutdownGracePeriod:  5 * time.Second,
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "json",
	}

	application, err := app.New(cfg)
	require.NoError(t, err)
	application.Start()

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		require.NoError(t, application.Shutdown())
	})

	return google, srv.URL
}

func newClient(baseURL, userID string) *liaisonsdk.SDKClient {
	return liaisonsdk.NewSDKClient(baseURL, liaisonsdk.WithUserHeader(userHeader, userID))
}

// noRedirects returns 3xx responses to the caller instead of following them.
var noRedirects = &http.Client{
	CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
}

// connectGoogle walks the consent flow the way a browser would: start at
// the connect URL, take the state off Google's consent URL and come back
// through the callback with code. It returns where the app lands.
func connectGoogle(t *testing.T, client *liaisonsdk.SDKClient, userID, code string) *url.URL {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, client.ConnectURL(), nil)
	require.NoError(t, err)
	req.Header.Set(userHeader, userID)

	resp, err := noRedirects.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	consent, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	state := consent.Query().Get("state")
	require.NotEmpty(t, state)

	callback := client.BaseURL + "/v1/google/callback?" + url.Values{
		"state": {state},
		"code":  {code},
	}.Encode()
	req, err = http.NewRequestWithContext(t.Context(), http.MethodGet, callback, nil)
	require.NoError(t, err)
	resp, err = noRedirects.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	landing, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	return landing
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *liaisonsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
