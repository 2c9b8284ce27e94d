package service

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/store/drivers/sqlite"
	"github.com/aussiebroadwan/liaison/pkg/cryptox"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:", cryptox.MustNewSealer([]byte("service-test-master-key")))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

// seedConnection stores a credential directly, bypassing the service.
func seedConnection(t *testing.T, st *sqlite.Store, userID, access string, refresh *string, expiresAt *time.Time) {
	t.Helper()

	_, err := st.Connections().UpsertConnection(context.Background(), userID, domain.ConnectionFields{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	})
	require.NoError(t, err)
}

type mockExchanger struct {
	mock.Mock
}

func (m *mockExchanger) AuthCodeURL(state string) string {
	return m.Called(state).String(0)
}

func (m *mockExchanger) Exchange(ctx context.Context, code string) (domain.ProviderToken, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.ProviderToken), args.Error(1)
}

func (m *mockExchanger) Refresh(ctx context.Context, refreshToken string) (domain.ProviderToken, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(domain.ProviderToken), args.Error(1)
}

type mockTokens struct {
	mock.Mock
}

func (m *mockTokens) EnsureFreshToken(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

// fakeMailer records every raw message it is asked to send and rejects
// recipients listed in reject with the mapped message.
type fakeMailer struct {
	mu      sync.Mutex
	dials   []string
	sent    []string
	reject  map[string]string
	dialErr error
}

func (f *fakeMailer) DialMail(_ context.Context, accessToken string) (MailSender, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dials = append(f.dials, accessToken)
	if f.dialErr != nil {
		return nil, f.dialErr
	}
	return f, nil
}

func (f *fakeMailer) SendRaw(_ context.Context, raw string) error {
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return err
	}
	msg := string(decoded)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	for addr, reason := range f.reject {
		if strings.Contains(msg, "\nTo: "+addr+"\n") {
			return errors.New(reason)
		}
	}
	return nil
}

type fakeCalendar struct {
	dialToken string
	query     domain.EventQuery
	events    []domain.Event
	err       error
}

func (f *fakeCalendar) DialCalendar(_ context.Context, accessToken string) (CalendarReader, error) {
	f.dialToken = accessToken
	return f, nil
}

func (f *fakeCalendar) ListEvents(_ context.Context, q domain.EventQuery) ([]domain.Event, error) {
	f.query = q
	return f.events, f.err
}
