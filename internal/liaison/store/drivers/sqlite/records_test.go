package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/store"
	"github.com/aussiebroadwan/liaison/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestClientsCRUDIsOwnerScoped(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	clients := st.Clients()

	first, err := clients.CreateClient(ctx, domain.Client{
		ID: idx.New().String(), UserID: "alice", Name: "Ada", Email: "ada@test", Phone: ptr("0400"),
	})
	require.NoError(t, err)
	second, err := clients.CreateClient(ctx, domain.Client{
		ID: idx.New().String(), UserID: "alice", Name: "Bea", Email: "bea@test",
	})
	require.NoError(t, err)
	_, err = clients.CreateClient(ctx, domain.Client{
		ID: idx.New().String(), UserID: "bob", Name: "Cy", Email: "cy@test",
	})
	require.NoError(t, err)

	list, err := clients.ListClients(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID, "newest first")
	require.Equal(t, "0400", *list[1].Phone)
	require.Nil(t, list[0].Phone)

	_, err = clients.GetClient(ctx, "bob", first.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	first.Name = "Ada L."
	first.Notes = ptr("prefers mornings")
	updated, err := clients.UpdateClient(ctx, first)
	require.NoError(t, err)
	require.Equal(t, "Ada L.", updated.Name)
	require.Equal(t, "prefers mornings", *updated.Notes)

	foreign := first
	foreign.UserID = "bob"
	_, err = clients.UpdateClient(ctx, foreign)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, clients.DeleteClient(ctx, "bob", first.ID), store.ErrNotFound)
	require.NoError(t, clients.DeleteClient(ctx, "alice", first.ID))
	require.ErrorIs(t, clients.DeleteClient(ctx, "alice", first.ID), store.ErrNotFound)
}

func TestTemplatesCRUDIsOwnerScoped(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	templates := st.Templates()

	tpl, err := templates.CreateTemplate(ctx, domain.Template{
		ID: idx.New().String(), UserID: "alice", Name: "Reminder", Subject: "See you soon", Body: "Hi!",
	})
	require.NoError(t, err)
	require.False(t, tpl.CreatedAt.IsZero())

	empty, err := templates.ListTemplates(ctx, "bob")
	require.NoError(t, err)
	require.Empty(t, empty)

	tpl.Body = "Hi again!"
	updated, err := templates.UpdateTemplate(ctx, tpl)
	require.NoError(t, err)
	require.Equal(t, "Hi again!", updated.Body)

	_, err = templates.GetTemplate(ctx, "bob", tpl.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, templates.DeleteTemplate(ctx, "alice", tpl.ID))
	_, err = templates.GetTemplate(ctx, "alice", tpl.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestOAuthStatesAreSingleUseAndExpire(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	states := st.OAuthStates()
	now := time.Now().UTC()

	require.NoError(t, states.CreateOAuthState(ctx, domain.OAuthState{
		StateHash: "live", UserID: "alice", ExpiresAt: now.Add(10 * time.Minute),
	}))
	require.NoError(t, states.CreateOAuthState(ctx, domain.OAuthState{
		StateHash: "stale", UserID: "alice", ExpiresAt: now.Add(-time.Second),
	}))

	userID, err := states.ConsumeOAuthState(ctx, "live", now)
	require.NoError(t, err)
	require.Equal(t, "alice", userID)

	_, err = states.ConsumeOAuthState(ctx, "live", now)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = states.ConsumeOAuthState(ctx, "stale", now)
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := states.DeleteExpiredOAuthStates(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}
