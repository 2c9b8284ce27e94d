package sqlite_test

import (
	"testing"

	"github.com/aussiebroadwan/liaison/internal/liaison/store/drivers/sqlite"
	"github.com/aussiebroadwan/liaison/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:", cryptox.MustNewSealer([]byte("sqlite-test-master-key")))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func ptr[T any](v T) *T { return &v }
