package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/liaison/internal/liaison/store"
	"github.com/aussiebroadwan/liaison/internal/liaison/store/drivers/sqlite/gen"
	"github.com/aussiebroadwan/liaison/pkg/cryptox"
)

type txStore struct {
	tx     *sql.Tx
	q      *gen.Queries
	sealer *cryptox.Sealer
}

func newTx(tx *sql.Tx, sealer *cryptox.Sealer) *txStore {
	return &txStore{tx: tx, q: gen.New(tx), sealer: sealer}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// The outer Store owns the database handle.
func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }
func (t *txStore) ApplyMigrations() error         { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Connections() store.Connections {
	return &connectionsRepo{q: t.q, sealer: t.sealer}
}
func (t *txStore) Clients() store.Clients         { return &clientsRepo{q: t.q} }
func (t *txStore) Templates() store.Templates     { return &templatesRepo{q: t.q} }
func (t *txStore) OAuthStates() store.OAuthStates { return &oauthStatesRepo{q: t.q} }
