package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// ErrConflict reports a compare-and-swap whose expectation no longer
	// holds; the row was changed by someone else.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Drivers implement it and hand
// out per-table repositories. Every repository method is scoped to one
// user; no query reads or writes another user's rows.
type Store interface {
	Connections() Connections
	Clients() Clients
	Templates() Templates
	OAuthStates() OAuthStates

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or
	// Rollback the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Connections holds delegated Google credentials, one row per user.
// Tokens are returned in plaintext; drivers encrypt them at rest.
type Connections interface {
	GetConnection(ctx context.Context, userID string) (domain.Connection, error)

	// UpsertConnection creates the user's connection or replaces every
	// credential field of the existing one.
	UpsertConnection(ctx context.Context, userID string, f domain.ConnectionFields) (domain.Connection, error)

	// UpdateConnection applies u to an existing row; ErrNotFound if none.
	UpdateConnection(ctx context.Context, userID string, u domain.ConnectionUpdate) (domain.Connection, error)

	// SwapRefreshedTokens is UpdateConnection guarded by the fingerprint of
	// the refresh token the caller refreshed with. ErrConflict when the
	// stored refresh token has changed or the row is gone.
	SwapRefreshedTokens(
		ctx context.Context,
		userID, expectedRefreshHash string,
		u domain.ConnectionUpdate,
	) (domain.Connection, error)

	// DeleteConnection is idempotent.
	DeleteConnection(ctx context.Context, userID string) error
}

type Clients interface {
	// ListClients returns the user's clients, newest first.
	ListClients(ctx context.Context, userID string) ([]domain.Client, error)
	GetClient(ctx context.Context, userID, id string) (domain.Client, error)
	CreateClient(ctx context.Context, c domain.Client) (domain.Client, error)

	// UpdateClient overwrites name, email, phone and notes.
	UpdateClient(ctx context.Context, c domain.Client) (domain.Client, error)
	DeleteClient(ctx context.Context, userID, id string) error
}

type Templates interface {
	ListTemplates(ctx context.Context, userID string) ([]domain.Template, error)
	GetTemplate(ctx context.Context, userID, id string) (domain.Template, error)
	CreateTemplate(ctx context.Context, t domain.Template) (domain.Template, error)
	UpdateTemplate(ctx context.Context, t domain.Template) (domain.Template, error)
	DeleteTemplate(ctx context.Context, userID, id string) error
}

type OAuthStates interface {
	CreateOAuthState(ctx context.Context, s domain.OAuthState) error

	// ConsumeOAuthState deletes the state and returns its user if it was
	// present and unexpired at now. A state can be consumed once.
	ConsumeOAuthState(ctx context.Context, stateHash string, now time.Time) (string, error)

	// DeleteExpiredOAuthStates returns the number of rows removed.
	DeleteExpiredOAuthStates(ctx context.Context, now time.Time) (int64, error)
}
