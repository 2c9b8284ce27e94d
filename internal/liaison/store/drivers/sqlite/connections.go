package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/store"
	"github.com/aussiebroadwan/liaison/internal/liaison/store/drivers/sqlite/gen"
	"github.com/aussiebroadwan/liaison/pkg/cryptox"
	"github.com/aussiebroadwan/liaison/pkg/idx"
)

type connectionsRepo struct {
	q      *gen.Queries
	sealer *cryptox.Sealer
}

func (r *connectionsRepo) GetConnection(ctx context.Context, userID string) (domain.Connection, error) {
	row, err := r.q.GetConnectionByUserID(ctx, userID)
	if err != nil {
		return domain.Connection{}, mapNotFound(err)
	}
	return r.open(row)
}

func (r *connectionsRepo) UpsertConnection(
	ctx context.Context,
	userID string,
	f domain.ConnectionFields,
) (domain.Connection, error) {
	access, err := r.sealer.Seal(f.AccessToken)
	if err != nil {
		return domain.Connection{}, err
	}
	refresh, refreshHash, err := r.sealRefresh(f.RefreshToken)
	if err != nil {
		return domain.Connection{}, err
	}

	row, err := r.q.UpsertConnection(ctx, gen.UpsertConnectionParams{
		ID:               idx.New().String(),
		UserID:           userID,
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshTokenHash: refreshHash,
		ExpiresAt:        mapOptionalTime(f.ExpiresAt),
		Scope:            mapOptionalString(f.Scope),
	})
	if err != nil {
		return domain.Connection{}, err
	}
	return r.open(row)
}

func (r *connectionsRepo) UpdateConnection(
	ctx context.Context,
	userID string,
	u domain.ConnectionUpdate,
) (domain.Connection, error) {
	p, err := r.updateParams(u)
	if err != nil {
		return domain.Connection{}, err
	}
	p.UserID = userID

	row, err := r.q.UpdateConnection(ctx, p)
	if err != nil {
		return domain.Connection{}, mapNotFound(err)
	}
	return r.open(row)
}

func (r *connectionsRepo) SwapRefreshedTokens(
	ctx context.Context,
	userID, expectedRefreshHash string,
	u domain.ConnectionUpdate,
) (domain.Connection, error) {
	p, err := r.updateParams(u)
	if err != nil {
		return domain.Connection{}, err
	}

	row, err := r.q.SwapConnectionTokens(ctx, gen.SwapConnectionTokensParams{
		AccessToken:              p.AccessToken,
		RefreshToken:             p.RefreshToken,
		RefreshTokenHash:         p.RefreshTokenHash,
		ExpiresAt:                p.ExpiresAt,
		Scope:                    p.Scope,
		UserID:                   userID,
		ExpectedRefreshTokenHash: sql.NullString{String: expectedRefreshHash, Valid: true},
	})
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Connection{}, store.ErrConflict
	}
	if err != nil {
		return domain.Connection{}, err
	}
	return r.open(row)
}

func (r *connectionsRepo) DeleteConnection(ctx context.Context, userID string) error {
	return r.q.DeleteConnection(ctx, userID)
}

func (r *connectionsRepo) updateParams(u domain.ConnectionUpdate) (gen.UpdateConnectionParams, error) {
	access, err := r.sealer.Seal(u.AccessToken)
	if err != nil {
		return gen.UpdateConnectionParams{}, err
	}
	refresh, refreshHash, err := r.sealRefresh(u.RefreshToken)
	if err != nil {
		return gen.UpdateConnectionParams{}, err
	}
	return gen.UpdateConnectionParams{
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshTokenHash: refreshHash,
		ExpiresAt:        mapOptionalTime(u.ExpiresAt),
		Scope:            mapOptionalString(u.Scope),
	}, nil
}

// sealRefresh returns the sealed token and its fingerprint, both NULL when
// there is no token.
func (r *connectionsRepo) sealRefresh(token *string) (sealed, hash sql.NullString, err error) {
	if token == nil || *token == "" {
		return sql.NullString{}, sql.NullString{}, nil
	}
	s, err := r.sealer.Seal(*token)
	if err != nil {
		return sql.NullString{}, sql.NullString{}, err
	}
	return sql.NullString{String: s, Valid: true},
		sql.NullString{String: cryptox.FingerprintToken(*token), Valid: true},
		nil
}

func (r *connectionsRepo) open(row gen.GoogleConnection) (domain.Connection, error) {
	access, err := r.sealer.Open(row.AccessToken)
	if err != nil {
		return domain.Connection{}, fmt.Errorf("sqlite: open access token for %s: %w", row.UserID, err)
	}

	var refresh *string
	if row.RefreshToken.Valid {
		plain, err := r.sealer.Open(row.RefreshToken.String)
		if err != nil {
			return domain.Connection{}, fmt.Errorf("sqlite: open refresh token for %s: %w", row.UserID, err)
		}
		refresh = &plain
	}

	return domain.Connection{
		ID:           row.ID,
		UserID:       row.UserID,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    mapNullTimePtr(row.ExpiresAt),
		Scope:        mapNullStringPtr(row.Scope),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
