package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/store/drivers/sqlite/gen"
)

type oauthStatesRepo struct {
	q *gen.Queries
}

func (r *oauthStatesRepo) CreateOAuthState(ctx context.Context, s domain.OAuthState) error {
	return r.q.CreateOAuthState(ctx, gen.CreateOAuthStateParams{
		StateHash: s.StateHash,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt.UTC(),
	})
}

func (r *oauthStatesRepo) ConsumeOAuthState(ctx context.Context, stateHash string, now time.Time) (string, error) {
	userID, err := r.q.ConsumeOAuthState(ctx, gen.ConsumeOAuthStateParams{
		StateHash: stateHash,
		ExpiresAt: now.UTC(),
	})
	if err != nil {
		return "", mapNotFound(err)
	}
	return userID, nil
}

func (r *oauthStatesRepo) DeleteExpiredOAuthStates(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredOAuthStates(ctx, now.UTC())
}
