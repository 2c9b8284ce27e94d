package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/liaison/pkg/httpx"
	"github.com/aussiebroadwan/liaison/pkg/jwtx"
)

// Identity is how requests are attributed to a user.
type Identity struct {
	Middleware httpx.Middleware
	Ready      func() bool

	// remote is nil in header mode.
	remote *jwtx.RemoteKeySet
}

// InitIdentity builds the identity middleware for cfg.IdentityMode. In jwt
// mode the JWKS is fetched once up front; a failure is logged and readiness
// stays false until a background refresh succeeds.
func InitIdentity(ctx context.Context, cfg Config, logger *slog.Logger) (*Identity, error) {
	switch cfg.IdentityMode {
	case "header":
		logger.Warn("identity taken from a trusted header; only run behind a gateway that sets it",
			"header", cfg.IdentityHeader)
		return &Identity{
			Middleware: httpx.TrustedHeaderMiddleware(cfg.IdentityHeader),
			Ready:      func() bool { return true },
		}, nil

	case "jwt", "":
		if cfg.IdentityJWKSURL == "" {
			return nil, errors.New("IDENTITY_JWKS_URL is required in jwt identity mode")
		}

		keys := jwtx.NewKeySet()
		remote := &jwtx.RemoteKeySet{
			URL:      cfg.IdentityJWKSURL,
			Interval: cfg.IdentityJWKSRefresh,
			Keys:     keys,
			Logger:   logger,
		}

		fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := remote.Refresh(fetchCtx); err != nil {
			logger.Warn("initial jwks fetch failed; serving unready until refresh succeeds",
				"url", cfg.IdentityJWKSURL, "error", err)
		}

		verifier := jwtx.NewVerifier(keys, jwtx.VerifyOptions{
			Issuer:   cfg.IdentityIssuer,
			Audience: cfg.IdentityAudience,
			Leeway:   30 * time.Second,
		})

		return &Identity{
			Middleware: httpx.AuthnMiddleware(verifier),
			Ready:      keys.IsReady,
			remote:     remote,
		}, nil

	default:
		return nil, fmt.Errorf("unknown IDENTITY_MODE %q (want jwt or header)", cfg.IdentityMode)
	}
}

func (i *Identity) Start() {
	if i.remote != nil {
		i.remote.Start()
	}
}

func (i *Identity) Stop() {
	if i.remote != nil {
		i.remote.Stop()
	}
}
