package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/liaison/pkg/jwtx"
	"github.com/aussiebroadwan/liaison/pkg/slogx"
)

// AuthnMiddleware accepts requests carrying a bearer JWT from the identity
// provider and exposes its subject as the caller's user ID.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authz := r.Header.Get("Authorization")
			if len(authz) < len("Bearer ") || !strings.EqualFold(authz[:len("Bearer ")], "Bearer ") {
				writeUnauthorized(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(authz[len("Bearer "):])

			claims, err := v.Verify(raw)
			if err != nil {
				slogx.FromContext(ctx).Warn("identity token rejected", "err", err)
				writeUnauthorized(w, "token verification failed")
				return
			}

			ctx = withIdentity(ctx, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TrustedHeaderMiddleware takes the caller's user ID from header, which an
// authenticating gateway in front of the service must set and strip from
// client input.
func TrustedHeaderMiddleware(header string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(header))
			if userID == "" {
				WriteError(w, http.StatusUnauthorized, "unauthorized", "missing identity")
				return
			}
			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), userID)))
		})
	}
}

func withIdentity(ctx context.Context, userID string) context.Context {
	return slogx.WithUserID(WithUserID(ctx, userID), userID)
}

// RFC 6750 challenge plus the JSON error body.
func writeUnauthorized(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "unauthorized", desc)
}
