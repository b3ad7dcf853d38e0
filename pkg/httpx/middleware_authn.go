package httpx

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/bettoyou/bettoyou/pkg/jwtx"
	"github.com/bettoyou/bettoyou/pkg/slogx"
)

// SessionResolver confirms that the session named by a verified token is
// still live and returns the caller it belongs to.
type SessionResolver interface {
	ResolvePrincipal(ctx context.Context, sessionID, uid string) (Principal, error)
}

// AuthnMiddleware verifies the bearer token and then resolves its session, so
// a token stops working as soon as its session is signed out.
func AuthnMiddleware(v jwtx.Verifier, sessions SessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			p, err := sessions.ResolvePrincipal(ctx, claims.SID, claims.Subject)
			if err != nil {
				log.Info("session not resolvable", "sid", claims.SID, "err", err)
				writeBearerError(w, "session is no longer active")
				return
			}

			p.VerificationLevel = claims.VerificationLevel

			ctx = ContextWithPrincipal(ctx, p)
			ctx = slogx.With(ctx, "uid", p.UID, "sid", p.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUserType lets the request through only when the caller's session
// has one of the listed user types.
func RequireUserType(allowed ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeBearerError(w, "missing principal")
				return
			}
			if !slices.Contains(allowed, p.UserType) {
				WriteError(w, http.StatusForbidden, "forbidden_user_type",
					"this operation requires user type: "+strings.Join(allowed, ", "))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750 style bearer error.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "unauthenticated", desc)
}
